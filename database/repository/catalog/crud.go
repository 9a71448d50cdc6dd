package catalogRepo

import (
	"fmt"
	"time"

	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateService inserts a new service document.
func (r *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService modifies an existing service document.
func (r *MongoCatalogRepo) UpdateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": svc.ID}
	update := bson.M{"$set": svc}
	result, err := r.services.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", svc.ID)
	}
	return nil
}

// DeleteService removes a service document by its ID.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// CreateCategory inserts a new category document.
func (r *MongoCatalogRepo) CreateCategory(cat *models.ServiceCategory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.categories.InsertOne(ctx, cat); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// UpdateCategory modifies an existing category document.
func (r *MongoCatalogRepo) UpdateCategory(cat *models.ServiceCategory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": cat.ID}
	result, err := r.categories.UpdateOne(ctx, filter, bson.M{"$set": cat})
	if err != nil {
		return fmt.Errorf("failed to update category with id %s: %w", cat.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("category with id %s not found", cat.ID)
	}
	return nil
}

// DeleteCategory removes a category document by its ID.
func (r *MongoCatalogRepo) DeleteCategory(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.categories.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category with id %s not found", id)
	}
	return nil
}
