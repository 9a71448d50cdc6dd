package catalogRepo

import (
	"fmt"
	"time"

	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetServiceByID retrieves a service by its unique ID.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetAllServices retrieves all services ordered by sort order then name.
func (r *MongoCatalogRepo) GetAllServices() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetServicesByCategory retrieves services for one category.
func (r *MongoCatalogRepo) GetServicesByCategory(categoryID string) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{"category_id": categoryID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services for category %s: %w", categoryID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetCategoryByID retrieves a category by its unique ID.
func (r *MongoCatalogRepo) GetCategoryByID(id string) (*models.ServiceCategory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cat models.ServiceCategory
	if err := r.categories.FindOne(ctx, bson.M{"id": id}).Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to fetch category with id %s: %w", id, err)
	}
	return &cat, nil
}

// GetCategoryByName retrieves a category by its canonical name
// (case-insensitive).
func (r *MongoCatalogRepo) GetCategoryByName(name string) (*models.ServiceCategory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": "^" + name + "$", "$options": "i"}}
	var cat models.ServiceCategory
	if err := r.categories.FindOne(ctx, filter).Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to fetch category named %q: %w", name, err)
	}
	return &cat, nil
}

// GetAllCategories retrieves all categories ordered for tabbing.
func (r *MongoCatalogRepo) GetAllCategories() ([]models.ServiceCategory, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var cats []models.ServiceCategory
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return cats, nil
}
