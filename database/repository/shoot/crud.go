package shootRepo

import (
	"fmt"
	"time"

	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new shoot document.
func (r *MongoShootRepo) Create(shoot *models.Shoot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, shoot); err != nil {
		return fmt.Errorf("failed to create shoot: %w", err)
	}
	return nil
}

// Update replaces an existing shoot document.
func (r *MongoShootRepo) Update(shoot *models.Shoot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": shoot.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": shoot})
	if err != nil {
		return fmt.Errorf("failed to update shoot with id %s: %w", shoot.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shoot with id %s not found", shoot.ID)
	}
	return nil
}

// Patch applies a partial update document to a shoot. The caller supplies a
// normalized field map; updated_at is stamped here.
func (r *MongoShootRepo) Patch(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch shoot with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shoot with id %s not found", id)
	}
	return nil
}
