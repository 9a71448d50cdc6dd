package userRepo

import (
	"fmt"
	"time"

	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(acct *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, acct); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update replaces an existing account document.
func (r *MongoAccountRepo) Update(acct *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": acct.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": acct})
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", acct.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", acct.ID)
	}
	return nil
}

// UpdateWithDocument patches an account using a custom update document.
func (r *MongoAccountRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}

// Delete removes an account document by its ID.
func (r *MongoAccountRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete account with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}
