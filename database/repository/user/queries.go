package userRepo

import (
	"fmt"
	"time"

	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves an account by its unique ID.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acct); err != nil {
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &acct, nil
}

// GetByEmail retrieves an account by its email address.
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&acct); err != nil {
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &acct, nil
}

// GetByTokenHash retrieves the account whose stored token hash matches.
func (r *MongoAccountRepo) GetByTokenHash(tokenHash string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&acct); err != nil {
		return nil, fmt.Errorf("failed to fetch account by token hash: %w", err)
	}
	return &acct, nil
}

// GetPhotographers retrieves all active photographer accounts, sorted by
// name.
func (r *MongoAccountRepo) GetPhotographers() ([]models.Account, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"role": models.RolePhotographer, "active": true}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve photographers: %w", err)
	}
	defer cursor.Close(ctx)

	var accts []models.Account
	if err := cursor.All(ctx, &accts); err != nil {
		return nil, fmt.Errorf("failed to decode photographers: %w", err)
	}
	return accts, nil
}

// availabilityDoc is the persisted shape of one photographer-day.
type availabilityDoc struct {
	PhotographerID string                    `bson:"photographer_id"`
	Date           string                    `bson:"date"`
	Slots          []models.AvailabilitySlot `bson:"slots"`
}

// GetAvailability returns a photographer's declared windows for a date.
// A missing document means no declared availability, not an error.
func (r *MongoAccountRepo) GetAvailability(photographerID, date string) ([]models.AvailabilitySlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"photographer_id": photographerID, "date": date}
	var doc availabilityDoc
	err := r.availability.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for %s on %s: %w", photographerID, date, err)
	}
	return doc.Slots, nil
}

// SetAvailability replaces a photographer's windows for a date.
func (r *MongoAccountRepo) SetAvailability(photographerID, date string, slots []models.AvailabilitySlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"photographer_id": photographerID, "date": date}
	update := bson.M{"$set": availabilityDoc{
		PhotographerID: photographerID,
		Date:           date,
		Slots:          slots,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.availability.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to set availability for %s on %s: %w", photographerID, date, err)
	}
	return nil
}
