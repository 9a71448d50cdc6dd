package shootRepo

import (
	"fmt"
	"time"

	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a shoot by its unique ID.
func (r *MongoShootRepo) GetByID(id string) (*models.Shoot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shoot models.Shoot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shoot); err != nil {
		return nil, fmt.Errorf("failed to fetch shoot with id %s: %w", id, err)
	}
	return &shoot, nil
}

// GetByDate retrieves all shoots scheduled on a date.
func (r *MongoShootRepo) GetByDate(date string) ([]models.Shoot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"scheduled_date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shoots for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var shoots []models.Shoot
	if err := cursor.All(ctx, &shoots); err != nil {
		return nil, fmt.Errorf("failed to decode shoots: %w", err)
	}
	return shoots, nil
}

// GetByPhotographerAndDate retrieves a photographer's shoots on a date.
func (r *MongoShootRepo) GetByPhotographerAndDate(photographerID, date string) ([]models.Shoot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"scheduled_date": date,
		"status":         bson.M{"$nin": []string{models.ShootStatusDeclined, models.ShootStatusCancelled}},
		"$or": []bson.M{
			{"photographer_id": photographerID},
			{"photographer_ids": photographerID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shoots for photographer %s: %w", photographerID, err)
	}
	defer cursor.Close(ctx)

	var shoots []models.Shoot
	if err := cursor.All(ctx, &shoots); err != nil {
		return nil, fmt.Errorf("failed to decode shoots: %w", err)
	}
	return shoots, nil
}

// GetCompletedInPeriod retrieves completed shoots for a photographer within
// the inclusive date range.
func (r *MongoShootRepo) GetCompletedInPeriod(photographerID, periodStart, periodEnd string) ([]models.Shoot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"photographer_id": photographerID,
		"status":          models.ShootStatusCompleted,
		"scheduled_date":  bson.M{"$gte": periodStart, "$lte": periodEnd},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve completed shoots: %w", err)
	}
	defer cursor.Close(ctx)

	var shoots []models.Shoot
	if err := cursor.All(ctx, &shoots); err != nil {
		return nil, fmt.Errorf("failed to decode shoots: %w", err)
	}
	return shoots, nil
}

// List retrieves shoots filtered by status, newest first.
func (r *MongoShootRepo) List(status string, limit int64) ([]models.Shoot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoots: %w", err)
	}
	defer cursor.Close(ctx)

	var shoots []models.Shoot
	if err := cursor.All(ctx, &shoots); err != nil {
		return nil, fmt.Errorf("failed to decode shoots: %w", err)
	}
	return shoots, nil
}
