package shootRepo

import (
	"context"
	"log"
	"time"

	"shootflow/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShootRepo implements ShootRepository using MongoDB.
type MongoShootRepo struct {
	coll *mongo.Collection
}

// NewMongoShootRepo creates a new ShootRepository backed by MongoDB.
func NewMongoShootRepo() ShootRepository {
	repo := &MongoShootRepo{coll: database.Collection("shoots")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("shoot repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for scheduling and rollup queries.
func (r *MongoShootRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "scheduled_date", Value: 1}, {Key: "time", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "photographer_id", Value: 1}, {Key: "scheduled_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "photographer_ids", Value: 1}, {Key: "scheduled_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, models)
	return err
}
