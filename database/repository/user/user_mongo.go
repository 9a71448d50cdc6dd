package userRepo

import (
	"context"
	"log"
	"time"

	"shootflow/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll         *mongo.Collection
	availability *mongo.Collection
}

// NewMongoAccountRepo creates a new AccountRepository backed by MongoDB.
func NewMongoAccountRepo() AccountRepository {
	repo := &MongoAccountRepo{
		coll:         database.Collection("accounts"),
		availability: database.Collection("availability"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("account repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	acctIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "token_hash", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}, {Key: "active", Value: 1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, acctIdx); err != nil {
		return err
	}

	availIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "photographer_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.availability.Indexes().CreateOne(ctx, availIdx)
	return err
}
