package catalogRepo

import (
	"context"
	"log"
	"time"

	"shootflow/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		services:   database.Collection("services"),
		categories: database.Collection("service_categories"),
	}
	if err := repo.ensureIndexes(); err != nil {
		// Queries still work unindexed.
		log.Printf("catalog repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
