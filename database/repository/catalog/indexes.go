package catalogRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for frequently used catalog queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	categoryIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "sort_order", Value: 1}},
	}
	if _, err := r.services.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, categoryIdx}); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	nameIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	}
	if _, err := r.categories.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, nameIdx}); err != nil {
		return fmt.Errorf("failed to create category indexes: %w", err)
	}
	return nil
}
