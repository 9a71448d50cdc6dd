package invoiceRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"shootflow/database"
	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	repo := &MongoInvoiceRepo{coll: database.Collection("invoices")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("invoice repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInvoiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "photographer_id", Value: 1}, {Key: "period_start", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, idx)
	return err
}

// GetByID retrieves an invoice by its unique ID.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}

// GetByStatus retrieves invoices in a given status, newest first.
func (r *MongoInvoiceRepo) GetByStatus(status string) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s invoices: %w", status, err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}

// GetByPhotographerAndPeriod retrieves one photographer-period invoice, or
// nil when none exists.
func (r *MongoInvoiceRepo) GetByPhotographerAndPeriod(photographerID, periodStart string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"photographer_id": photographerID, "period_start": periodStart}
	var inv models.Invoice
	err := r.coll.FindOne(ctx, filter).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice for %s starting %s: %w", photographerID, periodStart, err)
	}
	return &inv, nil
}

// GetByPhotographer retrieves all invoices for one photographer, newest
// period first.
func (r *MongoInvoiceRepo) GetByPhotographer(photographerID string) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "period_start", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"photographer_id": photographerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices for %s: %w", photographerID, err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}

// Create inserts a new invoice document.
func (r *MongoInvoiceRepo) Create(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// UpdateStatusIf atomically moves an invoice from one status to another.
func (r *MongoInvoiceRepo) UpdateStatusIf(id, from, to string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to move invoice %s from %s to %s: %w", id, from, to, err)
	}
	return result.MatchedCount == 1, nil
}

// Update replaces an existing invoice document.
func (r *MongoInvoiceRepo) Update(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": inv.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": inv})
	if err != nil {
		return fmt.Errorf("failed to update invoice with id %s: %w", inv.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invoice with id %s not found", inv.ID)
	}
	return nil
}
