package shootRepo

import (
	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ShootRepository defines data access for shoots.
type ShootRepository interface {
	// GetByID retrieves a shoot by its unique ID.
	GetByID(id string) (*models.Shoot, error)
	// GetByDate retrieves all shoots scheduled on a date ("2006-01-02").
	GetByDate(date string) ([]models.Shoot, error)
	// GetByPhotographerAndDate retrieves a photographer's shoots on a date,
	// ordered by start time.
	GetByPhotographerAndDate(photographerID, date string) ([]models.Shoot, error)
	// GetCompletedInPeriod retrieves completed shoots for a photographer
	// within [periodStart, periodEnd].
	GetCompletedInPeriod(photographerID, periodStart, periodEnd string) ([]models.Shoot, error)
	// List retrieves shoots filtered by status ("" for all), newest first.
	List(status string, limit int64) ([]models.Shoot, error)
	// Create inserts a new shoot record.
	Create(shoot *models.Shoot) error
	// Update replaces an existing shoot record.
	Update(shoot *models.Shoot) error
	// Patch applies a partial update document to a shoot.
	Patch(id string, updateDoc bson.M) error
}
