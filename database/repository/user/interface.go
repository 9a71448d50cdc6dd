package userRepo

import (
	"shootflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountRepository defines data access for dashboard accounts (admins and
// photographers).
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(email string) (*models.Account, error)
	// GetByTokenHash retrieves the account whose token_hash matches.
	GetByTokenHash(tokenHash string) (*models.Account, error)
	// GetPhotographers retrieves all active photographer accounts.
	GetPhotographers() ([]models.Account, error)
	// Create inserts a new account record.
	Create(acct *models.Account) error
	// Update replaces an existing account record.
	Update(acct *models.Account) error
	// UpdateWithDocument patches an account with the given update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes an account record by its ID.
	Delete(id string) error

	// GetAvailability returns a photographer's declared availability
	// windows for a date.
	GetAvailability(photographerID, date string) ([]models.AvailabilitySlot, error)
	// SetAvailability replaces a photographer's availability windows for a
	// date.
	SetAvailability(photographerID, date string, slots []models.AvailabilitySlot) error
}
