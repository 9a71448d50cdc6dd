package account

import (
	"context"

	"shootflow/models"
)

// AuthResponse carries the signed token returned on login.
type AuthResponse struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

// AccountService owns staff accounts: admin login and the photographer
// roster with its availability.
type AccountService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, accountID string) error
	Register(ctx context.Context, acct models.Account, password string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetPhotographers(ctx context.Context) ([]models.Account, error)
	UpdateFCMToken(ctx context.Context, accountID, token string) error
	SetAvailability(ctx context.Context, photographerID, date string, slots []models.AvailabilitySlot) error
	GetAvailability(ctx context.Context, photographerID, date string) ([]models.AvailabilitySlot, error)
}
