package account

import (
	"context"
	"fmt"
	"time"

	userRepo "shootflow/database/repository/user"
	"shootflow/models"
	"shootflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo userRepo.AccountRepository
}

// Authenticate verifies credentials and issues a JWT. Only the SHA-256 hash
// of the token is stored; presenting a token whose hash is no longer on the
// account fails authentication.
func (s *DefaultAccountService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Warn("Authenticate: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("invalid email or password")
	}
	if !acct.Active {
		return nil, fmt.Errorf("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(acct.ID, acct.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	update := bson.M{"$set": bson.M{"token_hash": utils.HashToken(token), "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(acct.ID, update); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	acct.TokenHash = ""
	return &AuthResponse{Token: token, Account: *acct}, nil
}

// RevokeToken invalidates the account's current token.
func (s *DefaultAccountService) RevokeToken(ctx context.Context, accountID string) error {
	update := bson.M{"$unset": bson.M{"token_hash": ""}}
	return s.Repo.UpdateWithDocument(accountID, update)
}

// Register creates a staff account with a bcrypt-hashed password.
func (s *DefaultAccountService) Register(ctx context.Context, acct models.Account, password string) (*models.Account, error) {
	if acct.Email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	switch acct.Role {
	case models.RoleAdmin, models.RolePhotographer:
	default:
		return nil, fmt.Errorf("role must be %q or %q", models.RoleAdmin, models.RolePhotographer)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	acct.ID = uuid.New().String()
	acct.PasswordHash = string(hash)
	acct.Active = true
	acct.CreatedAt = now
	acct.UpdatedAt = now

	if err := s.Repo.Create(&acct); err != nil {
		return nil, err
	}
	acct.PasswordHash = ""
	return &acct, nil
}

// GetByID returns one account.
func (s *DefaultAccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return s.Repo.GetByID(id)
}

// GetPhotographers returns the active photographer roster.
func (s *DefaultAccountService) GetPhotographers(ctx context.Context) ([]models.Account, error) {
	return s.Repo.GetPhotographers()
}

// UpdateFCMToken stores a device token for pushes.
func (s *DefaultAccountService) UpdateFCMToken(ctx context.Context, accountID, token string) error {
	update := bson.M{"$set": bson.M{"fcm_token": token, "updated_at": time.Now()}}
	return s.Repo.UpdateWithDocument(accountID, update)
}

// SetAvailability replaces a photographer's declared windows for a date.
func (s *DefaultAccountService) SetAvailability(ctx context.Context, photographerID, date string, slots []models.AvailabilitySlot) error {
	for _, slot := range slots {
		if slot.End <= slot.Start {
			return fmt.Errorf("slot end must be after start")
		}
	}
	return s.Repo.SetAvailability(photographerID, date, slots)
}

// GetAvailability returns a photographer's declared windows for a date.
func (s *DefaultAccountService) GetAvailability(ctx context.Context, photographerID, date string) ([]models.AvailabilitySlot, error) {
	return s.Repo.GetAvailability(photographerID, date)
}
