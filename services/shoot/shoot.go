package shoot

import (
	"context"
	"fmt"
	"time"

	catalogRepo "shootflow/database/repository/catalog"
	shootRepo "shootflow/database/repository/shoot"
	userRepo "shootflow/database/repository/user"
	"shootflow/models"
	"shootflow/services/notification"
	"shootflow/services/pricing"
	"shootflow/services/ranking"
	"shootflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultShootService is the production implementation.
type DefaultShootService struct {
	Repo         shootRepo.ShootRepository
	CatalogRepo  catalogRepo.CatalogRepository
	AccountRepo  userRepo.AccountRepository
	Ranker       ranking.RankerService
	Notification notification.NotificationService
	TaxRate      float64
}

// Book creates a shoot from a booking request. Each selected service's price
// is resolved against the property's square footage and frozen onto the
// shoot; the quote is never recomputed from the snapshot.
func (s *DefaultShootService) Book(ctx context.Context, req BookingRequest) (*models.Shoot, error) {
	if len(req.Services) == 0 {
		return nil, fmt.Errorf("at least one service must be selected")
	}
	if _, err := time.Parse("2006-01-02", req.ScheduledDate); err != nil {
		return nil, fmt.Errorf("invalid scheduled date %q: %w", req.ScheduledDate, err)
	}

	quote, err := s.buildQuote(req.Services, sqftOf(req.Property), req.ManualTaxAmount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sh := &models.Shoot{
		ID:            uuid.New().String(),
		Status:        models.ShootStatusPending,
		ScheduledDate: req.ScheduledDate,
		Time:          req.Time,
		Location:      req.Location,
		Client:        req.Client,
		Property:      req.Property,
		Services:      quote.Lines,
		Payment: models.PaymentSummary{
			BaseQuote:  quote.BaseQuote,
			TaxAmount:  quote.TaxAmount,
			TaxManual:  quote.TaxManual,
			TotalQuote: quote.TotalQuote,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(sh); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("shoot booked",
		zap.String("shootID", sh.ID),
		zap.String("date", sh.ScheduledDate),
		zap.Float64("total", sh.Payment.TotalQuote))
	return sh, nil
}

// Quote re-prices a service selection without persisting anything. Used by
// the booking form as the admin toggles services and edits overrides.
func (s *DefaultShootService) Quote(ctx context.Context, req QuoteRequest) (*models.Quote, error) {
	quote, err := s.buildQuote(req.Services, req.Sqft, req.ManualTaxAmount)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *DefaultShootService) buildQuote(selections []BookingService, sqft *float64, manualTax *float64) (*models.Quote, error) {
	var lines []models.QuoteLine
	for _, sel := range selections {
		svc, err := s.CatalogRepo.GetServiceByID(sel.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("unknown service %s: %w", sel.ServiceID, err)
		}
		lines = append(lines, models.QuoteLine{
			Service:  *svc,
			Quantity: sel.Quantity,
			Override: sel.Override,
		})
	}

	manual := manualTax != nil
	var manualAmount float64
	if manual {
		manualAmount = *manualTax
	}
	q := pricing.ComputeQuote(lines, sqft, s.TaxRate, manual, manualAmount)
	return &q, nil
}

// Get returns one shoot.
func (s *DefaultShootService) Get(ctx context.Context, id string) (*models.Shoot, error) {
	return s.Repo.GetByID(id)
}

// List returns shoots filtered by status.
func (s *DefaultShootService) List(ctx context.Context, status string) ([]models.Shoot, error) {
	return s.Repo.List(status, 200)
}

func sqftOf(p models.PropertyDetails) *float64 {
	if p.Sqft > 0 {
		v := p.Sqft
		return &v
	}
	return nil
}
