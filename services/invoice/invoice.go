package invoice

import (
	"context"
	"fmt"
	"time"

	invoiceRepo "shootflow/database/repository/invoice"
	shootRepo "shootflow/database/repository/shoot"
	userRepo "shootflow/database/repository/user"
	"shootflow/models"
	"shootflow/services/notification"
	"shootflow/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo         invoiceRepo.InvoiceRepository
	ShootRepo    shootRepo.ShootRepository
	AccountRepo  userRepo.AccountRepository
	Notification notification.NotificationService

	// CreateTransfer overrides the Stripe transfer call; nil uses the
	// live API. Tests inject a stub here.
	CreateTransfer func(params *stripe.TransferParams) (*stripe.Transfer, error)
}

// PendingApprovals returns invoices awaiting an admin decision.
func (s *DefaultInvoiceService) PendingApprovals(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.GetByStatus(models.InvoiceStatusPending)
}

// ListForPhotographer returns a photographer's invoice history, newest
// period first.
func (s *DefaultInvoiceService) ListForPhotographer(ctx context.Context, photographerID string) ([]models.Invoice, error) {
	return s.Repo.GetByPhotographer(photographerID)
}

// Approve moves a pending invoice to approved.
func (s *DefaultInvoiceService) Approve(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusPending {
		return nil, fmt.Errorf("invoice %s is %s, only pending invoices can be approved", invoiceID, inv.Status)
	}

	inv.Status = models.InvoiceStatusApproved
	inv.UpdatedAt = time.Now()
	if err := s.Repo.Update(inv); err != nil {
		return nil, err
	}
	s.notify(ctx, inv)
	return inv, nil
}

// Reject moves a pending invoice to rejected with a reason.
func (s *DefaultInvoiceService) Reject(ctx context.Context, invoiceID, reason string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusPending {
		return nil, fmt.Errorf("invoice %s is %s, only pending invoices can be rejected", invoiceID, inv.Status)
	}

	inv.Status = models.InvoiceStatusRejected
	inv.RejectionReason = reason
	inv.UpdatedAt = time.Now()
	if err := s.Repo.Update(inv); err != nil {
		return nil, err
	}
	s.notify(ctx, inv)
	return inv, nil
}

// AggregateWeek rolls each photographer's completed shoots for one week into
// a pending invoice. Photographer-weeks that already have an invoice are
// skipped, so the worker can re-run safely.
func (s *DefaultInvoiceService) AggregateWeek(ctx context.Context, periodStart string) (int, error) {
	logger := utils.GetLogger()

	start, err := time.Parse("2006-01-02", periodStart)
	if err != nil {
		return 0, fmt.Errorf("invalid period start %q: %w", periodStart, err)
	}
	periodEnd := start.AddDate(0, 0, 6).Format("2006-01-02")

	photographers, err := s.AccountRepo.GetPhotographers()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, p := range photographers {
		existing, err := s.Repo.GetByPhotographerAndPeriod(p.ID, periodStart)
		if err != nil {
			logger.Warn("aggregate: lookup failed", zap.String("photographerID", p.ID), zap.Error(err))
			continue
		}
		if existing != nil {
			continue
		}

		shoots, err := s.ShootRepo.GetCompletedInPeriod(p.ID, periodStart, periodEnd)
		if err != nil {
			logger.Warn("aggregate: shoot query failed", zap.String("photographerID", p.ID), zap.Error(err))
			continue
		}
		if len(shoots) == 0 {
			continue
		}

		var lines []models.InvoiceLine
		for _, sh := range shoots {
			for _, svc := range sh.Services {
				if svc.PhotographerPay <= 0 {
					continue
				}
				lines = append(lines, models.InvoiceLine{
					Type:        models.LineCharge,
					ShootID:     sh.ID,
					Description: fmt.Sprintf("%s (%s)", svc.Name, sh.Location.Line()),
					Amount:      svc.PhotographerPay * float64(svc.Quantity),
				})
			}
		}
		if len(lines) == 0 {
			continue
		}

		now := time.Now()
		inv := &models.Invoice{
			ID:             uuid.New().String(),
			PhotographerID: p.ID,
			PeriodStart:    periodStart,
			PeriodEnd:      periodEnd,
			Lines:          lines,
			Status:         models.InvoiceStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		inv.Total = inv.SumLines()

		if err := s.Repo.Create(inv); err != nil {
			logger.Error("aggregate: failed to create invoice",
				zap.String("photographerID", p.ID), zap.Error(err))
			continue
		}
		created++
	}

	logger.Info("aggregate: weekly invoices created",
		zap.String("periodStart", periodStart), zap.Int("count", created))
	return created, nil
}

func (s *DefaultInvoiceService) notify(ctx context.Context, inv *models.Invoice) {
	if s.Notification == nil {
		return
	}
	if err := s.Notification.NotifyInvoiceStatus(ctx, inv.PhotographerID, inv.ID, inv.Status); err != nil {
		utils.GetLogger().Warn("invoice: push failed",
			zap.String("invoiceID", inv.ID), zap.Error(err))
	}
}
