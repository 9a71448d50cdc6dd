package invoice

import (
	"context"
	"fmt"
	"math"
	"time"

	"shootflow/models"
	"shootflow/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/transfer"
	"go.uber.org/zap"
)

// Pay pays an approved invoice by transferring the total to the
// photographer's connected Stripe account.
func (s *DefaultInvoiceService) Pay(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusApproved {
		return nil, fmt.Errorf("invoice %s is %s, only approved invoices can be paid", invoiceID, inv.Status)
	}
	if inv.Total <= 0 {
		return nil, fmt.Errorf("invoice %s has a non-positive total", invoiceID)
	}

	acct, err := s.AccountRepo.GetByID(inv.PhotographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photographer %s: %w", inv.PhotographerID, err)
	}
	if acct.StripeAccountID == "" {
		return nil, fmt.Errorf("photographer %s has no connected Stripe account", inv.PhotographerID)
	}

	// Claim the invoice before touching Stripe. A concurrent pay request
	// for the same invoice loses the transition and never transfers.
	claimed, err := s.Repo.UpdateStatusIf(invoiceID, models.InvoiceStatusApproved, models.InvoiceStatusPaid)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("invoice %s is no longer approved", invoiceID)
	}

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(int64(math.Round(inv.Total * 100))),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Destination: stripe.String(acct.StripeAccountID),
	}
	params.AddMetadata("invoice_id", inv.ID)
	params.AddMetadata("period_start", inv.PeriodStart)
	// Stripe dedupes retried requests on this key even if the claim above
	// is ever bypassed (e.g. by a manual status edit).
	params.IdempotencyKey = stripe.String("invoice-payout-" + inv.ID)

	tr, err := s.newTransfer(params)
	if err != nil {
		// Release the claim so the payout can be retried.
		if _, uerr := s.Repo.UpdateStatusIf(invoiceID, models.InvoiceStatusPaid, models.InvoiceStatusApproved); uerr != nil {
			utils.GetLogger().Error("pay: failed to release claim after transfer error",
				zap.String("invoiceID", invoiceID), zap.Error(uerr))
		}
		return nil, fmt.Errorf("stripe transfer failed for invoice %s: %w", invoiceID, err)
	}

	inv.Status = models.InvoiceStatusPaid
	inv.PayoutRef = tr.ID
	inv.UpdatedAt = time.Now()
	if err := s.Repo.Update(inv); err != nil {
		// The transfer went through; surface the inconsistency loudly.
		utils.GetLogger().Error("pay: transfer succeeded but invoice update failed",
			zap.String("invoiceID", inv.ID), zap.String("transferID", tr.ID), zap.Error(err))
		return nil, err
	}

	s.notify(ctx, inv)
	return inv, nil
}

func (s *DefaultInvoiceService) newTransfer(params *stripe.TransferParams) (*stripe.Transfer, error) {
	if s.CreateTransfer != nil {
		return s.CreateTransfer(params)
	}
	return transfer.New(params)
}
