package invoice

import (
	"context"

	"shootflow/models"
)

// InvoiceService owns the weekly photographer invoice flow. Invoices are
// created by the aggregation worker; the dashboard approves, rejects or pays
// them.
type InvoiceService interface {
	PendingApprovals(ctx context.Context) ([]models.Invoice, error)
	ListForPhotographer(ctx context.Context, photographerID string) ([]models.Invoice, error)
	Approve(ctx context.Context, invoiceID string) (*models.Invoice, error)
	Reject(ctx context.Context, invoiceID, reason string) (*models.Invoice, error)
	Pay(ctx context.Context, invoiceID string) (*models.Invoice, error)
	// AggregateWeek builds pending invoices for every photographer with
	// completed shoots in the week starting periodStart ("2006-01-02").
	AggregateWeek(ctx context.Context, periodStart string) (int, error)
}
