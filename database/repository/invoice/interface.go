package invoiceRepo

import "shootflow/models"

// InvoiceRepository defines data access for weekly photographer invoices.
type InvoiceRepository interface {
	// GetByID retrieves an invoice by its unique ID.
	GetByID(id string) (*models.Invoice, error)
	// GetByStatus retrieves invoices in a given status, newest first.
	GetByStatus(status string) ([]models.Invoice, error)
	// GetByPhotographerAndPeriod retrieves the invoice for one
	// photographer-period, or nil when none exists.
	GetByPhotographerAndPeriod(photographerID, periodStart string) (*models.Invoice, error)
	// GetByPhotographer retrieves all invoices for one photographer,
	// newest period first.
	GetByPhotographer(photographerID string) ([]models.Invoice, error)
	// Create inserts a new invoice record.
	Create(inv *models.Invoice) error
	// Update replaces an existing invoice record.
	Update(inv *models.Invoice) error
	// UpdateStatusIf atomically moves an invoice from one status to
	// another. Returns false when the invoice is not in the expected
	// status, so only one caller can win a transition.
	UpdateStatusIf(id, from, to string) (bool, error)
}
