package invoice

import (
	"context"
	"fmt"
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeInvoiceRepo struct {
	invoices map[string]*models.Invoice
}

func newFakeInvoiceRepo(invoices ...*models.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{invoices: map[string]*models.Invoice{}}
	for _, inv := range invoices {
		r.invoices[inv.ID] = inv
	}
	return r
}

func (r *fakeInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInvoiceRepo) GetByStatus(status string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.Status == status {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByPhotographerAndPeriod(photographerID, periodStart string) (*models.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.PhotographerID == photographerID && inv.PeriodStart == periodStart {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByPhotographer(photographerID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.PhotographerID == photographerID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *models.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return fmt.Errorf("invoice %s not found", inv.ID)
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) UpdateStatusIf(id, from, to string) (bool, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.Status != from {
		return false, nil
	}
	inv.Status = to
	return true, nil
}

type fakeShootRepo struct {
	completed map[string][]models.Shoot // photographerID -> completed shoots
}

func (r *fakeShootRepo) GetByID(string) (*models.Shoot, error)    { return nil, nil }
func (r *fakeShootRepo) GetByDate(string) ([]models.Shoot, error) { return nil, nil }
func (r *fakeShootRepo) GetByPhotographerAndDate(string, string) ([]models.Shoot, error) {
	return nil, nil
}

func (r *fakeShootRepo) GetCompletedInPeriod(photographerID, periodStart, periodEnd string) ([]models.Shoot, error) {
	return r.completed[photographerID], nil
}

func (r *fakeShootRepo) List(string, int64) ([]models.Shoot, error) { return nil, nil }
func (r *fakeShootRepo) Create(*models.Shoot) error                 { return nil }
func (r *fakeShootRepo) Update(*models.Shoot) error                 { return nil }
func (r *fakeShootRepo) Patch(string, bson.M) error                 { return nil }

type fakeAccountRepo struct {
	photographers []models.Account
}

func (r *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	for i := range r.photographers {
		if r.photographers[i].ID == id {
			return &r.photographers[i], nil
		}
	}
	return nil, fmt.Errorf("account %s not found", id)
}

func (r *fakeAccountRepo) GetByEmail(string) (*models.Account, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeAccountRepo) GetByTokenHash(string) (*models.Account, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeAccountRepo) GetPhotographers() ([]models.Account, error) {
	return r.photographers, nil
}

func (r *fakeAccountRepo) Create(*models.Account) error            { return nil }
func (r *fakeAccountRepo) Update(*models.Account) error            { return nil }
func (r *fakeAccountRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (r *fakeAccountRepo) Delete(string) error                     { return nil }

func (r *fakeAccountRepo) GetAvailability(string, string) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (r *fakeAccountRepo) SetAvailability(string, string, []models.AvailabilitySlot) error {
	return nil
}

func pendingInvoice(id string) *models.Invoice {
	return &models.Invoice{
		ID:             id,
		PhotographerID: "p1",
		PeriodStart:    "2026-08-17",
		PeriodEnd:      "2026-08-23",
		Status:         models.InvoiceStatusPending,
		Lines:          []models.InvoiceLine{{Type: models.LineCharge, Amount: 150}},
		Total:          150,
	}
}

func TestApprovePendingInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo(pendingInvoice("inv-1"))
	svc := &DefaultInvoiceService{Repo: repo}

	inv, err := svc.Approve(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusApproved, inv.Status)

	// Approving again fails; only pending invoices move.
	_, err = svc.Approve(context.Background(), "inv-1")
	assert.Error(t, err)
}

func TestRejectRecordsReason(t *testing.T) {
	repo := newFakeInvoiceRepo(pendingInvoice("inv-1"))
	svc := &DefaultInvoiceService{Repo: repo}

	inv, err := svc.Reject(context.Background(), "inv-1", "missing expense receipt")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusRejected, inv.Status)
	assert.Equal(t, "missing expense receipt", inv.RejectionReason)

	_, err = svc.Reject(context.Background(), "inv-1", "again")
	assert.Error(t, err)
}

func TestPendingApprovals(t *testing.T) {
	paid := pendingInvoice("inv-2")
	paid.Status = models.InvoiceStatusPaid
	repo := newFakeInvoiceRepo(pendingInvoice("inv-1"), paid)
	svc := &DefaultInvoiceService{Repo: repo}

	pending, err := svc.PendingApprovals(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "inv-1", pending[0].ID)
}

func TestAggregateWeekBuildsInvoicesFromCompletedShoots(t *testing.T) {
	repo := newFakeInvoiceRepo()
	shoots := &fakeShootRepo{completed: map[string][]models.Shoot{
		"p1": {
			{
				ID:       "sh-1",
				Location: models.Address{Street: "100 Main St", City: "Austin"},
				Services: []models.SelectedService{
					{ServiceID: "svc-hdr", Name: "HDR Photography", PhotographerPay: 60, Quantity: 1},
					{ServiceID: "svc-drone", Name: "Drone Photos", PhotographerPay: 40, Quantity: 2},
					{ServiceID: "svc-edit", Name: "Virtual Staging", PhotographerPay: 0, Quantity: 1},
				},
			},
		},
	}}
	accounts := &fakeAccountRepo{photographers: []models.Account{
		{ID: "p1", Name: "Alice", Role: models.RolePhotographer, Active: true},
		{ID: "p2", Name: "Bob", Role: models.RolePhotographer, Active: true}, // no completed work
	}}
	svc := &DefaultInvoiceService{Repo: repo, ShootRepo: shoots, AccountRepo: accounts}

	created, err := svc.AggregateWeek(context.Background(), "2026-08-17")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	inv, err := repo.GetByPhotographerAndPeriod("p1", "2026-08-17")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, models.InvoiceStatusPending, inv.Status)
	assert.Equal(t, "2026-08-23", inv.PeriodEnd)
	// Zero-pay services never become lines.
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, 140.0, inv.Total) // 60 + 40*2

	// Re-running the same week is a no-op.
	created, err = svc.AggregateWeek(context.Background(), "2026-08-17")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestAggregateWeekRejectsBadPeriod(t *testing.T) {
	svc := &DefaultInvoiceService{Repo: newFakeInvoiceRepo()}

	_, err := svc.AggregateWeek(context.Background(), "17-08-2026")
	assert.Error(t, err)
}

func TestListForPhotographer(t *testing.T) {
	other := pendingInvoice("inv-2")
	other.PhotographerID = "p2"
	repo := newFakeInvoiceRepo(pendingInvoice("inv-1"), other)
	svc := &DefaultInvoiceService{Repo: repo}

	invoices, err := svc.ListForPhotographer(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "inv-1", invoices[0].ID)
}

// staleReadInvoiceRepo reports every invoice as approved on read, modeling a
// second pay request that read the status before the first one wrote it. The
// conditional transition underneath still only succeeds once.
type staleReadInvoiceRepo struct {
	*fakeInvoiceRepo
}

func (r *staleReadInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	inv, err := r.fakeInvoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	inv.Status = models.InvoiceStatusApproved
	return inv, nil
}

func approvedInvoice(id string) *models.Invoice {
	inv := pendingInvoice(id)
	inv.Status = models.InvoiceStatusApproved
	return inv
}

func connectedPhotographer() *fakeAccountRepo {
	return &fakeAccountRepo{photographers: []models.Account{
		{ID: "p1", Name: "Alice", Role: models.RolePhotographer, Active: true, StripeAccountID: "acct_123"},
	}}
}

func TestPayTransfersOnceUnderConcurrentRequests(t *testing.T) {
	repo := &staleReadInvoiceRepo{newFakeInvoiceRepo(approvedInvoice("inv-1"))}
	transfers := 0
	svc := &DefaultInvoiceService{
		Repo:        repo,
		AccountRepo: connectedPhotographer(),
		CreateTransfer: func(params *stripe.TransferParams) (*stripe.Transfer, error) {
			transfers++
			assert.Equal(t, "invoice-payout-inv-1", *params.IdempotencyKey)
			return &stripe.Transfer{ID: "tr_1"}, nil
		},
	}

	paid, err := svc.Pay(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)
	assert.Equal(t, "tr_1", paid.PayoutRef)

	// The second request read "approved" before the first one wrote; it
	// loses the status transition and never reaches Stripe.
	_, err = svc.Pay(context.Background(), "inv-1")
	require.Error(t, err)
	assert.Equal(t, 1, transfers)
}

func TestPayTransferFailureReleasesClaim(t *testing.T) {
	repo := newFakeInvoiceRepo(approvedInvoice("inv-1"))
	fail := true
	svc := &DefaultInvoiceService{
		Repo:        repo,
		AccountRepo: connectedPhotographer(),
		CreateTransfer: func(params *stripe.TransferParams) (*stripe.Transfer, error) {
			if fail {
				return nil, fmt.Errorf("stripe unavailable")
			}
			return &stripe.Transfer{ID: "tr_2"}, nil
		},
	}

	_, err := svc.Pay(context.Background(), "inv-1")
	require.Error(t, err)
	stored, _ := repo.GetByID("inv-1")
	assert.Equal(t, models.InvoiceStatusApproved, stored.Status)

	// The payout can be retried once Stripe recovers.
	fail = false
	paid, err := svc.Pay(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "tr_2", paid.PayoutRef)
}

func TestPayRejectsUnapprovedInvoice(t *testing.T) {
	svc := &DefaultInvoiceService{
		Repo:        newFakeInvoiceRepo(pendingInvoice("inv-1")),
		AccountRepo: connectedPhotographer(),
	}

	_, err := svc.Pay(context.Background(), "inv-1")
	assert.Error(t, err)
}
