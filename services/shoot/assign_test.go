package shoot

import (
	"context"
	"fmt"
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeAccountRepo struct {
	accounts     map[string]*models.Account
	availability map[string][]models.AvailabilitySlot // photographerID -> slots
}

func (r *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	acct, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s not found", id)
	}
	return acct, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeAccountRepo) GetByTokenHash(tokenHash string) (*models.Account, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeAccountRepo) GetPhotographers() ([]models.Account, error) {
	var out []models.Account
	for _, a := range r.accounts {
		if a.Role == models.RolePhotographer && a.Active {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Create(*models.Account) error            { return nil }
func (r *fakeAccountRepo) Update(*models.Account) error            { return nil }
func (r *fakeAccountRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (r *fakeAccountRepo) Delete(string) error                     { return nil }

func (r *fakeAccountRepo) GetAvailability(photographerID, date string) ([]models.AvailabilitySlot, error) {
	return r.availability[photographerID], nil
}

func (r *fakeAccountRepo) SetAvailability(photographerID, date string, slots []models.AvailabilitySlot) error {
	if r.availability == nil {
		r.availability = map[string][]models.AvailabilitySlot{}
	}
	r.availability[photographerID] = slots
	return nil
}

type passthroughRanker struct{}

func (passthroughRanker) Rank(ctx context.Context, loc models.Address, candidates []models.PhotographerCandidate, sortBy, searchQuery string) ([]models.PhotographerCandidate, error) {
	return candidates, nil
}

func photographerAccount(id, name string) *models.Account {
	return &models.Account{
		ID: id, Name: name, Role: models.RolePhotographer, Active: true,
		HomeAddress: models.Address{Street: id + " Home Rd", City: "Austin", State: "TX"},
	}
}

func TestAssignOverallPhotographer(t *testing.T) {
	repo := newFakeShootRepo(&models.Shoot{
		ID:            "sh-1",
		Status:        models.ShootStatusPending,
		ScheduledDate: "2026-09-14",
		Time:          "10:00",
	})
	accounts := &fakeAccountRepo{accounts: map[string]*models.Account{
		"p1": photographerAccount("p1", "Alice"),
	}}
	notifier := &fakeNotifier{}
	svc := &DefaultShootService{Repo: repo, AccountRepo: accounts, Notification: notifier}

	sh, err := svc.Assign(context.Background(), "sh-1", "p1", "")
	require.NoError(t, err)

	require.NotNil(t, sh.Photographer)
	assert.Equal(t, "p1", *sh.Photographer)
	assert.Equal(t, []string{"p1"}, sh.PhotographerIDs)
	assert.Equal(t, models.ShootStatusScheduled, sh.Status)
	assert.Equal(t, []string{"p1"}, notifier.assigned)
}

func TestAssignPerCategoryKeepsIDListInSync(t *testing.T) {
	p1 := "p1"
	repo := newFakeShootRepo(&models.Shoot{
		ID:            "sh-1",
		Status:        models.ShootStatusScheduled,
		ScheduledDate: "2026-09-14",
		Photographer:  &p1,
	})
	accounts := &fakeAccountRepo{accounts: map[string]*models.Account{
		"p1": photographerAccount("p1", "Alice"),
		"p2": photographerAccount("p2", "Bob"),
	}}
	svc := &DefaultShootService{Repo: repo, AccountRepo: accounts, Notification: &fakeNotifier{}}

	_, err := svc.Assign(context.Background(), "sh-1", "p2", "cat-video")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"cat-video": "p2"},
		repo.lastPatch["category_photographers"])
	assert.ElementsMatch(t, []string{"p1", "p2"}, repo.lastPatch["photographer_ids"])
	// Already scheduled; status stays put.
	assert.NotContains(t, repo.lastPatch, "status")
}

func TestAssignRejectsNonPhotographer(t *testing.T) {
	repo := newFakeShootRepo(&models.Shoot{ID: "sh-1", Status: models.ShootStatusPending})
	accounts := &fakeAccountRepo{accounts: map[string]*models.Account{
		"admin-1": {ID: "admin-1", Name: "Root", Role: models.RoleAdmin, Active: true},
	}}
	svc := &DefaultShootService{Repo: repo, AccountRepo: accounts, Notification: &fakeNotifier{}}

	_, err := svc.Assign(context.Background(), "sh-1", "admin-1", "")
	assert.Error(t, err)

	_, err = svc.Assign(context.Background(), "sh-1", "ghost", "")
	assert.Error(t, err)
}

func TestCandidatesUsesLastShootAsOrigin(t *testing.T) {
	repo := newFakeShootRepo(&models.Shoot{
		ID:            "sh-new",
		Status:        models.ShootStatusPending,
		ScheduledDate: "2026-09-14",
		Location:      models.Address{Street: "500 Congress Ave", City: "Austin", State: "TX"},
	})
	repo.dayShoots = map[string][]models.Shoot{
		"p1": {
			{
				ID: "sh-done", ScheduledDate: "2026-09-14", Time: "09:00",
				Location: models.Address{Street: "42 Lakeview Dr", City: "Austin", State: "TX"},
			},
		},
	}
	accounts := &fakeAccountRepo{
		accounts: map[string]*models.Account{
			"p1": photographerAccount("p1", "Alice"),
			"p2": photographerAccount("p2", "Bob"),
		},
		availability: map[string][]models.AvailabilitySlot{
			"p1": {{Date: "2026-09-14", Start: 8 * 60, End: 20 * 60}},
		},
	}
	svc := &DefaultShootService{
		Repo:         repo,
		AccountRepo:  accounts,
		Ranker:       passthroughRanker{},
		Notification: &fakeNotifier{},
	}

	candidates, err := svc.Candidates(context.Background(), "sh-new", "distance", "")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	byID := map[string]models.PhotographerCandidate{}
	for _, c := range candidates {
		byID[c.ID] = c
	}

	// p1 finished a shoot that day; their origin is its location, and the
	// 09:00 booking is carved out of the declared window.
	p1 := byID["p1"]
	assert.Equal(t, "42 Lakeview Dr", p1.OriginAddress.Street)
	assert.Equal(t, 1, p1.ShootsToday)
	require.Len(t, p1.NetSlots, 2)
	assert.Equal(t, 9*60, p1.NetSlots[0].End)
	assert.Equal(t, 10*60, p1.NetSlots[1].Start)

	// p2 has no shoots and travels from home.
	p2 := byID["p2"]
	assert.Equal(t, "p2 Home Rd", p2.OriginAddress.Street)
	assert.Equal(t, 0, p2.ShootsToday)
	assert.Empty(t, p2.NetSlots)
}
