package catalog

import (
	"fmt"
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	services   map[string]*models.Service
	categories map[string]*models.ServiceCategory
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services:   map[string]*models.Service{},
		categories: map[string]*models.ServiceCategory{},
	}
}

func (r *fakeCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return svc, nil
}

func (r *fakeCatalogRepo) GetAllServices() ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetServicesByCategory(categoryID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		if svc.CategoryID == categoryID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) CreateService(svc *models.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeCatalogRepo) UpdateService(svc *models.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return fmt.Errorf("service %s not found", svc.ID)
	}
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeCatalogRepo) DeleteService(id string) error {
	delete(r.services, id)
	return nil
}

func (r *fakeCatalogRepo) GetCategoryByID(id string) (*models.ServiceCategory, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %s not found", id)
	}
	return cat, nil
}

func (r *fakeCatalogRepo) GetCategoryByName(name string) (*models.ServiceCategory, error) {
	for _, cat := range r.categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("category %q not found", name)
}

func (r *fakeCatalogRepo) GetAllCategories() ([]models.ServiceCategory, error) {
	var out []models.ServiceCategory
	for _, cat := range r.categories {
		out = append(out, *cat)
	}
	return out, nil
}

func (r *fakeCatalogRepo) CreateCategory(cat *models.ServiceCategory) error {
	r.categories[cat.ID] = cat
	return nil
}

func (r *fakeCatalogRepo) UpdateCategory(cat *models.ServiceCategory) error {
	if _, ok := r.categories[cat.ID]; !ok {
		return fmt.Errorf("category %s not found", cat.ID)
	}
	r.categories[cat.ID] = cat
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(id string) error {
	delete(r.categories, id)
	return nil
}

func TestCreateServiceValidatesAndAssignsID(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService(&models.Service{
		Name:        "Drone Photos",
		PricingType: models.PricingFixed,
		Price:       175,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)

	_, err = svc.CreateService(&models.Service{PricingType: models.PricingFixed})
	assert.Error(t, err)
}

func TestCreateServiceRejectsOverlappingRanges(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	_, err := svc.CreateService(&models.Service{
		Name:        "HDR Photography",
		PricingType: models.PricingVariable,
		SqftRanges: []models.SqftRange{
			{SqftFrom: 0, SqftTo: 2000, Price: 150},
			{SqftFrom: 1500, SqftTo: 4000, Price: 200},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestCreateCategoryCanonicalizesName(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateCategory(&models.ServiceCategory{Name: "photo"})
	require.NoError(t, err)
	assert.Equal(t, "Photos", created.Name)

	// The other legacy spelling is now a duplicate.
	_, err = svc.CreateCategory(&models.ServiceCategory{Name: "Photos"})
	assert.Error(t, err)
	_, err = svc.CreateCategory(&models.ServiceCategory{Name: "PHOTO"})
	assert.Error(t, err)

	_, err = svc.CreateCategory(&models.ServiceCategory{Name: "Video"})
	assert.NoError(t, err)
}

func TestDeleteCategoryRefusesWhenServicesRemain(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.categories["cat-1"] = &models.ServiceCategory{ID: "cat-1", Name: "Photos"}
	repo.services["svc-1"] = &models.Service{ID: "svc-1", Name: "HDR", CategoryID: "cat-1"}
	svc := &DefaultCatalogService{Repo: repo}

	err := svc.DeleteCategory("cat-1")
	require.Error(t, err)

	delete(repo.services, "svc-1")
	assert.NoError(t, svc.DeleteCategory("cat-1"))
	assert.Empty(t, repo.categories)
}

func TestUpdateServiceRequiresID(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	_, err := svc.UpdateService(&models.Service{Name: "HDR", PricingType: models.PricingFixed})
	assert.Error(t, err)
}
