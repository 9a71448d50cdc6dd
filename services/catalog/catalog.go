package catalog

import (
	"fmt"

	catalogRepo "shootflow/database/repository/catalog"
	"shootflow/models"
	"shootflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// GetServices returns the full catalog for display.
func (s *DefaultCatalogService) GetServices() ([]models.Service, error) {
	return s.Repo.GetAllServices()
}

// GetService returns one service by ID.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.Repo.GetServiceByID(id)
}

// CreateService validates and persists a new service.
func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	if err := ValidateService(svc); err != nil {
		return nil, fmt.Errorf("invalid service: %w", err)
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.Active = true
	if err := s.Repo.CreateService(svc); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("catalog: service created",
		zap.String("serviceID", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}

// UpdateService validates and persists changes to a service.
func (s *DefaultCatalogService) UpdateService(svc *models.Service) (*models.Service, error) {
	if svc.ID == "" {
		return nil, fmt.Errorf("service ID is required")
	}
	if err := ValidateService(svc); err != nil {
		return nil, fmt.Errorf("invalid service: %w", err)
	}
	if err := s.Repo.UpdateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service from the catalog.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Repo.DeleteService(id)
}

// GetCategories returns all categories for tabbing.
func (s *DefaultCatalogService) GetCategories() ([]models.ServiceCategory, error) {
	return s.Repo.GetAllCategories()
}

// CreateCategory persists a new category. The legacy "Photo"/"Photos" name
// variants collapse to the canonical name; creating a duplicate of an
// existing canonical category is rejected.
func (s *DefaultCatalogService) CreateCategory(cat *models.ServiceCategory) (*models.ServiceCategory, error) {
	if cat.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	cat.Name = models.CanonicalCategoryName(cat.Name)
	if existing, err := s.Repo.GetCategoryByName(cat.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("category %q already exists", cat.Name)
	}
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory persists changes to a category.
func (s *DefaultCatalogService) UpdateCategory(cat *models.ServiceCategory) (*models.ServiceCategory, error) {
	if cat.ID == "" {
		return nil, fmt.Errorf("category ID is required")
	}
	if cat.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	cat.Name = models.CanonicalCategoryName(cat.Name)
	if err := s.Repo.UpdateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory removes a category. Categories still holding services
// cannot be deleted.
func (s *DefaultCatalogService) DeleteCategory(id string) error {
	services, err := s.Repo.GetServicesByCategory(id)
	if err != nil {
		return err
	}
	if len(services) > 0 {
		return fmt.Errorf("category has %d services and cannot be deleted", len(services))
	}
	return s.Repo.DeleteCategory(id)
}
