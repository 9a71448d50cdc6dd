package catalog

import "shootflow/models"

// CatalogService owns the service/category catalog the dashboard sells from.
type CatalogService interface {
	GetServices() ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(svc *models.Service) (*models.Service, error)
	DeleteService(id string) error

	GetCategories() ([]models.ServiceCategory, error)
	CreateCategory(cat *models.ServiceCategory) (*models.ServiceCategory, error)
	UpdateCategory(cat *models.ServiceCategory) (*models.ServiceCategory, error)
	DeleteCategory(id string) error
}
