package catalogRepo

import "shootflow/models"

// CatalogRepository defines data access for services and their categories.
type CatalogRepository interface {
	// GetServiceByID retrieves a service by its unique ID.
	GetServiceByID(id string) (*models.Service, error)
	// GetAllServices retrieves all services, ordered for catalog display.
	GetAllServices() ([]models.Service, error)
	// GetServicesByCategory retrieves services belonging to one category.
	GetServicesByCategory(categoryID string) ([]models.Service, error)
	// CreateService inserts a new service record.
	CreateService(svc *models.Service) error
	// UpdateService modifies an existing service record.
	UpdateService(svc *models.Service) error
	// DeleteService removes a service record by its ID.
	DeleteService(id string) error

	// GetCategoryByID retrieves a category by its unique ID.
	GetCategoryByID(id string) (*models.ServiceCategory, error)
	// GetCategoryByName retrieves a category by its canonical name.
	GetCategoryByName(name string) (*models.ServiceCategory, error)
	// GetAllCategories retrieves all categories.
	GetAllCategories() ([]models.ServiceCategory, error)
	// CreateCategory inserts a new category record.
	CreateCategory(cat *models.ServiceCategory) error
	// UpdateCategory modifies an existing category record.
	UpdateCategory(cat *models.ServiceCategory) error
	// DeleteCategory removes a category record by its ID.
	DeleteCategory(id string) error
}
