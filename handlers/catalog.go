package handlers

import (
	"net/http"

	"shootflow/models"
	"shootflow/services/catalog"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes service and category CRUD.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger}
}

// ListServicesHandler handles GET /api/services and GET /api/admin/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogSvc.GetServices()
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/admin/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.CatalogSvc.GetService(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.CatalogSvc.CreateService(&svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.CatalogSvc.UpdateService(&svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.CatalogSvc.DeleteService(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// ListCategoriesHandler handles GET /api/categories.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	cats, err := h.CatalogSvc.GetCategories()
	if err != nil {
		h.Logger.Error("ListCategories: failed to fetch categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, cats)
}

// CreateCategoryHandler handles POST /api/admin/categories.
func (h *CatalogHandler) CreateCategoryHandler(c *gin.Context) {
	var cat models.ServiceCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.CatalogSvc.CreateCategory(&cat)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create category", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCategoryHandler handles PUT /api/admin/categories/:id.
func (h *CatalogHandler) UpdateCategoryHandler(c *gin.Context) {
	var cat models.ServiceCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	cat.ID = c.Param("id")

	updated, err := h.CatalogSvc.UpdateCategory(&cat)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update category", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategoryHandler handles DELETE /api/admin/categories/:id.
func (h *CatalogHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.CatalogSvc.DeleteCategory(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to delete category", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
