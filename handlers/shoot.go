package handlers

import (
	"net/http"

	"shootflow/models"
	"shootflow/services/shoot"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShootHandler exposes the booking and shoot-lifecycle endpoints.
type ShootHandler struct {
	ShootSvc shoot.ShootService
	Logger   *zap.Logger
}

// NewShootHandler creates a new ShootHandler instance.
func NewShootHandler(svc shoot.ShootService, logger *zap.Logger) *ShootHandler {
	return &ShootHandler{ShootSvc: svc, Logger: logger}
}

// BookShootHandler handles POST /api/shoots.
func (h *ShootHandler) BookShootHandler(c *gin.Context) {
	var req shoot.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.ShootSvc.Book(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("BookShoot: booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to book shoot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// QuoteHandler handles POST /api/shoots/quote. Nothing is persisted.
func (h *ShootHandler) QuoteHandler(c *gin.Context) {
	var req shoot.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	quote, err := h.ShootSvc.Quote(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetShootHandler handles GET /api/shoots/:id.
func (h *ShootHandler) GetShootHandler(c *gin.Context) {
	sh, err := h.ShootSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "shoot not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sh)
}

// ListShootsHandler handles GET /api/shoots. An optional ?status= query
// narrows the result.
func (h *ShootHandler) ListShootsHandler(c *gin.Context) {
	shoots, err := h.ShootSvc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.Logger.Error("ListShoots: query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch shoots", err.Error())
		return
	}
	c.JSON(http.StatusOK, shoots)
}

// PatchShootHandler handles PATCH /api/shoots/:id. The body is a partial
// document; unknown fields are dropped, not rejected.
func (h *ShootHandler) PatchShootHandler(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated, err := h.ShootSvc.Patch(c.Request.Context(), c.Param("id"), raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update shoot", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeclineShootHandler handles POST /api/shoots/:id/decline.
func (h *ShootHandler) DeclineShootHandler(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.ShootSvc.Decline(c.Request.Context(), c.Param("id"), body.Reason); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to decline shoot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shoot declined"})
}

// UpdateTourLinksHandler handles PUT /api/shoots/:id/tour-links.
func (h *ShootHandler) UpdateTourLinksHandler(c *gin.Context) {
	var links models.TourLinks
	if err := c.ShouldBindJSON(&links); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated, err := h.ShootSvc.UpdateTourLinks(c.Request.Context(), c.Param("id"), links)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update tour links", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AttachMediaHandler handles POST /api/shoots/:id/media, appending already
// uploaded asset URLs to the shoot.
func (h *ShootHandler) AttachMediaHandler(c *gin.Context) {
	var body struct {
		URLs []string `json:"urls" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated, err := h.ShootSvc.AttachMedia(c.Request.Context(), c.Param("id"), body.URLs)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to attach media", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
