package handlers

import (
	"net/http"

	"shootflow/middleware"
	"shootflow/models"
	"shootflow/services/account"
	"shootflow/services/shoot"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PhotographerHandler exposes the roster, availability and assignment
// endpoints.
type PhotographerHandler struct {
	AccountSvc account.AccountService
	ShootSvc   shoot.ShootService
	Logger     *zap.Logger
}

// NewPhotographerHandler creates a new PhotographerHandler instance.
func NewPhotographerHandler(accountSvc account.AccountService, shootSvc shoot.ShootService, logger *zap.Logger) *PhotographerHandler {
	return &PhotographerHandler{AccountSvc: accountSvc, ShootSvc: shootSvc, Logger: logger}
}

// ListPhotographersHandler handles GET /api/users/photographers.
func (h *PhotographerHandler) ListPhotographersHandler(c *gin.Context) {
	photographers, err := h.AccountSvc.GetPhotographers(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListPhotographers: query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch photographers", err.Error())
		return
	}
	c.JSON(http.StatusOK, photographers)
}

// CandidatesHandler handles POST /api/photographer/availability/for-booking.
// The body names the shoot; sort_by defaults to distance.
func (h *PhotographerHandler) CandidatesHandler(c *gin.Context) {
	var body struct {
		ShootID string `json:"shoot_id" binding:"required"`
		SortBy  string `json:"sort_by"`
		Search  string `json:"search"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if body.SortBy == "" {
		body.SortBy = "distance"
	}

	candidates, err := h.ShootSvc.Candidates(c.Request.Context(), body.ShootID, body.SortBy, body.Search)
	if err != nil {
		h.Logger.Error("Candidates: ranking failed",
			zap.String("shootID", body.ShootID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to rank photographers", err.Error())
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// AssignPhotographerHandler handles POST /api/shoots/:id/assign.
func (h *PhotographerHandler) AssignPhotographerHandler(c *gin.Context) {
	var body struct {
		PhotographerID string `json:"photographer_id" binding:"required"`
		CategoryID     string `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated, err := h.ShootSvc.Assign(c.Request.Context(), c.Param("id"), body.PhotographerID, body.CategoryID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to assign photographer", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetAvailabilityHandler handles PUT /api/photographer/availability for the
// authenticated photographer.
func (h *PhotographerHandler) SetAvailabilityHandler(c *gin.Context) {
	var body struct {
		Date  string                    `json:"date" binding:"required"`
		Slots []models.AvailabilitySlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	photographerID := c.GetString(middleware.CtxAccountID)
	if err := h.AccountSvc.SetAvailability(c.Request.Context(), photographerID, body.Date, body.Slots); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to set availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// GetAvailabilityHandler handles GET /api/photographer/availability. Admins
// may pass ?photographer_id= to read another account's slots.
func (h *PhotographerHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date is required", "")
		return
	}

	photographerID := c.GetString(middleware.CtxAccountID)
	if requested := c.Query("photographer_id"); requested != "" && c.GetString(middleware.CtxRole) == models.RoleAdmin {
		photographerID = requested
	}

	slots, err := h.AccountSvc.GetAvailability(c.Request.Context(), photographerID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", err.Error())
		return
	}
	if slots == nil {
		slots = []models.AvailabilitySlot{}
	}
	c.JSON(http.StatusOK, slots)
}
