package handlers

import (
	"net/http"

	"shootflow/middleware"
	"shootflow/models"
	"shootflow/services/account"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes login and account endpoints.
type AuthHandler struct {
	AccountSvc account.AccountService
	Logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc account.AccountService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{AccountSvc: svc, Logger: logger}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.AccountSvc.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		h.Logger.Warn("LoginHandler: authentication failed", zap.String("email", body.Email))
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout, revoking the caller's token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	accountID := c.GetString(middleware.CtxAccountID)
	if err := h.AccountSvc.RevokeToken(c.Request.Context(), accountID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// RegisterAccountHandler handles POST /api/admin/accounts (admin only).
func (h *AuthHandler) RegisterAccountHandler(c *gin.Context) {
	var body struct {
		Account  models.Account `json:"account" binding:"required"`
		Password string         `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.AccountSvc.Register(c.Request.Context(), body.Account, body.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create account", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateFCMTokenHandler handles PUT /api/accounts/fcm-token for the caller.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var body struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	accountID := c.GetString(middleware.CtxAccountID)
	if err := h.AccountSvc.UpdateFCMToken(c.Request.Context(), accountID, body.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update FCM token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}
