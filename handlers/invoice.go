package handlers

import (
	"net/http"

	"shootflow/middleware"
	"shootflow/services/invoice"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the weekly invoice approval and payout endpoints.
type InvoiceHandler struct {
	InvoiceSvc invoice.InvoiceService
	Logger     *zap.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler instance.
func NewInvoiceHandler(svc invoice.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{InvoiceSvc: svc, Logger: logger}
}

// PendingInvoicesHandler handles GET /api/admin/invoices/pending.
func (h *InvoiceHandler) PendingInvoicesHandler(c *gin.Context) {
	invoices, err := h.InvoiceSvc.PendingApprovals(c.Request.Context())
	if err != nil {
		h.Logger.Error("PendingInvoices: query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// MyInvoicesHandler handles GET /api/invoices for the authenticated
// photographer.
func (h *InvoiceHandler) MyInvoicesHandler(c *gin.Context) {
	photographerID := c.GetString(middleware.CtxAccountID)
	invoices, err := h.InvoiceSvc.ListForPhotographer(c.Request.Context(), photographerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// ApproveInvoiceHandler handles POST /api/admin/invoices/:id/approve.
func (h *InvoiceHandler) ApproveInvoiceHandler(c *gin.Context) {
	inv, err := h.InvoiceSvc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to approve invoice", err.Error())
		return
	}
	c.JSON(http.StatusOK, inv)
}

// RejectInvoiceHandler handles POST /api/admin/invoices/:id/reject.
func (h *InvoiceHandler) RejectInvoiceHandler(c *gin.Context) {
	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inv, err := h.InvoiceSvc.Reject(c.Request.Context(), c.Param("id"), body.Reason)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to reject invoice", err.Error())
		return
	}
	c.JSON(http.StatusOK, inv)
}

// PayInvoiceHandler handles POST /api/admin/invoices/:id/pay, issuing a
// Stripe transfer to the photographer's connected account.
func (h *InvoiceHandler) PayInvoiceHandler(c *gin.Context) {
	inv, err := h.InvoiceSvc.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("PayInvoice: payout failed",
			zap.String("invoiceID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to pay invoice", err.Error())
		return
	}
	c.JSON(http.StatusOK, inv)
}

// AggregateInvoicesHandler handles POST /api/admin/invoices/aggregate,
// a manual trigger for the weekly rollup. The worker runs the same job on a
// schedule.
func (h *InvoiceHandler) AggregateInvoicesHandler(c *gin.Context) {
	var body struct {
		PeriodStart string `json:"period_start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	count, err := h.InvoiceSvc.AggregateWeek(c.Request.Context(), body.PeriodStart)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to aggregate invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": count})
}
