package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/service"
	"github.com/skelectricals/backend/internal/types"
	"github.com/skelectricals/backend/internal/validator"
)

// InvoiceHandler handles HTTP requests for invoice management
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers invoice routes. Everything here is admin-only;
// client-facing reads live under /v1/my.
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware gin.HandlerFunc) {
	invoices := router.Group("/v1/invoices", authMiddleware, adminMiddleware)
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/recent", h.RecentInvoices)
		invoices.GET("/:number", h.GetInvoice)
		invoices.PUT("/:number", h.UpdateInvoice)
		invoices.PATCH("/:number/status", h.UpdateInvoiceStatus)
		invoices.POST("/reconcile-overdue", h.ReconcileOverdue)
	}
}

// CreateInvoice creates a new invoice
// @Summary Create an invoice
// @Description Create an invoice with auto-assigned number, computed GST totals and status pending
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} model.InvoiceResponse "Created invoice"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Admin only"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateRequest(&req); err != nil {
		respondError(c, err)
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, model.NewInvoiceResponse(invoice))
}

// GetInvoice retrieves one invoice
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param number path string true "Invoice number (7 or INV-007)"
// @Success 200 {object} model.InvoiceResponse "Invoice"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/invoices/{number} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	number, err := getInvoiceNumberParam(c, "number")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceResponse(invoice))
}

// ListInvoices retrieves all invoices, newest first
// @Summary List invoices
// @Description List every invoice after running the overdue sweep
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.InvoiceResponse "Invoices"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceListResponse(invoices))
}

// RecentInvoices retrieves the most recently dated invoices
// @Summary Recent invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum invoices to return" default(5)
// @Success 200 {array} model.InvoiceResponse "Invoices"
// @Router /v1/invoices/recent [get]
func (h *InvoiceHandler) RecentInvoices(c *gin.Context) {
	limit, err := getQueryInt(c, "limit", 5)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if limit < 1 || limit > 100 {
		respondBadRequest(c, "limit must be between 1 and 100")
		return
	}

	invoices, err := h.invoiceService.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceListResponse(invoices))
}

// UpdateInvoice applies a full edit to an invoice
// @Summary Update an invoice
// @Description Edit invoice fields; due-date changes adjust the status and an explicit paid/partially_paid/cancelled/refunded/draft status always wins
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Invoice number"
// @Param request body model.UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} model.InvoiceResponse "Updated invoice"
// @Failure 400 {object} model.ErrorResponse "Bad request or business rule violation"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/invoices/{number} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	number, err := getInvoiceNumberParam(c, "number")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.UpdateInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), number, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceResponse(invoice))
}

// UpdateInvoiceStatus applies a status-only change
// @Summary Change invoice status
// @Description Set the invoice status; pending/sent/viewed are rejected while the due date has passed
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Invoice number"
// @Param request body model.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} model.InvoiceResponse "Updated invoice"
// @Failure 400 {object} model.ErrorResponse "Unknown status or business rule violation"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/invoices/{number}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	number, err := getInvoiceNumberParam(c, "number")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.UpdateInvoiceStatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), number, types.InvoiceStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceResponse(invoice))
}

// ReconcileOverdue runs the overdue sweep across all invoices
// @Summary Reconcile overdue invoices
// @Description Flip every pending/sent/viewed invoice past its due date to overdue
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "Number of invoices flipped"
// @Router /v1/invoices/reconcile-overdue [post]
func (h *InvoiceHandler) ReconcileOverdue(c *gin.Context) {
	flipped, err := h.invoiceService.ReconcileOverdue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"updated": flipped})
}
