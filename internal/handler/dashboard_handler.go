package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/service"
)

// DashboardHandler serves the admin dashboard aggregations and the client
// account view. Client routes read the company from the token claims, so a
// client can never reach another company's invoices.
type DashboardHandler struct {
	dashboardService service.DashboardService
	invoiceService   service.InvoiceService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, invoiceService service.InvoiceService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		invoiceService:   invoiceService,
	}
}

// RegisterRoutes registers dashboard and client account routes
func (h *DashboardHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware, clientMiddleware gin.HandlerFunc) {
	dashboard := router.Group("/v1/dashboard", authMiddleware, adminMiddleware)
	{
		dashboard.GET("/stats", h.GetStats)
	}

	my := router.Group("/v1/my", authMiddleware, clientMiddleware)
	{
		my.GET("/stats", h.GetMyStats)
		my.GET("/invoices", h.ListMyInvoices)
		my.GET("/invoices/:number", h.GetMyInvoice)
	}
}

// GetStats aggregates all invoices for the admin dashboard
// @Summary Dashboard statistics
// @Description Counts by status, revenue, pending payments, payments this month and collection rate over all invoices
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats "Statistics"
// @Router /v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, stats)
}

// GetMyStats aggregates the authenticated client's invoices
// @Summary My account statistics
// @Tags my
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats "Statistics"
// @Failure 403 {object} model.ErrorResponse "Not a client account"
// @Router /v1/my/stats [get]
func (h *DashboardHandler) GetMyStats(c *gin.Context) {
	companyName := currentCompanyName(c)
	if companyName == "" {
		respondForbidden(c, "Account is not linked to a client company")
		return
	}

	stats, err := h.dashboardService.StatsForCompany(c.Request.Context(), companyName)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, stats)
}

// ListMyInvoices retrieves the authenticated client's invoices
// @Summary My invoices
// @Tags my
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.InvoiceResponse "Invoices"
// @Failure 403 {object} model.ErrorResponse "Not a client account"
// @Router /v1/my/invoices [get]
func (h *DashboardHandler) ListMyInvoices(c *gin.Context) {
	companyName := currentCompanyName(c)
	if companyName == "" {
		respondForbidden(c, "Account is not linked to a client company")
		return
	}

	invoices, err := h.invoiceService.ListForCompany(c.Request.Context(), companyName)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceListResponse(invoices))
}

// GetMyInvoice retrieves one of the authenticated client's invoices. The
// first read of a sent invoice marks it viewed.
// @Summary Get one of my invoices
// @Tags my
// @Produce json
// @Security BearerAuth
// @Param number path string true "Invoice number"
// @Success 200 {object} model.InvoiceResponse "Invoice"
// @Failure 403 {object} model.ErrorResponse "Invoice belongs to another company"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /v1/my/invoices/{number} [get]
func (h *DashboardHandler) GetMyInvoice(c *gin.Context) {
	companyName := currentCompanyName(c)
	if companyName == "" {
		respondForbidden(c, "Account is not linked to a client company")
		return
	}

	number, err := getInvoiceNumberParam(c, "number")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.GetForClient(c.Request.Context(), number, companyName)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, model.NewInvoiceResponse(invoice))
}
