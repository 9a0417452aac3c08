package model

import (
	"github.com/shopspring/decimal"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/types"
)

// LineItemRequest carries the four input fields of a line item. Amounts are
// derived server-side and ignored if sent.
type LineItemRequest struct {
	Name                string          `json:"name"`
	Quantity            decimal.Decimal `json:"quantity"`
	HSNCode             string          `json:"hsnCode"`
	Rate                decimal.Decimal `json:"rate"`
	GSTRatePercent      string          `json:"gstRatePercent"`
	DiscountRatePercent decimal.Decimal `json:"discountRatePercent"`
}

// ToLineItem builds the domain line item; amounts are computed later.
func (r *LineItemRequest) ToLineItem() billing.LineItem {
	return billing.LineItem{
		Name:         r.Name,
		Quantity:     r.Quantity,
		HSNCode:      r.HSNCode,
		Rate:         r.Rate,
		GSTRate:      types.GSTRate(r.GSTRatePercent),
		DiscountRate: r.DiscountRatePercent,
	}
}

// CreateInvoiceRequest is the payload for creating an invoice. Status is not
// accepted here; new invoices always start as pending.
type CreateInvoiceRequest struct {
	CompanyName       string            `json:"companyName" binding:"required"`
	BillingAddress    string            `json:"billingAddress" binding:"required"`
	WorkSiteLocation  string            `json:"workSiteLocation" binding:"required"`
	ClientContactName string            `json:"clientContactName" binding:"required"`
	OrderNumber       string            `json:"orderNumber" binding:"required"`
	CompanyGSTNumber  string            `json:"companyGstNumber" binding:"required"`
	InvoiceDate       types.DateOnly    `json:"invoiceDate"`
	PaymentDueDate    types.DateOnly    `json:"paymentDueDate"`
	LineItems         []LineItemRequest `json:"lineItems"`
}

// ToInvoice builds the domain invoice from the request.
func (r *CreateInvoiceRequest) ToInvoice() *billing.Invoice {
	items := make([]billing.LineItem, 0, len(r.LineItems))
	for i := range r.LineItems {
		items = append(items, r.LineItems[i].ToLineItem())
	}
	return &billing.Invoice{
		CompanyName:       r.CompanyName,
		BillingAddress:    r.BillingAddress,
		WorkSiteLocation:  r.WorkSiteLocation,
		ClientContactName: r.ClientContactName,
		OrderNumber:       r.OrderNumber,
		CompanyGSTNumber:  r.CompanyGSTNumber,
		InvoiceDate:       r.InvoiceDate,
		PaymentDueDate:    r.PaymentDueDate,
		LineItems:         items,
	}
}

// UpdateInvoiceRequest is the payload for a full invoice edit. Nil fields are
// left untouched. A non-nil Status is an explicit status request and takes
// precedence over the date-driven recomputation.
type UpdateInvoiceRequest struct {
	CompanyName       *string            `json:"companyName"`
	BillingAddress    *string            `json:"billingAddress"`
	WorkSiteLocation  *string            `json:"workSiteLocation"`
	ClientContactName *string            `json:"clientContactName"`
	OrderNumber       *string            `json:"orderNumber"`
	CompanyGSTNumber  *string            `json:"companyGstNumber"`
	InvoiceDate       *types.DateOnly    `json:"invoiceDate"`
	PaymentDueDate    *types.DateOnly    `json:"paymentDueDate"`
	LineItems         *[]LineItemRequest `json:"lineItems"`
	Status            *string            `json:"status"`
}

// UpdateInvoiceStatusRequest is the payload for the status-only operation.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceResponse wraps a domain invoice with its display number.
type InvoiceResponse struct {
	*billing.Invoice
	DisplayNumber string `json:"displayNumber"`
}

// NewInvoiceResponse builds an InvoiceResponse from a domain invoice.
func NewInvoiceResponse(inv *billing.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		Invoice:       inv,
		DisplayNumber: billing.FormatInvoiceNumber(inv.InvoiceNumber),
	}
}

// NewInvoiceListResponse builds responses for a list of invoices.
func NewInvoiceListResponse(invoices []*billing.Invoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, NewInvoiceResponse(inv))
	}
	return result
}
