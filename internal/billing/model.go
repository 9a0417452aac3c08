package billing

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/types"
)

// LineItem is a single billable row on an invoice. The four input fields are
// Name/Quantity/HSNCode/Rate plus the GST and discount rates; the amount
// fields are derived and always recomputed from the inputs, never set
// directly.
type LineItem struct {
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	HSNCode      string          `json:"hsnCode"`
	Rate         decimal.Decimal `json:"rate"`
	GSTRate      types.GSTRate   `json:"gstRatePercent"`
	DiscountRate decimal.Decimal `json:"discountRatePercent"`

	// Derived amounts, see Recalculate.
	BasicAmount decimal.Decimal `json:"basicAmount"`
	CGSTAmount  decimal.Decimal `json:"cgstAmount"`
	SGSTAmount  decimal.Decimal `json:"sgstAmount"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Validate checks the line item's input fields.
func (li *LineItem) Validate() error {
	if li.Name == "" {
		return ierr.NewError("line item validation failed").
			WithHint("name must not be empty").
			WithReportableDetails(map[string]any{"field": "name"}).
			Mark(ierr.ErrValidation)
	}
	if !li.Quantity.IsPositive() {
		return ierr.NewError("line item validation failed").
			WithHint("quantity must be positive").
			WithReportableDetails(map[string]any{"field": "quantity"}).
			Mark(ierr.ErrValidation)
	}
	if li.Rate.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("rate must be non negative").
			WithReportableDetails(map[string]any{"field": "rate"}).
			Mark(ierr.ErrValidation)
	}
	if li.DiscountRate.IsNegative() || li.DiscountRate.GreaterThan(decimal.NewFromInt(100)) {
		return ierr.NewError("line item validation failed").
			WithHint("discountRatePercent must be between 0 and 100").
			WithReportableDetails(map[string]any{"field": "discountRatePercent"}).
			Mark(ierr.ErrValidation)
	}
	if err := li.GSTRate.Validate(); err != nil {
		return err
	}
	return nil
}

// Invoice is a billing record for a client engagement. Invoices are permanent
// audit records; there is no delete operation.
type Invoice struct {
	InvoiceNumber     int64              `json:"invoiceNumber"`
	CompanyName       string             `json:"companyName"`
	BillingAddress    string             `json:"billingAddress"`
	WorkSiteLocation  string             `json:"workSiteLocation"`
	ClientContactName string             `json:"clientContactName"`
	OrderNumber       string             `json:"orderNumber"`
	CompanyGSTNumber  string             `json:"companyGstNumber"`
	InvoiceDate       types.DateOnly     `json:"invoiceDate"`
	PaymentDueDate    types.DateOnly     `json:"paymentDueDate"`
	LineItems         []LineItem         `json:"lineItems"`
	TotalCGST         decimal.Decimal    `json:"totalCgst"`
	TotalSGST         decimal.Decimal    `json:"totalSgst"`
	NetAmount         decimal.Decimal    `json:"netAmount"`
	TotalAmount       decimal.Decimal    `json:"totalAmount"`
	Status            types.InvoiceStatus `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// requiredFields maps the invoice's mandatory free-text fields for validation.
func (inv *Invoice) requiredFields() map[string]string {
	return map[string]string{
		"companyName":       inv.CompanyName,
		"billingAddress":    inv.BillingAddress,
		"workSiteLocation":  inv.WorkSiteLocation,
		"clientContactName": inv.ClientContactName,
		"orderNumber":       inv.OrderNumber,
		"companyGstNumber":  inv.CompanyGSTNumber,
	}
}

// Validate checks the invoice header and line items. Draft invoices may have
// zero line items while being edited; every other status requires at least
// one. No ordering is enforced between invoiceDate and paymentDueDate.
func (inv *Invoice) Validate() error {
	for field, value := range inv.requiredFields() {
		if value == "" {
			return ierr.NewError("invoice validation failed").
				WithHintf("%s is required", field).
				WithReportableDetails(map[string]any{"field": field}).
				Mark(ierr.ErrValidation)
		}
	}
	if inv.PaymentDueDate.IsZero() {
		return ierr.NewError("invoice validation failed").
			WithHint("paymentDueDate is required").
			WithReportableDetails(map[string]any{"field": "paymentDueDate"}).
			Mark(ierr.ErrValidation)
	}
	if err := inv.Status.Validate(); err != nil {
		return err
	}
	if inv.Status != types.InvoiceStatusDraft && len(inv.LineItems) == 0 {
		return ierr.NewError("invoice validation failed").
			WithHint("at least one line item is required for a non-draft invoice").
			WithReportableDetails(map[string]any{"field": "lineItems"}).
			Mark(ierr.ErrValidation)
	}
	for i := range inv.LineItems {
		if err := inv.LineItems[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
