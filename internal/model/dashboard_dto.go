package model

import (
	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the invoice collection for the admin dashboard
// and the per-client "my account" view.
type DashboardStats struct {
	TotalInvoices int            `json:"totalInvoices"`
	CountByStatus map[string]int `json:"countByStatus"`

	// Revenue is the sum of totalAmount over paid invoices.
	Revenue decimal.Decimal `json:"revenue"`
	// PendingPayments is the sum over pending, sent and viewed invoices.
	PendingPayments decimal.Decimal `json:"pendingPayments"`
	// PaymentsThisMonth sums paid invoices dated in the current calendar month.
	PaymentsThisMonth decimal.Decimal `json:"paymentsThisMonth"`
	// CollectionRate is round(revenue / total billed * 100); 0 when nothing
	// has been billed.
	CollectionRate int64 `json:"collectionRate"`
}
