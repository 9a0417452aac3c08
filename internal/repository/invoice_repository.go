package repository

import (
	"context"
	"time"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/types"
)

// InvoiceFilter narrows and orders invoice listings.
type InvoiceFilter struct {
	// CompanyName scopes the listing to one client's invoices.
	CompanyName string
	// Limit caps the number of rows; 0 means no cap.
	Limit int
	// OrderByInvoiceDate orders by invoice date descending instead of the
	// default creation-time descending (used by dashboard "recent" views).
	OrderByInvoiceDate bool
}

// InvoiceRepository defines operations for managing invoices. There is no
// delete: invoices are permanent audit records.
type InvoiceRepository interface {
	// Create persists a new invoice, assigning the next invoice number
	// (max existing + 1, starting at 1) atomically.
	Create(ctx context.Context, inv *billing.Invoice) error

	// GetByNumber retrieves one invoice by its invoice number.
	GetByNumber(ctx context.Context, number int64) (*billing.Invoice, error)

	// List retrieves invoices matching the filter.
	List(ctx context.Context, filter InvoiceFilter) ([]*billing.Invoice, error)

	// Update replaces the mutable fields of an existing invoice in a single
	// statement.
	Update(ctx context.Context, inv *billing.Invoice) error

	// UpdateStatus changes only the status of an existing invoice.
	UpdateStatus(ctx context.Context, number int64, status types.InvoiceStatus) error

	// MarkOverdueBefore flips every pending/sent/viewed invoice whose due
	// date falls strictly before today to overdue, returning the number of
	// rows changed. Idempotent.
	MarkOverdueBefore(ctx context.Context, today time.Time) (int64, error)
}
