package types

import (
	"github.com/samber/lo"

	ierr "github.com/skelectricals/backend/internal/errors"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates the invoice is being edited and may have no line items
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusPending is the initial status assigned on creation
	InvoiceStatusPending InvoiceStatus = "pending"
	// InvoiceStatusSent indicates the invoice was delivered to the client
	InvoiceStatusSent InvoiceStatus = "sent"
	// InvoiceStatusViewed indicates the owning client has opened the invoice
	InvoiceStatusViewed InvoiceStatus = "viewed"
	// InvoiceStatusPaid indicates the invoice was settled in full
	InvoiceStatusPaid InvoiceStatus = "paid"
	// InvoiceStatusPartiallyPaid indicates a partial payment was recorded
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	// InvoiceStatusOverdue indicates the payment due date has elapsed
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// Validate rejects status values outside the enumerated set.
func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusPending,
		InvoiceStatusSent,
		InvoiceStatusViewed,
		InvoiceStatusPaid,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
		InvoiceStatusRefunded,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHintf("Invalid invoice status: %s", s).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsDateDriven reports whether the status is subject to the overdue sweep and
// due-date side effects (pending, sent, viewed).
func (s InvoiceStatus) IsDateDriven() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusSent || s == InvoiceStatusViewed
}

// IsExplicitOnly reports whether the status is only ever set by an explicit
// admin action and always honored regardless of the due date.
func (s InvoiceStatus) IsExplicitOnly() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPartiallyPaid, InvoiceStatusCancelled,
		InvoiceStatusRefunded, InvoiceStatusDraft:
		return true
	}
	return false
}
