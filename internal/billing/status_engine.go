package billing

import (
	"time"

	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/types"
)

// StatusEngine owns every status transition an invoice can make. All methods
// are pure with respect to the invoice record: they compute the next status
// (or reject the request) and leave persistence to the caller. Date
// comparisons are date-only against the injected clock.
//
// Transition rules, in precedence order:
//
//  1. Overdue sweep: pending/sent/viewed past their due date become overdue.
//  2. Due-date edits pull a date-driven status to overdue, or an overdue
//     invoice back to pending.
//  3. An explicit paid/partially_paid/cancelled/refunded/draft on an edit
//     always wins over 1-2.
//  4. Status-only changes to pending/sent/viewed are blocked while past due.
//  5. A client's first read of a sent invoice marks it viewed.
type StatusEngine struct {
	clock Clock
}

// NewStatusEngine creates a status engine using the given clock.
func NewStatusEngine(clock Clock) *StatusEngine {
	return &StatusEngine{clock: clock}
}

// pastDue reports whether due falls strictly before today, dates only.
func (e *StatusEngine) pastDue(due types.DateOnly) bool {
	return types.Truncate(due.Time).Before(e.clock.Today())
}

// SweepStatus implements rule 1 for a single invoice: a date-driven status
// whose due date has elapsed becomes overdue. Idempotent; every other status
// passes through unchanged.
func (e *StatusEngine) SweepStatus(status types.InvoiceStatus, due types.DateOnly) types.InvoiceStatus {
	if status.IsDateDriven() && e.pastDue(due) {
		return types.InvoiceStatusOverdue
	}
	return status
}

// ApplyDueDateEdit implements rule 2: the status side effects of an admin
// changing paymentDueDate on an existing invoice.
func (e *StatusEngine) ApplyDueDateEdit(current types.InvoiceStatus, newDue types.DateOnly) types.InvoiceStatus {
	if e.pastDue(newDue) && current.IsDateDriven() {
		return types.InvoiceStatusOverdue
	}
	if !e.pastDue(newDue) && current == types.InvoiceStatusOverdue {
		return types.InvoiceStatusPending
	}
	return current
}

// ResolveEditStatus implements rules 2-3 for a full edit. dateComputed is the
// status after ApplyDueDateEdit; requested is the status field of the edit
// request, empty when the edit does not touch status. An explicit-only status
// always wins. A requested date-driven status (or overdue) is routed through
// the same guard as a status-only change so a full edit cannot reactivate a
// past-due invoice.
func (e *StatusEngine) ResolveEditStatus(dateComputed, requested types.InvoiceStatus, due types.DateOnly) (types.InvoiceStatus, error) {
	if requested == "" {
		return dateComputed, nil
	}
	if err := requested.Validate(); err != nil {
		return "", err
	}
	if requested.IsExplicitOnly() {
		return requested, nil
	}
	if err := e.ValidateStatusChange(requested, due); err != nil {
		return "", err
	}
	return requested, nil
}

// ValidateStatusChange implements rule 4 for the dedicated status-only
// operation. Overdue and the explicit-only statuses are always permitted;
// pending/sent/viewed are rejected while the due date has elapsed.
func (e *StatusEngine) ValidateStatusChange(requested types.InvoiceStatus, due types.DateOnly) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if requested.IsDateDriven() && e.pastDue(due) {
		return ierr.NewError("status change conflicts with due date").
			WithHintf("Cannot set status to %s while the payment due date has passed; move the due date forward first", requested).
			WithReportableDetails(map[string]any{
				"requestedStatus": requested,
				"paymentDueDate":  due,
			}).
			Mark(ierr.ErrBusinessRule)
	}
	return nil
}

// StatusOnClientRead implements rule 5: the owning client reading a sent
// invoice marks it viewed. One-directional; any other status is untouched.
func (e *StatusEngine) StatusOnClientRead(current types.InvoiceStatus) types.InvoiceStatus {
	if current == types.InvoiceStatusSent {
		return types.InvoiceStatusViewed
	}
	return current
}

// Today exposes the engine's current date for callers that need the same
// reference point (sweeps, dashboard month windows).
func (e *StatusEngine) Today() time.Time {
	return e.clock.Today()
}
