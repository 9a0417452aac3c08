package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/types"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func dateOnly(t time.Time) types.DateOnly {
	return types.NewDateOnly(t)
}

func testEngine() *StatusEngine {
	return NewStatusEngine(FixedClock(today))
}

func TestSweepStatus(t *testing.T) {
	engine := testEngine()
	yesterday := dateOnly(today.AddDate(0, 0, -1))
	tomorrow := dateOnly(today.AddDate(0, 0, 1))

	tests := []struct {
		name   string
		status types.InvoiceStatus
		due    types.DateOnly
		want   types.InvoiceStatus
	}{
		{"pending past due", types.InvoiceStatusPending, yesterday, types.InvoiceStatusOverdue},
		{"sent past due", types.InvoiceStatusSent, yesterday, types.InvoiceStatusOverdue},
		{"viewed past due", types.InvoiceStatusViewed, yesterday, types.InvoiceStatusOverdue},
		{"pending due today stays", types.InvoiceStatusPending, dateOnly(today), types.InvoiceStatusPending},
		{"pending due tomorrow stays", types.InvoiceStatusPending, tomorrow, types.InvoiceStatusPending},
		{"paid past due untouched", types.InvoiceStatusPaid, yesterday, types.InvoiceStatusPaid},
		{"cancelled past due untouched", types.InvoiceStatusCancelled, yesterday, types.InvoiceStatusCancelled},
		{"draft past due untouched", types.InvoiceStatusDraft, yesterday, types.InvoiceStatusDraft},
		{"overdue stays overdue", types.InvoiceStatusOverdue, yesterday, types.InvoiceStatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, engine.SweepStatus(tt.status, tt.due))
		})
	}
}

func TestSweepStatusIsIdempotent(t *testing.T) {
	engine := testEngine()
	yesterday := dateOnly(today.AddDate(0, 0, -1))

	first := engine.SweepStatus(types.InvoiceStatusPending, yesterday)
	second := engine.SweepStatus(first, yesterday)
	require.Equal(t, types.InvoiceStatusOverdue, first)
	require.Equal(t, first, second)
}

func TestApplyDueDateEdit(t *testing.T) {
	engine := testEngine()
	yesterday := dateOnly(today.AddDate(0, 0, -1))
	tomorrow := dateOnly(today.AddDate(0, 0, 1))

	tests := []struct {
		name    string
		current types.InvoiceStatus
		newDue  types.DateOnly
		want    types.InvoiceStatus
	}{
		{"pending moved into the past", types.InvoiceStatusPending, yesterday, types.InvoiceStatusOverdue},
		{"sent moved into the past", types.InvoiceStatusSent, yesterday, types.InvoiceStatusOverdue},
		{"overdue moved to tomorrow reverts", types.InvoiceStatusOverdue, tomorrow, types.InvoiceStatusPending},
		{"overdue moved to today reverts", types.InvoiceStatusOverdue, dateOnly(today), types.InvoiceStatusPending},
		{"paid untouched by past date", types.InvoiceStatusPaid, yesterday, types.InvoiceStatusPaid},
		{"pending untouched by future date", types.InvoiceStatusPending, tomorrow, types.InvoiceStatusPending},
		{"draft untouched by past date", types.InvoiceStatusDraft, yesterday, types.InvoiceStatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, engine.ApplyDueDateEdit(tt.current, tt.newDue))
		})
	}
}

func TestValidateStatusChange(t *testing.T) {
	engine := testEngine()
	yesterday := dateOnly(today.AddDate(0, 0, -1))
	tomorrow := dateOnly(today.AddDate(0, 0, 1))

	t.Run("pending while past due is a business rule violation", func(t *testing.T) {
		err := engine.ValidateStatusChange(types.InvoiceStatusPending, yesterday)
		require.Error(t, err)
		require.True(t, ierr.IsBusinessRule(err))
	})

	t.Run("sent and viewed while past due are blocked", func(t *testing.T) {
		require.True(t, ierr.IsBusinessRule(engine.ValidateStatusChange(types.InvoiceStatusSent, yesterday)))
		require.True(t, ierr.IsBusinessRule(engine.ValidateStatusChange(types.InvoiceStatusViewed, yesterday)))
	})

	t.Run("pending with future due date is fine", func(t *testing.T) {
		require.NoError(t, engine.ValidateStatusChange(types.InvoiceStatusPending, tomorrow))
	})

	t.Run("explicit statuses always pass regardless of date", func(t *testing.T) {
		for _, status := range []types.InvoiceStatus{
			types.InvoiceStatusPaid,
			types.InvoiceStatusPartiallyPaid,
			types.InvoiceStatusCancelled,
			types.InvoiceStatusRefunded,
			types.InvoiceStatusDraft,
			types.InvoiceStatusOverdue,
		} {
			require.NoError(t, engine.ValidateStatusChange(status, yesterday), "status %s", status)
		}
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		err := engine.ValidateStatusChange(types.InvoiceStatus("archived"), tomorrow)
		require.Error(t, err)
		require.True(t, ierr.IsValidation(err))
	})
}

func TestResolveEditStatus(t *testing.T) {
	engine := testEngine()
	yesterday := dateOnly(today.AddDate(0, 0, -1))
	tomorrow := dateOnly(today.AddDate(0, 0, 1))

	t.Run("no requested status keeps the date-computed one", func(t *testing.T) {
		got, err := engine.ResolveEditStatus(types.InvoiceStatusOverdue, "", yesterday)
		require.NoError(t, err)
		require.Equal(t, types.InvoiceStatusOverdue, got)
	})

	t.Run("explicit paid overrides a date-computed overdue", func(t *testing.T) {
		got, err := engine.ResolveEditStatus(types.InvoiceStatusOverdue, types.InvoiceStatusPaid, yesterday)
		require.NoError(t, err)
		require.Equal(t, types.InvoiceStatusPaid, got)
	})

	t.Run("requested pending while past due is rejected", func(t *testing.T) {
		_, err := engine.ResolveEditStatus(types.InvoiceStatusOverdue, types.InvoiceStatusPending, yesterday)
		require.Error(t, err)
		require.True(t, ierr.IsBusinessRule(err))
	})

	t.Run("requested sent with a future due date is honored", func(t *testing.T) {
		got, err := engine.ResolveEditStatus(types.InvoiceStatusPending, types.InvoiceStatusSent, tomorrow)
		require.NoError(t, err)
		require.Equal(t, types.InvoiceStatusSent, got)
	})

	t.Run("bad status string is a validation error", func(t *testing.T) {
		_, err := engine.ResolveEditStatus(types.InvoiceStatusPending, types.InvoiceStatus("void"), tomorrow)
		require.Error(t, err)
		require.True(t, ierr.IsValidation(err))
	})
}

func TestStatusOnClientRead(t *testing.T) {
	engine := testEngine()

	require.Equal(t, types.InvoiceStatusViewed, engine.StatusOnClientRead(types.InvoiceStatusSent))

	// One-directional: reading again, or reading any non-sent invoice, changes nothing.
	for _, status := range []types.InvoiceStatus{
		types.InvoiceStatusViewed,
		types.InvoiceStatusPending,
		types.InvoiceStatusPaid,
		types.InvoiceStatusOverdue,
		types.InvoiceStatusDraft,
	} {
		require.Equal(t, status, engine.StatusOnClientRead(status), "status %s", status)
	}
}
