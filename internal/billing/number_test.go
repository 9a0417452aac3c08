package billing

import (
	"testing"

	"github.com/stretchr/testify/require"

	ierr "github.com/skelectricals/backend/internal/errors"
)

func TestFormatInvoiceNumber(t *testing.T) {
	require.Equal(t, "INV-001", FormatInvoiceNumber(1))
	require.Equal(t, "INV-042", FormatInvoiceNumber(42))
	require.Equal(t, "INV-100", FormatInvoiceNumber(100))
	require.Equal(t, "INV-1234", FormatInvoiceNumber(1234))
}

func TestParseInvoiceNumber(t *testing.T) {
	n, err := ParseInvoiceNumber("INV-007")
	require.NoError(t, err)
	require.Equal(t, int64(7), n)

	for _, bad := range []string{"", "INV-", "INV-abc", "INV--1", "INV-0", "7", "inv-007"} {
		_, err := ParseInvoiceNumber(bad)
		require.Error(t, err, "input %q", bad)
		require.True(t, ierr.IsValidation(err), "input %q", bad)
	}
}

func TestInvoiceNumberRoundTrip(t *testing.T) {
	n, err := ParseInvoiceNumber("INV-007")
	require.NoError(t, err)
	require.Equal(t, "INV-007", FormatInvoiceNumber(n))
}
