package billing

import (
	"fmt"
	"strconv"
	"strings"

	ierr "github.com/skelectricals/backend/internal/errors"
)

const invoiceNumberPrefix = "INV-"

// FormatInvoiceNumber renders the display form of an invoice number,
// zero-padded to three digits: 1 -> "INV-001", 1234 -> "INV-1234".
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("%s%03d", invoiceNumberPrefix, n)
}

// ParseInvoiceNumber parses the display form back to the numeric invoice
// number, accepting any amount of zero padding.
func ParseInvoiceNumber(s string) (int64, error) {
	raw, ok := strings.CutPrefix(s, invoiceNumberPrefix)
	if !ok {
		return 0, ierr.NewError("invalid invoice number").
			WithHintf("Invoice number must look like %s001, got %q", invoiceNumberPrefix, s).
			Mark(ierr.ErrValidation)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, ierr.NewError("invalid invoice number").
			WithHintf("Invoice number must carry a positive integer, got %q", s).
			Mark(ierr.ErrValidation)
	}
	return n, nil
}
