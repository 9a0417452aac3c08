package types

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	ierr "github.com/skelectricals/backend/internal/errors"
)

// GSTRate is the percentage GST slab applied to a line item. The set is a
// closed enumeration, not an open decimal.
type GSTRate string

const (
	GSTRate2_5 GSTRate = "2.5"
	GSTRate6   GSTRate = "6"
	GSTRate9   GSTRate = "9"
	GSTRate12  GSTRate = "12"
	GSTRate18  GSTRate = "18"
)

var allowedGSTRates = []GSTRate{GSTRate2_5, GSTRate6, GSTRate9, GSTRate12, GSTRate18}

func (r GSTRate) String() string {
	return string(r)
}

// Validate rejects rates outside the enumerated slab set.
func (r GSTRate) Validate() error {
	if !lo.Contains(allowedGSTRates, r) {
		return ierr.NewError("invalid gst rate").
			WithHintf("Invalid GST rate for field gstRatePercent: %s", r).
			WithReportableDetails(map[string]any{
				"field":   "gstRatePercent",
				"allowed": allowedGSTRates,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Percent returns the rate as a decimal percentage (e.g. "18" -> 18).
// Validate must have been called first; an invalid rate yields zero.
func (r GSTRate) Percent() decimal.Decimal {
	d, err := decimal.NewFromString(string(r))
	if err != nil {
		return decimal.Zero
	}
	return d
}
