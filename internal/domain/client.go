package domain

import (
	"time"

	"github.com/google/uuid"

	ierr "github.com/skelectricals/backend/internal/errors"
)

// Client is a company record managed by admins. Invoices reference clients by
// company name; there is no delete operation because invoices may point at
// the record forever.
type Client struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"companyName"`
	GSTNumber      string    `json:"gstNumber"`
	BillingAddress string    `json:"billingAddress"`
	ContactName    string    `json:"contactName"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Validate checks the client's required fields.
func (c *Client) Validate() error {
	required := map[string]string{
		"companyName":    c.CompanyName,
		"billingAddress": c.BillingAddress,
		"contactName":    c.ContactName,
	}
	for field, value := range required {
		if value == "" {
			return ierr.NewError("client validation failed").
				WithHintf("%s is required", field).
				WithReportableDetails(map[string]any{"field": field}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
