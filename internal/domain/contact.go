package domain

import (
	"time"

	"github.com/google/uuid"

	ierr "github.com/skelectricals/backend/internal/errors"
)

// ContactRequest is a message submitted through the public contact/quote
// form. Admins review these and flip the resolved flag when handled.
type ContactRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"serviceType,omitempty"`
	Message     string    `json:"message"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the request's required fields.
func (c *ContactRequest) Validate() error {
	required := map[string]string{
		"name":    c.Name,
		"email":   c.Email,
		"message": c.Message,
	}
	for field, value := range required {
		if value == "" {
			return ierr.NewError("contact request validation failed").
				WithHintf("%s is required", field).
				WithReportableDetails(map[string]any{"field": field}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
