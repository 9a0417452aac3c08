package model

import (
	"github.com/skelectricals/backend/internal/domain"
)

// CreateContactRequest is the public payload for the contact/quote form
type CreateContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message" binding:"required"`
}

// ToContactRequest builds the domain contact request.
func (r *CreateContactRequest) ToContactRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		Message:     r.Message,
	}
}

// ResolveContactRequest is the admin payload for marking a request handled
type ResolveContactRequest struct {
	Resolved bool `json:"resolved"`
}
