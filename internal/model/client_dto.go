package model

import (
	"github.com/skelectricals/backend/internal/domain"
)

// CreateClientRequest is the admin payload for creating a client record
type CreateClientRequest struct {
	CompanyName    string `json:"companyName" binding:"required"`
	GSTNumber      string `json:"gstNumber"`
	BillingAddress string `json:"billingAddress" binding:"required"`
	ContactName    string `json:"contactName" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email" binding:"omitempty,email"`
}

// ToClient builds the domain client from the request.
func (r *CreateClientRequest) ToClient() *domain.Client {
	return &domain.Client{
		CompanyName:    r.CompanyName,
		GSTNumber:      r.GSTNumber,
		BillingAddress: r.BillingAddress,
		ContactName:    r.ContactName,
		Phone:          r.Phone,
		Email:          r.Email,
	}
}

// UpdateClientRequest is the admin payload for editing a client record.
// Nil fields are left untouched.
type UpdateClientRequest struct {
	CompanyName    *string `json:"companyName"`
	GSTNumber      *string `json:"gstNumber"`
	BillingAddress *string `json:"billingAddress"`
	ContactName    *string `json:"contactName"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
}
