package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/types"
)

// User represents an account in the system. Self-registered accounts start
// with the user role; an admin promotes an account to client and links it to
// a client record by company name.
type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	PasswordHash string         `json:"-"`
	Role         types.UserRole `json:"role"`
	CompanyName  string         `json:"companyName,omitempty"`
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == types.RoleAdmin
}

// OwnsCompany reports whether the user is the client account for the given
// company. Invoice ownership is matched by company name, not by foreign key.
func (u *User) OwnsCompany(companyName string) bool {
	return u.Role == types.RoleClient && u.CompanyName != "" && u.CompanyName == companyName
}
