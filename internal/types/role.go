package types

import (
	"github.com/samber/lo"

	ierr "github.com/skelectricals/backend/internal/errors"
)

// UserRole controls which API surface a user can reach.
type UserRole string

const (
	// RoleUser is the default role for self-registered accounts
	RoleUser UserRole = "user"
	// RoleClient is granted by an admin and links the account to a client record
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) Validate() error {
	allowed := []UserRole{RoleUser, RoleClient, RoleAdmin}
	if !lo.Contains(allowed, r) {
		return ierr.NewError("invalid user role").
			WithHintf("Invalid user role: %s", r).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
