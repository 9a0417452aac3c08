package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/domain"
	"github.com/skelectricals/backend/internal/types"
)

// UserRepository defines operations for managing user accounts
type UserRepository interface {
	// Create persists a new user with a password hash
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email, including the password hash
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateRole changes a user's role and linked company name
	UpdateRole(ctx context.Context, id uuid.UUID, role types.UserRole, companyName string) (*domain.User, error)
}
