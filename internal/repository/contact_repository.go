package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/domain"
)

// ContactRepository defines operations for contact/quote requests
type ContactRepository interface {
	// Create persists a new contact request
	Create(ctx context.Context, req *domain.ContactRequest) error

	// List retrieves contact requests, newest first
	List(ctx context.Context) ([]*domain.ContactRequest, error)

	// SetResolved flips the resolved flag on a contact request
	SetResolved(ctx context.Context, id uuid.UUID, resolved bool) (*domain.ContactRequest, error)
}
