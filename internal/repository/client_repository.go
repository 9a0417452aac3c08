package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/domain"
)

// ClientRepository defines operations for managing client records. Clients
// are never deleted because invoices reference them by company name.
type ClientRepository interface {
	// Create persists a new client record
	Create(ctx context.Context, client *domain.Client) error

	// GetByID retrieves a client by id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)

	// GetByCompanyName retrieves a client by exact company name
	GetByCompanyName(ctx context.Context, companyName string) (*domain.Client, error)

	// List retrieves all clients ordered by company name
	List(ctx context.Context) ([]*domain.Client, error)

	// Update replaces the mutable fields of an existing client
	Update(ctx context.Context, client *domain.Client) error
}
