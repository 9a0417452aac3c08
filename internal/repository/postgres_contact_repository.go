package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skelectricals/backend/internal/domain"
	ierr "github.com/skelectricals/backend/internal/errors"
)

// PostgresContactRepository implements ContactRepository using PostgreSQL
type PostgresContactRepository struct {
	db *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgreSQL contact repository
func NewPostgresContactRepository(db *pgxpool.Pool) ContactRepository {
	return &PostgresContactRepository{db: db}
}

// Create persists a new contact request
func (r *PostgresContactRepository) Create(ctx context.Context, req *domain.ContactRequest) error {
	query := `
		INSERT INTO contact_requests (id, name, email, phone, service_type, message, resolved)
		VALUES ($1, $2, $3, $4, $5, $6, false)
		RETURNING created_at
	`

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	err := r.db.QueryRow(
		ctx,
		query,
		req.ID,
		req.Name,
		req.Email,
		req.Phone,
		req.ServiceType,
		req.Message,
	).Scan(&req.CreatedAt)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create contact request").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// List retrieves contact requests, newest first
func (r *PostgresContactRepository) List(ctx context.Context) ([]*domain.ContactRequest, error) {
	query := `
		SELECT id, name, email, phone, COALESCE(service_type, ''), message, resolved, created_at
		FROM contact_requests
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contact requests").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	requests := make([]*domain.ContactRequest, 0)
	for rows.Next() {
		req := &domain.ContactRequest{}
		err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.ServiceType, &req.Message, &req.Resolved, &req.CreatedAt)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan contact request row").
				Mark(ierr.ErrDatabase)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read contact request rows").
			Mark(ierr.ErrDatabase)
	}

	return requests, nil
}

// SetResolved flips the resolved flag on a contact request
func (r *PostgresContactRepository) SetResolved(ctx context.Context, id uuid.UUID, resolved bool) (*domain.ContactRequest, error) {
	query := `
		UPDATE contact_requests
		SET resolved = $1
		WHERE id = $2
		RETURNING id, name, email, phone, COALESCE(service_type, ''), message, resolved, created_at
	`

	req := &domain.ContactRequest{}
	err := r.db.QueryRow(ctx, query, resolved, id).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.ServiceType, &req.Message, &req.Resolved, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("contact request not found").
				WithHint("Contact request does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to update contact request").
			Mark(ierr.ErrDatabase)
	}

	return req, nil
}
