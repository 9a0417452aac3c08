package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skelectricals/backend/internal/domain"
	ierr "github.com/skelectricals/backend/internal/errors"
)

// PostgresClientRepository implements ClientRepository using PostgreSQL
type PostgresClientRepository struct {
	db *pgxpool.Pool
}

// NewPostgresClientRepository creates a new PostgreSQL client repository
func NewPostgresClientRepository(db *pgxpool.Pool) ClientRepository {
	return &PostgresClientRepository{db: db}
}

const clientColumns = `id, company_name, gst_number, billing_address, contact_name, phone, email, created_at, updated_at`

// Create persists a new client record
func (r *PostgresClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, company_name, gst_number, billing_address, contact_name, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}

	err := r.db.QueryRow(
		ctx,
		query,
		client.ID,
		client.CompanyName,
		client.GSTNumber,
		client.BillingAddress,
		client.ContactName,
		client.Phone,
		client.Email,
	).Scan(&client.CreatedAt, &client.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ierr.WithError(err).
				WithHintf("A client named %s already exists", client.CompanyName).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create client").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// GetByID retrieves a client by id
func (r *PostgresClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanClient(r.db.QueryRow(ctx, query, id))
}

// GetByCompanyName retrieves a client by exact company name
func (r *PostgresClientRepository) GetByCompanyName(ctx context.Context, companyName string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE company_name = $1`
	return r.scanClient(r.db.QueryRow(ctx, query, companyName))
}

// List retrieves all clients ordered by company name
func (r *PostgresClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY company_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := r.scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read client rows").
			Mark(ierr.ErrDatabase)
	}

	return clients, nil
}

// Update replaces the mutable fields of an existing client
func (r *PostgresClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET company_name = $1, gst_number = $2, billing_address = $3,
			contact_name = $4, phone = $5, email = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		client.CompanyName,
		client.GSTNumber,
		client.BillingAddress,
		client.ContactName,
		client.Phone,
		client.Email,
		client.ID,
	).Scan(&client.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ierr.NewError("client not found").
				WithHint("Client does not exist").
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update client").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *PostgresClientRepository) scanClient(row pgx.Row) (*domain.Client, error) {
	client := &domain.Client{}

	err := row.Scan(
		&client.ID,
		&client.CompanyName,
		&client.GSTNumber,
		&client.BillingAddress,
		&client.ContactName,
		&client.Phone,
		&client.Email,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("client not found").
				WithHint("Client does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get client").
			Mark(ierr.ErrDatabase)
	}

	return client, nil
}
