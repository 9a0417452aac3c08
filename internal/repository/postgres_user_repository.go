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
	"github.com/skelectricals/backend/internal/types"
)

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *pgxpool.Pool) UserRepository {
	return &PostgresUserRepository{db: db}
}

// Create persists a new user with a password hash
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, role, company_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	err := r.db.QueryRow(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Role.String(),
		user.CompanyName,
		user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ierr.WithError(err).
				WithHintf("A user with email %s already exists", user.Email).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// GetByID retrieves a user by id
func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, role, COALESCE(company_name, ''), is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email, including the password hash
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, role, COALESCE(company_name, ''), is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// UpdateRole changes a user's role and linked company name
func (r *PostgresUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role types.UserRole, companyName string) (*domain.User, error) {
	query := `
		UPDATE users
		SET role = $1, company_name = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING id, email, name, password_hash, role, COALESCE(company_name, ''), is_active, created_at, updated_at
	`
	return r.scanUser(r.db.QueryRow(ctx, query, role.String(), companyName, id))
}

func (r *PostgresUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&role,
		&user.CompanyName,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewError("user not found").
				WithHint("User does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get user").
			Mark(ierr.ErrDatabase)
	}

	user.Role = types.UserRole(role)
	return user, nil
}
