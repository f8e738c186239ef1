package postgres

import (
	"context"
	"errors"
	"fmt"

	"sellerhub-service/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureSchema creates the registration tables and seeds the default roles.
// Safe to run on every startup.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_roles (
			role_id SERIAL PRIMARY KEY,
			role_name VARCHAR(50) NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			phone VARCHAR(20),
			role_id INTEGER REFERENCES user_roles(role_id) DEFAULT 2,
			is_active BOOLEAN DEFAULT TRUE,
			last_login TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO user_roles (role_name, description)
		 VALUES
			('admin', 'Administrator with full access'),
			('user', 'Regular user account')
		 ON CONFLICT (role_name) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Pool().Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// FindByUsernameOrEmail returns the first user claiming either value, nil when
// both are free.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, email, phone, created_at
		FROM users
		WHERE username = $1 OR email = $2
		LIMIT 1
	`

	var u user.User
	err := r.db.Pool().QueryRow(ctx, query, username, email).Scan(
		&u.UserID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &u, nil
}

// Create inserts the user inside a transaction and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, nu *user.NewUser) (*user.User, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, username, first_name, last_name, email, phone, created_at
	`

	var u user.User
	err = tx.QueryRow(
		ctx, query,
		nu.Username, nu.PasswordHash, nu.FirstName, nu.LastName, nu.Email, nu.Phone,
	).Scan(
		&u.UserID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit user: %w", err)
	}
	return &u, nil
}
