package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
)

// UserRepository is the persisted identity store.
type UserRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new user record. The id is chosen by the caller and is
// immutable afterwards.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, name, email, created_at)
VALUES ($1, $2, $3, now())
`
	_, err := r.db.Exec(ctx, q, u.ID, u.Name, u.Email)
	if err != nil {
		// PostgreSQL unique_violation code is "23505"
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Wrap(apperr.KindDuplicateIdentity, "User already exists. Please sign in instead.", err)
		}
		return apperr.Wrap(apperr.KindExternalService, "Failed to create an account.", fmt.Errorf("insert user: %w", err))
	}
	return nil
}

// GetByID returns a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
SELECT id, name, email
FROM users
WHERE id = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "User does not exist.", err)
		}
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch user.", fmt.Errorf("scan user by id: %w", err))
	}
	return &u, nil
}

// GetByEmail returns a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, name, email
FROM users
WHERE email = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "User does not exist.", err)
		}
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch user.", fmt.Errorf("scan user by email: %w", err))
	}
	return &u, nil
}
