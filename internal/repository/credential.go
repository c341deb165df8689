package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rht-21/intervue/pkg/apperr"
)

// CredentialRepository stores password hashes, one row per account. User
// profile data lives in users; this table is only consulted by the
// credential provider.
type CredentialRepository struct {
	db *pgxpool.Pool
}

func (r *CredentialRepository) Save(ctx context.Context, uid, email, hash string) error {
	const q = `
INSERT INTO credentials (uid, email, password_hash, updated_at)
VALUES ($1, $2, $3, now())
`
	_, err := r.db.Exec(ctx, q, uid, email, hash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Wrap(apperr.KindDuplicateIdentity, "Email already exists", err)
		}
		return apperr.Wrap(apperr.KindExternalService, "Failed to create an account.", fmt.Errorf("insert credentials: %w", err))
	}
	return nil
}

func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (string, string, error) {
	const q = `
SELECT uid, password_hash
FROM credentials
WHERE email = $1
`
	var uid, hash string
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&uid, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperr.Wrap(apperr.KindNotFound, "No account found with this email.", err)
		}
		return "", "", apperr.Wrap(apperr.KindExternalService, "Failed to fetch credentials.", fmt.Errorf("scan credentials by email: %w", err))
	}
	return uid, hash, nil
}

func (r *CredentialRepository) UpdateHashByEmail(ctx context.Context, email, hash string) error {
	const q = `
UPDATE credentials
SET password_hash = $2, updated_at = now()
WHERE email = $1
`
	tag, err := r.db.Exec(ctx, q, email, hash)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to reset password.", fmt.Errorf("update credentials: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "No account found with this email.")
	}
	return nil
}
