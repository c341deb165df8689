package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
)

// InterviewRepository is read-only here: interview records are created by
// the interview-taking flow, not by this service.
type InterviewRepository struct {
	db *pgxpool.Pool
}

func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	const q = `
SELECT id, user_id, role, tech_stack, finalized, created_at
FROM interviews
WHERE id = $1
`
	var iv model.Interview
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&iv.ID, &iv.UserID, &iv.Role, &iv.TechStack, &iv.Finalized, &iv.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "Interview not found.", err)
		}
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch interview.", fmt.Errorf("scan interview: %w", err))
	}
	return &iv, nil
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID string) ([]model.Interview, error) {
	const q = `
SELECT id, user_id, role, tech_stack, finalized, created_at
FROM interviews
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch interviews.", fmt.Errorf("query interviews: %w", err))
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// ListLatestFinalized returns the newest finalized interviews across all
// users. The limit applies here, before any caller-side filtering.
func (r *InterviewRepository) ListLatestFinalized(ctx context.Context, limit int) ([]model.Interview, error) {
	const q = `
SELECT id, user_id, role, tech_stack, finalized, created_at
FROM interviews
WHERE finalized = true
ORDER BY created_at DESC
LIMIT $1
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch interviews.", fmt.Errorf("query latest interviews: %w", err))
	}
	defer rows.Close()

	return scanInterviews(rows)
}

func scanInterviews(rows pgx.Rows) ([]model.Interview, error) {
	out := make([]model.Interview, 0)
	for rows.Next() {
		var iv model.Interview
		if err := rows.Scan(&iv.ID, &iv.UserID, &iv.Role, &iv.TechStack, &iv.Finalized, &iv.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch interviews.", fmt.Errorf("scan interview row: %w", err))
		}
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch interviews.", fmt.Errorf("rows error: %w", rows.Err()))
	}
	return out, nil
}
