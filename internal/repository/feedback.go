package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
)

type FeedbackRepository struct {
	db *pgxpool.Pool
}

// Upsert writes a feedback record by id, overwriting any previous content;
// last write wins. Uniqueness per (interview_id, user_id) is upheld by
// callers reusing the same id, not by a constraint on this table.
func (r *FeedbackRepository) Upsert(ctx context.Context, f *model.Feedback) error {
	scores, err := json.Marshal(f.CategoryScores)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to save feedback.", fmt.Errorf("marshal category scores: %w", err))
	}
	strengths, err := json.Marshal(f.Strengths)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to save feedback.", fmt.Errorf("marshal strengths: %w", err))
	}
	areas, err := json.Marshal(f.AreasForImprovement)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to save feedback.", fmt.Errorf("marshal areas: %w", err))
	}

	const q = `
INSERT INTO feedback (
	id, interview_id, user_id, total_score, category_scores,
	strengths, areas_for_improvement, final_assessment, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
	interview_id = EXCLUDED.interview_id,
	user_id = EXCLUDED.user_id,
	total_score = EXCLUDED.total_score,
	category_scores = EXCLUDED.category_scores,
	strengths = EXCLUDED.strengths,
	areas_for_improvement = EXCLUDED.areas_for_improvement,
	final_assessment = EXCLUDED.final_assessment,
	created_at = EXCLUDED.created_at
`
	_, err = r.db.Exec(ctx, q,
		f.ID, f.InterviewID, f.UserID, f.TotalScore, scores,
		strengths, areas, f.FinalAssessment, f.CreatedAt,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to save feedback.", fmt.Errorf("upsert feedback: %w", err))
	}
	return nil
}

// GetByInterview takes at most one record for the pair; the system assumes
// uniqueness without enforcing it physically.
func (r *FeedbackRepository) GetByInterview(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	const q = `
SELECT id, interview_id, user_id, total_score, category_scores,
	strengths, areas_for_improvement, final_assessment, created_at
FROM feedback
WHERE interview_id = $1 AND user_id = $2
LIMIT 1
`
	var (
		f         model.Feedback
		scores    []byte
		strengths []byte
		areas     []byte
	)
	row := r.db.QueryRow(ctx, q, interviewID, userID)
	err := row.Scan(
		&f.ID, &f.InterviewID, &f.UserID, &f.TotalScore, &scores,
		&strengths, &areas, &f.FinalAssessment, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "Feedback not found.", err)
		}
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch feedback.", fmt.Errorf("scan feedback: %w", err))
	}

	if err := json.Unmarshal(scores, &f.CategoryScores); err != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch feedback.", fmt.Errorf("unmarshal category scores: %w", err))
	}
	if err := json.Unmarshal(strengths, &f.Strengths); err != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch feedback.", fmt.Errorf("unmarshal strengths: %w", err))
	}
	if err := json.Unmarshal(areas, &f.AreasForImprovement); err != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "Failed to fetch feedback.", fmt.Errorf("unmarshal areas: %w", err))
	}
	return &f, nil
}
