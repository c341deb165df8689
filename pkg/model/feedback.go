package model

import "time"

type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Feedback is one evaluation of one interview by one user. At most one
// record exists per (interview_id, user_id) in steady state; that is upheld
// by upserting on a known id, not by a database constraint.
type Feedback struct {
	ID                  string          `json:"id" db:"id"`
	InterviewID         string          `json:"interview_id" db:"interview_id"`
	UserID              string          `json:"user_id" db:"user_id"`
	TotalScore          int             `json:"total_score" db:"total_score"`
	CategoryScores      []CategoryScore `json:"category_scores" db:"category_scores"`
	Strengths           []string        `json:"strengths" db:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement" db:"areas_for_improvement"`
	FinalAssessment     string          `json:"final_assessment" db:"final_assessment"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
}

type CreateFeedbackReq struct {
	InterviewID string            `json:"interview_id" binding:"required"`
	Transcript  []TranscriptEntry `json:"transcript" binding:"required,min=1,dive"`
	FeedbackID  string            `json:"feedback_id"`
}

type CreateFeedbackRes struct {
	FeedbackID string `json:"feedback_id"`
}
