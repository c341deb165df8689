package model

import "time"

// Interview is created by the interview-taking flow and is read-only here.
type Interview struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Role      string    `json:"role" db:"role"`
	TechStack []string  `json:"tech_stack" db:"tech_stack"`
	Finalized bool      `json:"finalized" db:"finalized"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TranscriptEntry is one turn of a finished interview. The transcript is an
// opaque input to the feedback pipeline and is never persisted by it.
type TranscriptEntry struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}
