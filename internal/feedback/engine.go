// Package feedback turns an interview transcript into a structured score
// report: format the transcript, ask the structured generator for scores,
// normalize whatever comes back, and upsert the record.
package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"go.uber.org/zap"
)

// Categories are the five evaluation axes, in report order. The generator is
// instructed to score exactly these and nothing else.
var Categories = []string{
	"Communication Skills",
	"Technical Knowledge",
	"Problem-Solving",
	"Cultural & Role Fit",
	"Confidence & Clarity",
}

// Generated is the raw shape requested from the structured generator.
// Pointer scores distinguish "omitted" from a genuine zero.
type Generated struct {
	TotalScore          *int                `json:"totalScore"`
	CategoryScores      []GeneratedCategory `json:"categoryScores"`
	Strengths           []string            `json:"strengths"`
	AreasForImprovement []string            `json:"areasForImprovement"`
	FinalAssessment     string              `json:"finalAssessment"`
}

type GeneratedCategory struct {
	Name    string `json:"name"`
	Score   *int   `json:"score"`
	Comment string `json:"comment"`
}

// Generator is the structured-generation collaborator.
type Generator interface {
	GenerateFeedback(ctx context.Context, prompt string) (*Generated, error)
}

// Store owns persisted feedback records.
type Store interface {
	Upsert(ctx context.Context, f *model.Feedback) error
	GetByInterview(ctx context.Context, interviewID, userID string) (*model.Feedback, error)
}

type Engine struct {
	store Store
	gen   Generator
	log   *zap.Logger
	now   func() time.Time
}

func NewEngine(store Store, gen Generator, log *zap.Logger) *Engine {
	return &Engine{store: store, gen: gen, log: log, now: time.Now}
}

// FormatTranscript renders the transcript one turn per line, order
// preserved, so the same transcript always produces the same prompt.
func FormatTranscript(transcript []model.TranscriptEntry) string {
	var b strings.Builder
	for _, t := range transcript {
		fmt.Fprintf(&b, "- %s: %s\n", t.Role, t.Content)
	}
	return b.String()
}

// CreateFeedback evaluates a transcript and upserts the resulting record.
// When feedbackID is set that record is overwritten, last write wins;
// otherwise a fresh id is minted. Returns the resolved id.
func (e *Engine) CreateFeedback(ctx context.Context, interviewID, userID string, transcript []model.TranscriptEntry, feedbackID string) (string, error) {
	if interviewID == "" || userID == "" || len(transcript) == 0 {
		return "", apperr.New(apperr.KindValidation, "Missing required fields.")
	}

	prompt := buildPrompt(FormatTranscript(transcript))

	generated, err := e.gen.GenerateFeedback(ctx, prompt)
	if err != nil {
		e.log.Error("feedback generation failed", zap.String("interview_id", interviewID), zap.Error(err))
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to generate feedback.", err)
	}

	id := feedbackID
	if id == "" {
		id = uuid.NewString()
	}

	record := e.normalize(generated)
	record.ID = id
	record.InterviewID = interviewID
	record.UserID = userID
	record.CreatedAt = e.now()

	if err := e.store.Upsert(ctx, record); err != nil {
		e.log.Error("feedback upsert failed", zap.String("feedback_id", id), zap.Error(err))
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to save feedback.", err)
	}

	return id, nil
}

// GetFeedbackByInterviewId returns the single feedback record for the
// (interview, user) pair, or nil. Uniqueness of the pair is a system
// invariant, not a database constraint, so at most one row is taken.
func (e *Engine) GetFeedbackByInterviewId(ctx context.Context, interviewID, userID string) *model.Feedback {
	if interviewID == "" || userID == "" {
		return nil
	}
	f, err := e.store.GetByInterview(ctx, interviewID, userID)
	if err != nil {
		if !apperr.IsKind(err, apperr.KindNotFound) {
			e.log.Error("fetch feedback failed", zap.String("interview_id", interviewID), zap.Error(err))
		}
		return nil
	}
	return f
}

// normalize applies the defaulting policy as an explicit step: every record
// carries exactly the five fixed categories in order, scores are clamped to
// [0,100], and omitted fields become their named defaults.
func (e *Engine) normalize(g *Generated) *model.Feedback {
	f := &model.Feedback{
		Strengths:           []string{},
		AreasForImprovement: []string{},
	}
	if g == nil {
		g = &Generated{}
	}

	if g.TotalScore != nil {
		f.TotalScore = clampScore(*g.TotalScore)
	}
	if g.Strengths != nil {
		f.Strengths = g.Strengths
	}
	if g.AreasForImprovement != nil {
		f.AreasForImprovement = g.AreasForImprovement
	}
	f.FinalAssessment = g.FinalAssessment

	byName := make(map[string]GeneratedCategory, len(g.CategoryScores))
	for _, c := range g.CategoryScores {
		byName[c.Name] = c
	}
	f.CategoryScores = make([]model.CategoryScore, 0, len(Categories))
	for _, name := range Categories {
		cs := model.CategoryScore{Name: name}
		if c, ok := byName[name]; ok {
			if c.Score != nil {
				cs.Score = clampScore(*c.Score)
			}
			cs.Comment = c.Comment
		}
		f.CategoryScores = append(f.CategoryScores, cs)
	}

	return f
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func buildPrompt(formattedTranscript string) string {
	return fmt.Sprintf(`You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.
Transcript:
%s
Please score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:
- **Communication Skills**: Clarity, articulation, structured responses.
- **Technical Knowledge**: Understanding of key concepts for the role.
- **Problem-Solving**: Ability to analyze problems and propose solutions.
- **Cultural & Role Fit**: Alignment with company values and job role.
- **Confidence & Clarity**: Confidence in responses, engagement, and clarity.`, formattedTranscript)
}
