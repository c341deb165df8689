package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	byID    map[string]model.Feedback
	upserts int
	err     error
}

func newFakeStore() *fakeStore { return &fakeStore{byID: map[string]model.Feedback{}} }

func (f *fakeStore) Upsert(ctx context.Context, fb *model.Feedback) error {
	if f.err != nil {
		return f.err
	}
	f.upserts++
	f.byID[fb.ID] = *fb
	return nil
}

func (f *fakeStore) GetByInterview(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, fb := range f.byID {
		if fb.InterviewID == interviewID && fb.UserID == userID {
			cp := fb
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "Feedback not found.")
}

type fakeGenerator struct {
	out        *Generated
	err        error
	lastPrompt string
}

func (f *fakeGenerator) GenerateFeedback(ctx context.Context, prompt string) (*Generated, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func intp(v int) *int { return &v }

func sampleTranscript() []model.TranscriptEntry {
	return []model.TranscriptEntry{
		{Role: "assistant", Content: "Tell me about yourself."},
		{Role: "user", Content: "I build backend services in Go."},
		{Role: "assistant", Content: "How would you scale a cache?"},
	}
}

func fullGenerated() *Generated {
	return &Generated{
		TotalScore: intp(72),
		CategoryScores: []GeneratedCategory{
			{Name: "Communication Skills", Score: intp(80), Comment: "Clear answers."},
			{Name: "Technical Knowledge", Score: intp(75), Comment: "Solid fundamentals."},
			{Name: "Problem-Solving", Score: intp(70), Comment: "Methodical."},
			{Name: "Cultural & Role Fit", Score: intp(65), Comment: "Good alignment."},
			{Name: "Confidence & Clarity", Score: intp(70), Comment: "Composed."},
		},
		Strengths:           []string{"Structured thinking"},
		AreasForImprovement: []string{"Go deeper on trade-offs"},
		FinalAssessment:     "A capable candidate.",
	}
}

func newTestEngine(store Store, gen Generator) *Engine {
	return NewEngine(store, gen, zap.NewNop())
}

func TestFormatTranscript(t *testing.T) {
	got := FormatTranscript(sampleTranscript())
	want := "- assistant: Tell me about yourself.\n" +
		"- user: I build backend services in Go.\n" +
		"- assistant: How would you scale a cache?\n"
	assert.Equal(t, want, got)
}

func TestCreateFeedback_Validation(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, &fakeGenerator{out: fullGenerated()})
	ctx := context.Background()

	_, err := e.CreateFeedback(ctx, "", "u1", sampleTranscript(), "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = e.CreateFeedback(ctx, "iv1", "", sampleTranscript(), "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = e.CreateFeedback(ctx, "iv1", "u1", nil, "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	assert.Zero(t, store.upserts, "no record may be created on validation failure")
}

func TestCreateFeedback_PromptContainsOrderedTranscript(t *testing.T) {
	gen := &fakeGenerator{out: fullGenerated()}
	e := newTestEngine(newFakeStore(), gen)

	_, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "")
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, FormatTranscript(sampleTranscript()))
	assert.Contains(t, gen.lastPrompt, "Don't be lenient")
}

func TestCreateFeedback_DefaultsOnEmptyGeneration(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, &fakeGenerator{out: &Generated{}})

	id, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "")
	require.NoError(t, err)

	f := e.GetFeedbackByInterviewId(context.Background(), "iv1", "u1")
	require.NotNil(t, f)
	assert.Equal(t, id, f.ID)
	assert.Equal(t, 0, f.TotalScore)
	assert.Equal(t, []string{}, f.Strengths)
	assert.Equal(t, []string{}, f.AreasForImprovement)
	assert.Equal(t, "", f.FinalAssessment)

	require.Len(t, f.CategoryScores, 5)
	for i, name := range Categories {
		assert.Equal(t, name, f.CategoryScores[i].Name)
		assert.Equal(t, 0, f.CategoryScores[i].Score)
	}
}

func TestCreateFeedback_FixedCategoriesAndClamping(t *testing.T) {
	// the generator shuffles the order, invents a category, drops another
	// and returns out-of-range scores
	gen := &fakeGenerator{out: &Generated{
		TotalScore: intp(140),
		CategoryScores: []GeneratedCategory{
			{Name: "Confidence & Clarity", Score: intp(-20), Comment: "nervous"},
			{Name: "Made-Up Category", Score: intp(99), Comment: "ignored"},
			{Name: "Technical Knowledge", Score: intp(150), Comment: "strong"},
			{Name: "Communication Skills", Score: intp(55), Comment: "fine"},
		},
	}}
	e := newTestEngine(newFakeStore(), gen)

	_, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "")
	require.NoError(t, err)

	f := e.GetFeedbackByInterviewId(context.Background(), "iv1", "u1")
	require.NotNil(t, f)
	assert.Equal(t, 100, f.TotalScore)

	require.Len(t, f.CategoryScores, 5)
	byName := map[string]model.CategoryScore{}
	for i, cs := range f.CategoryScores {
		assert.Equal(t, Categories[i], cs.Name, "categories keep the fixed order")
		assert.GreaterOrEqual(t, cs.Score, 0)
		assert.LessOrEqual(t, cs.Score, 100)
		byName[cs.Name] = cs
	}
	assert.Equal(t, 55, byName["Communication Skills"].Score)
	assert.Equal(t, 100, byName["Technical Knowledge"].Score)
	assert.Equal(t, 0, byName["Confidence & Clarity"].Score)
	assert.Equal(t, 0, byName["Problem-Solving"].Score, "dropped category defaults to zero")
	assert.NotContains(t, byName, "Made-Up Category")
}

func TestCreateFeedback_RoundTrip(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, &fakeGenerator{out: fullGenerated()})
	e.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	id, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	f := e.GetFeedbackByInterviewId(context.Background(), "iv1", "u1")
	require.NotNil(t, f)
	assert.Equal(t, id, f.ID)
	assert.Equal(t, "iv1", f.InterviewID)
	assert.Equal(t, "u1", f.UserID)
	assert.Equal(t, 72, f.TotalScore)
	assert.Equal(t, []string{"Structured thinking"}, f.Strengths)
	assert.Equal(t, []string{"Go deeper on trade-offs"}, f.AreasForImprovement)
	assert.Equal(t, "A capable candidate.", f.FinalAssessment)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), f.CreatedAt)
}

func TestCreateFeedback_UpsertIdempotence(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{out: fullGenerated()}
	e := newTestEngine(store, gen)

	id1, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "fb-1")
	require.NoError(t, err)
	assert.Equal(t, "fb-1", id1)

	gen.out = &Generated{
		TotalScore:      intp(30),
		FinalAssessment: "Second pass was rougher.",
	}
	id2, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "fb-1")
	require.NoError(t, err)
	assert.Equal(t, "fb-1", id2)

	assert.Len(t, store.byID, 1, "exactly one record per reused id")
	f := e.GetFeedbackByInterviewId(context.Background(), "iv1", "u1")
	require.NotNil(t, f)
	assert.Equal(t, 30, f.TotalScore, "the second write wins")
	assert.Equal(t, "Second pass was rougher.", f.FinalAssessment)
}

func TestCreateFeedback_GeneratorFailure(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(store, &fakeGenerator{err: errors.New("model overloaded")})

	_, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindExternalService))
	assert.Zero(t, store.upserts)
}

func TestCreateFeedback_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("pg down")
	e := newTestEngine(store, &fakeGenerator{out: fullGenerated()})

	_, err := e.CreateFeedback(context.Background(), "iv1", "u1", sampleTranscript(), "")
	assert.True(t, apperr.IsKind(err, apperr.KindExternalService))
}

func TestGetFeedbackByInterviewId_SoftFailures(t *testing.T) {
	e := newTestEngine(newFakeStore(), &fakeGenerator{out: fullGenerated()})
	ctx := context.Background()

	assert.Nil(t, e.GetFeedbackByInterviewId(ctx, "", "u1"))
	assert.Nil(t, e.GetFeedbackByInterviewId(ctx, "iv1", ""))
	assert.Nil(t, e.GetFeedbackByInterviewId(ctx, "iv-none", "u1"))
}
