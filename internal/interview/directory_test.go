package interview

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
	interviews []model.Interview
	err        error
	lastLimit  int
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, iv := range f.interviews {
		if iv.ID == id {
			cp := iv
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "Interview not found.")
}

func (f *fakeStore) ListByUser(ctx context.Context, userID string) ([]model.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Interview{}
	for _, iv := range f.interviews {
		if iv.UserID == userID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeStore) ListLatestFinalized(ctx context.Context, limit int) ([]model.Interview, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Interview{}
	for _, iv := range f.interviews {
		if !iv.Finalized {
			continue
		}
		out = append(out, iv)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func iv(id, userID string, finalized bool, age time.Duration) model.Interview {
	return model.Interview{
		ID:        id,
		UserID:    userID,
		Role:      "Backend Engineer",
		TechStack: []string{"go", "postgres"},
		Finalized: finalized,
		CreatedAt: time.Now().Add(-age),
	}
}

func newTestDirectory(store Store) *Directory {
	return NewDirectory(store, zap.NewNop())
}

func TestGetInterviewByID(t *testing.T) {
	store := &fakeStore{interviews: []model.Interview{iv("i1", "u1", true, time.Hour)}}
	d := newTestDirectory(store)
	ctx := context.Background()

	got := d.GetInterviewByID(ctx, "i1")
	require.NotNil(t, got)
	assert.Equal(t, "i1", got.ID)

	assert.Nil(t, d.GetInterviewByID(ctx, ""))
	assert.Nil(t, d.GetInterviewByID(ctx, "missing"))
}

func TestGetInterviewsByUserId(t *testing.T) {
	store := &fakeStore{interviews: []model.Interview{
		iv("i1", "u1", true, time.Hour),
		iv("i2", "u2", true, 2*time.Hour),
		iv("i3", "u1", false, 3*time.Hour),
	}}
	d := newTestDirectory(store)

	got := d.GetInterviewsByUserId(context.Background(), "u1")
	require.Len(t, got, 2)
	assert.Equal(t, "i1", got[0].ID)
	assert.Equal(t, "i3", got[1].ID)

	assert.Nil(t, d.GetInterviewsByUserId(context.Background(), ""))
}

func TestGetLatestInterviews_ExcludesOwn(t *testing.T) {
	store := &fakeStore{interviews: []model.Interview{
		iv("i1", "u1", true, time.Hour),
		iv("i2", "u2", true, 2*time.Hour),
		iv("i3", "u3", true, 3*time.Hour),
		iv("i4", "u1", true, 4*time.Hour),
	}}
	d := newTestDirectory(store)

	for _, limit := range []int{1, 2, 3, 4, 10} {
		got := d.GetLatestInterviews(context.Background(), "u1", limit)
		for _, e := range got {
			assert.NotEqual(t, "u1", e.UserID, "limit=%d", limit)
		}
	}
}

func TestGetLatestInterviews_LimitThenFilterUnderFill(t *testing.T) {
	// the caller's own interviews occupy part of the queried window, so the
	// page comes back short of the limit
	store := &fakeStore{interviews: []model.Interview{
		iv("i1", "u1", true, time.Hour),
		iv("i2", "u1", true, 2*time.Hour),
		iv("i3", "u2", true, 3*time.Hour),
		iv("i4", "u3", true, 4*time.Hour),
	}}
	d := newTestDirectory(store)

	got := d.GetLatestInterviews(context.Background(), "u1", 3)
	assert.Equal(t, 3, store.lastLimit, "the database limit applies before filtering")
	require.Len(t, got, 1)
	assert.Equal(t, "i3", got[0].ID)
}

func TestGetLatestInterviews_DefaultLimit(t *testing.T) {
	store := &fakeStore{}
	d := newTestDirectory(store)

	d.GetLatestInterviews(context.Background(), "u1", 0)
	assert.Equal(t, DefaultLatestLimit, store.lastLimit)
}

func TestDirectory_FailsSoft(t *testing.T) {
	store := &fakeStore{err: errors.New("pg down")}
	d := newTestDirectory(store)
	ctx := context.Background()

	assert.Nil(t, d.GetInterviewByID(ctx, "i1"))
	assert.Nil(t, d.GetInterviewsByUserId(ctx, "u1"))
	assert.Nil(t, d.GetLatestInterviews(ctx, "u1", 5))
	assert.Nil(t, d.GetLatestInterviews(ctx, "", 5))
}
