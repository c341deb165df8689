// Package interview is the read side over interview records. Lookups fail
// soft: any storage error is logged and surfaces as a nil result.
package interview

import (
	"context"

	"github.com/rht-21/intervue/pkg/model"
	"go.uber.org/zap"
)

// DefaultLatestLimit caps the discovery feed when the caller gives no limit.
const DefaultLatestLimit = 20

type Store interface {
	GetByID(ctx context.Context, id string) (*model.Interview, error)
	ListByUser(ctx context.Context, userID string) ([]model.Interview, error)
	ListLatestFinalized(ctx context.Context, limit int) ([]model.Interview, error)
}

type Directory struct {
	store Store
	log   *zap.Logger
}

func NewDirectory(store Store, log *zap.Logger) *Directory {
	return &Directory{store: store, log: log}
}

func (d *Directory) GetInterviewByID(ctx context.Context, id string) *model.Interview {
	if id == "" {
		return nil
	}
	iv, err := d.store.GetByID(ctx, id)
	if err != nil {
		d.log.Error("fetch interview by id failed", zap.String("id", id), zap.Error(err))
		return nil
	}
	return iv
}

// GetInterviewsByUserId lists the caller's own interviews, newest first.
func (d *Directory) GetInterviewsByUserId(ctx context.Context, userID string) []model.Interview {
	if userID == "" {
		return nil
	}
	list, err := d.store.ListByUser(ctx, userID)
	if err != nil {
		d.log.Error("fetch interviews by user failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return list
}

// GetLatestInterviews is the discovery feed: other people's finalized
// interviews, newest first. The caller's own interviews are filtered out
// AFTER the database limit is applied, so a page can come back with fewer
// than limit entries when the caller's interviews fall inside the queried
// window.
func (d *Directory) GetLatestInterviews(ctx context.Context, userID string, limit int) []model.Interview {
	if userID == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	list, err := d.store.ListLatestFinalized(ctx, limit)
	if err != nil {
		d.log.Error("fetch latest interviews failed", zap.Error(err))
		return nil
	}

	out := make([]model.Interview, 0, len(list))
	for _, iv := range list {
		if iv.UserID == userID {
			continue
		}
		out = append(out, iv)
	}
	return out
}
