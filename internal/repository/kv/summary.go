package kv

import (
	"context"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
)

type summaryRepository struct {
	store store.Store
}

func NewSummaryRepository(s store.Store) *summaryRepository {
	return &summaryRepository{store: s}
}

func (r *summaryRepository) List(ctx context.Context) ([]model.VisitSummary, error) {
	var summaries []model.VisitSummary
	if _, err := getJSON(ctx, r.store, store.KeyVisitSummaries, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Prepend inserts the summary at the head of the list: the history page
// shows newest first.
func (r *summaryRepository) Prepend(ctx context.Context, summary model.VisitSummary) error {
	summaries, err := r.List(ctx)
	if err != nil {
		return err
	}
	summaries = append([]model.VisitSummary{summary}, summaries...)
	return putJSON(ctx, r.store, store.KeyVisitSummaries, summaries)
}
