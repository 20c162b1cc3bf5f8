package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
	apperrors "github.com/docspot/docspot-api/pkg/errors"
)

var profileKeys = map[string]bool{
	store.KeyUserProfile:       true,
	store.KeyUserNotifications: true,
	store.KeyUserPrivacy:       true,
}

type profileRepository struct {
	store store.Store
}

func NewProfileRepository(s store.Store) *profileRepository {
	return &profileRepository{store: s}
}

// Get returns the document under key, or nil when absent. Only the
// three settings keys are reachable through this repository.
func (r *profileRepository) Get(ctx context.Context, key string) (model.ProfileDocument, error) {
	if !profileKeys[key] {
		return nil, apperrors.NewBadRequest(fmt.Sprintf("unknown profile document %q", key), nil)
	}
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return model.ProfileDocument(raw), nil
}

func (r *profileRepository) Put(ctx context.Context, key string, doc model.ProfileDocument) error {
	if !profileKeys[key] {
		return apperrors.NewBadRequest(fmt.Sprintf("unknown profile document %q", key), nil)
	}
	return r.store.Set(ctx, key, doc)
}
