package kv

import (
	"context"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
)

type sessionRepository struct {
	store store.Store
}

func NewSessionRepository(s store.Store) *sessionRepository {
	return &sessionRepository{store: s}
}

// Current returns the session user, or nil when no session exists.
func (r *sessionRepository) Current(ctx context.Context) (*model.User, error) {
	var user model.User
	ok, err := getJSON(ctx, r.store, store.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Set overwrites the session. The password must already be stripped;
// this layer stores what it is given.
func (r *sessionRepository) Set(ctx context.Context, user model.User) error {
	return putJSON(ctx, r.store, store.KeyCurrentUser, user)
}

// Clear is idempotent: deleting an absent session is not an error.
func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentUser)
}
