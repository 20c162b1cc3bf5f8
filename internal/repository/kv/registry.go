package kv

import (
	"context"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
)

type credentialRegistry struct {
	store store.Store
}

func NewCredentialRegistry(s store.Store) *credentialRegistry {
	return &credentialRegistry{store: s}
}

func (r *credentialRegistry) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if _, err := getJSON(ctx, r.store, store.KeyRegisteredUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *credentialRegistry) Append(ctx context.Context, user model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	return putJSON(ctx, r.store, store.KeyRegisteredUsers, users)
}

// FindByEmail returns the first entry with a byte-identical email, or
// nil. Matching is deliberately case-sensitive and unnormalized.
func (r *credentialRegistry) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindMatch returns the first entry matching email and password exactly,
// and role when role is non-empty. Credentials are stored and compared
// as plaintext; this mirrors the persisted layout it replaces and is not
// a recommendation.
func (r *credentialRegistry) FindMatch(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		u := &users[i]
		if u.Email == email && u.Password == password && (role == "" || u.Role == role) {
			return u, nil
		}
	}
	return nil, nil
}
