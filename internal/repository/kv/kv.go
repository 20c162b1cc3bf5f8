// Package kv implements the repository interfaces over the document
// store: one JSON document per collection, read-modify-write on every
// mutation.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/docspot/docspot-api/internal/store"
)

// getJSON decodes the document at key into out. It reports false with a
// nil error when the key is absent.
func getJSON(ctx context.Context, s store.Store, key string, out interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("corrupt %s document: %w", key, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, s store.Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
