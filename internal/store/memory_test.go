package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	_, err := s.Get(ctx, KeyRegisteredUsers)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, KeyRegisteredUsers, []byte(`[{"id":"1"}]`)))

	got, err := s.Get(ctx, KeyRegisteredUsers)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	// Mutating the returned slice must not leak into the store.
	got[0] = 'X'
	again, err := s.Get(ctx, KeyRegisteredUsers)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(again))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyRegisteredUsers}, keys)

	require.NoError(t, s.Delete(ctx, KeyRegisteredUsers))
	_, err = s.Get(ctx, KeyRegisteredUsers)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	var fired []string
	s.Subscribe(KeyCurrentUser, func(key string) { fired = append(fired, key) })

	require.NoError(t, s.Set(ctx, KeyCurrentUser, []byte(`{"id":"1"}`)))
	require.NoError(t, s.Set(ctx, KeyRegisteredUsers, []byte(`[]`)))
	require.NoError(t, s.Delete(ctx, KeyCurrentUser))

	assert.Equal(t, []string{KeyCurrentUser, KeyCurrentUser}, fired)
}
