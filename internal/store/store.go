// Package store provides the persisted key/value document store the rest
// of the application is built on. Every collection (registered users,
// session, appointments, schedules, summaries, profile documents) is one
// JSON document under a fixed key, mirroring the origin-scoped local
// storage layout the service replaces.
package store

import (
	"context"
	"errors"
	"sync"
)

// Persisted document keys.
const (
	KeyCurrentUser       = "currentUser"
	KeyRegisteredUsers   = "registeredUsers"
	KeyUserAppointments  = "userAppointments"
	KeyDoctorSchedule    = "doctorSchedule"
	KeyVisitSummaries    = "visitSummaries"
	KeyUserProfile       = "userProfile"
	KeyUserNotifications = "userNotifications"
	KeyUserPrivacy       = "userPrivacy"
)

// ErrKeyNotFound is returned by Get for absent keys and is the only
// error callers are expected to branch on.
var ErrKeyNotFound = errors.New("key not found")

// SubscribeFunc is invoked synchronously after a successful Set or
// Delete of the key it was registered for.
type SubscribeFunc func(key string)

// Store is the injected persistence boundary. Implementations must be
// safe for concurrent use; documents are opaque JSON blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Subscribe(key string, fn SubscribeFunc)
	Close() error
}

// notifier implements Subscribe bookkeeping shared by all backends.
type notifier struct {
	mu   sync.RWMutex
	subs map[string][]SubscribeFunc
}

func (n *notifier) Subscribe(key string, fn SubscribeFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[string][]SubscribeFunc)
	}
	n.subs[key] = append(n.subs[key], fn)
}

func (n *notifier) notify(key string) {
	n.mu.RLock()
	fns := n.subs[key]
	n.mu.RUnlock()
	for _, fn := range fns {
		fn(key)
	}
}
