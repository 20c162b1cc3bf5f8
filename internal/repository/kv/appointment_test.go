package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
)

func seedAppointment(t *testing.T, repo *appointmentRepository, id string, status model.AppointmentStatus) {
	t.Helper()
	require.NoError(t, repo.Append(context.Background(), model.Appointment{
		ID:     id,
		Date:   "2024-02-01",
		Time:   "10:00 AM",
		Status: status,
	}))
}

func TestAppointmentRepositorySetStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(store.NewMemoryStore())
	seedAppointment(t, repo, "100", model.AppointmentStatusPending)

	updated, err := repo.SetStatus(ctx, "100", model.AppointmentStatusConfirmed)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.Get(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.AppointmentStatusConfirmed, got.Status)
}

func TestAppointmentRepositoryUnknownIDLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(store.NewMemoryStore())
	seedAppointment(t, repo, "100", model.AppointmentStatusPending)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	updated, err := repo.SetStatus(ctx, "missing", model.AppointmentStatusCancelled)
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = repo.Reschedule(ctx, "missing", "2024-03-01", "9:00 AM")
	require.NoError(t, err)
	assert.False(t, updated)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppointmentRepositoryRescheduleResetsStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(store.NewMemoryStore())
	seedAppointment(t, repo, "100", model.AppointmentStatusConfirmed)

	updated, err := repo.Reschedule(ctx, "100", "2024-03-15", "2:00 PM")
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.Get(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-15", got.Date)
	assert.Equal(t, "2:00 PM", got.Time)
	assert.Equal(t, model.AppointmentStatusPending, got.Status)
}
