package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository/kv"
	"github.com/docspot/docspot-api/internal/store"
)

func newService() *Service {
	return NewService(kv.NewScheduleRepository(store.NewMemoryStore()))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	all, err := svc.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// "All" turns the specialization filter off.
	allOff, err := svc.Search(ctx, "", "All")
	require.NoError(t, err)
	assert.Len(t, allOff, 5)

	byName, err := svc.Search(ctx, "sarah", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Dr. Sarah Johnson", byName[0].Name)

	bySpec, err := svc.Search(ctx, "", "Pediatrics")
	require.NoError(t, err)
	require.Len(t, bySpec, 1)
	assert.Equal(t, "Dr. Emily Rodriguez", bySpec[0].Name)

	// Term matches against specialization too.
	byTermSpec, err := svc.Search(ctx, "cardio", "")
	require.NoError(t, err)
	require.Len(t, byTermSpec, 1)

	none, err := svc.Search(ctx, "sarah", "Neurology")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScheduleDefaultsWhenUnsaved(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	schedule, err := svc.Schedule(ctx)
	require.NoError(t, err)
	require.Len(t, schedule.Schedule, 7)
	assert.Equal(t, "200", schedule.ConsultationFee)

	monday := schedule.Schedule[0]
	assert.Equal(t, "Monday", monday.Day)
	assert.True(t, monday.Working)
	require.Len(t, monday.TimeSlots, 2)
	assert.Equal(t, "09:00", monday.TimeSlots[0].StartTime)

	sunday := schedule.Schedule[6]
	assert.False(t, sunday.Working)
	assert.Empty(t, sunday.TimeSlots)
}

func TestSaveScheduleRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	saved := model.DoctorSchedule{
		Schedule: []model.DaySchedule{
			{Day: "Monday", Working: false, TimeSlots: []model.TimeSlot{}},
		},
		ConsultationFee: "350",
	}
	require.NoError(t, svc.SaveSchedule(ctx, saved))

	got, err := svc.Schedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, *got)
}

func TestApproveMovesDoctorIntoDirectory(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	pending, err := svc.PendingApprovals(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, svc.Approve(ctx, pending[0].ID))

	remaining, err := svc.PendingApprovals(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	listed, err := svc.Search(ctx, pending[0].Name, "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, pending[0].Specialization, listed[0].Specialization)
}

func TestRejectDropsApplication(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	pending, err := svc.PendingApprovals(ctx)
	require.NoError(t, err)
	name := pending[1].Name

	require.NoError(t, svc.Reject(ctx, pending[1].ID))

	remaining, err := svc.PendingApprovals(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	listed, err := svc.Search(ctx, name, "")
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, svc.Reject(ctx, pending[1].ID), ErrNotFound)
}
