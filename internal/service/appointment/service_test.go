package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository/kv"
	"github.com/docspot/docspot-api/internal/store"
)

type stubDirectory map[string]model.Doctor

func (d stubDirectory) Doctor(_ context.Context, id string) (*model.Doctor, error) {
	if doc, ok := d[id]; ok {
		return &doc, nil
	}
	return nil, nil
}

func testDirectory() stubDirectory {
	return stubDirectory{
		"1": {
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Cardiology",
			Location:        "New York",
			ConsultationFee: 200,
		},
	}
}

func newService(withDemo bool) (*Service, store.Store) {
	s := store.NewMemoryStore()
	return NewService(kv.NewAppointmentRepository(s), testDirectory(), withDemo), s
}

func book(t *testing.T, svc *Service) *model.Appointment {
	t.Helper()
	appt, err := svc.Book(context.Background(), &model.BookingRequest{
		DoctorID: "1",
		Date:     "2024-02-01",
		Time:     "10:00 AM",
		Type:     "Consultation",
	})
	require.NoError(t, err)
	return appt
}

func TestBookStartsPending(t *testing.T) {
	svc, _ := newService(false)
	appt := book(t, svc)

	assert.Equal(t, model.AppointmentStatusPending, appt.Status)
	assert.Equal(t, "Dr. Sarah Johnson", appt.DoctorName)
	assert.Equal(t, "New York", appt.Location)
	assert.Equal(t, float64(200), appt.ConsultationFee)
	assert.NotEmpty(t, appt.ID)
}

func TestBookUnknownDoctor(t *testing.T) {
	svc, _ := newService(false)
	_, err := svc.Book(context.Background(), &model.BookingRequest{
		DoctorID: "missing",
		Date:     "2024-02-01",
		Time:     "10:00 AM",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatusLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(false)
	appt := book(t, svc)

	require.NoError(t, svc.SetStatus(ctx, appt.ID, model.AppointmentStatusConfirmed))

	upcoming, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, model.AppointmentStatusConfirmed, upcoming[0].Status)

	require.NoError(t, svc.SetStatus(ctx, appt.ID, model.AppointmentStatusCompleted))

	upcoming, err = svc.Upcoming(ctx)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	past, err := svc.Past(ctx)
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, model.AppointmentStatusCompleted, past[0].Status)
}

func TestUpcomingAndPastPartitionEverything(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(true)
	appt := book(t, svc)
	require.NoError(t, svc.SetStatus(ctx, appt.ID, model.AppointmentStatusConfirmed))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	upcoming, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	past, err := svc.Past(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(all), len(upcoming)+len(past))
	for _, a := range upcoming {
		assert.False(t, a.Status.Terminal())
	}
	for _, a := range past {
		assert.True(t, a.Status.Terminal())
	}
}

func TestTodayFiltersByCurrentDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(false)

	todays, err := svc.Book(ctx, &model.BookingRequest{
		DoctorID: "1",
		Date:     time.Now().Format("2006-01-02"),
		Time:     "10:00 AM",
		Type:     "Consultation",
	})
	require.NoError(t, err)

	_, err = svc.Book(ctx, &model.BookingRequest{
		DoctorID: "1",
		Date:     "2024-02-01",
		Time:     "11:00 AM",
		Type:     "Consultation",
	})
	require.NoError(t, err)

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, todays.ID, today[0].ID)
}

func TestRescheduleResetsToPending(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(false)
	appt := book(t, svc)
	require.NoError(t, svc.SetStatus(ctx, appt.ID, model.AppointmentStatusConfirmed))

	require.NoError(t, svc.Reschedule(ctx, appt.ID, &model.RescheduleRequest{
		Date: "2024-03-15",
		Time: "2:00 PM",
	}))

	got, err := svc.Get(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got.Date)
	assert.Equal(t, "2:00 PM", got.Time)
	assert.Equal(t, model.AppointmentStatusPending, got.Status)
}

func TestUnknownIDSurfacesNotFound(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(false)
	book(t, svc)

	before, err := s.Get(ctx, store.KeyUserAppointments)
	require.NoError(t, err)

	err = svc.SetStatus(ctx, "missing", model.AppointmentStatusCancelled)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Reschedule(ctx, "missing", &model.RescheduleRequest{Date: "2024-03-15", Time: "2:00 PM"})
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := s.Get(ctx, store.KeyUserAppointments)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDemoEntriesAreReadOnlyAndNeverPersisted(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(true)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := svc.Get(ctx, "mock-1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, got.Status)

	// Demo entries are not mutable through the store path.
	err = svc.SetStatus(ctx, "mock-1", model.AppointmentStatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing about them reaches the store.
	_, err = s.Get(ctx, store.KeyUserAppointments)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}
