package kv

import (
	"context"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
)

type appointmentRepository struct {
	store store.Store
}

func NewAppointmentRepository(s store.Store) *appointmentRepository {
	return &appointmentRepository{store: s}
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	var appts []model.Appointment
	if _, err := getJSON(ctx, r.store, store.KeyUserAppointments, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) Append(ctx context.Context, appt model.Appointment) error {
	appts, err := r.List(ctx)
	if err != nil {
		return err
	}
	appts = append(appts, appt)
	return putJSON(ctx, r.store, store.KeyUserAppointments, appts)
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	appts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appts {
		if appts[i].ID == id {
			return &appts[i], nil
		}
	}
	return nil, nil
}

// SetStatus overwrites the status of the given appointment. Unknown ids
// leave the stored list untouched and report false; no transition
// legality is checked at this layer.
func (r *appointmentRepository) SetStatus(ctx context.Context, id string, status model.AppointmentStatus) (bool, error) {
	appts, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range appts {
		if appts[i].ID == id {
			appts[i].Status = status
			return true, putJSON(ctx, r.store, store.KeyUserAppointments, appts)
		}
	}
	return false, nil
}

// Reschedule overwrites date and time and resets the status to Pending
// regardless of the prior status. Unknown ids leave the stored list
// untouched and report false.
func (r *appointmentRepository) Reschedule(ctx context.Context, id, date, time string) (bool, error) {
	appts, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range appts {
		if appts[i].ID == id {
			appts[i].Date = date
			appts[i].Time = time
			appts[i].Status = model.AppointmentStatusPending
			return true, putJSON(ctx, r.store, store.KeyUserAppointments, appts)
		}
	}
	return false, nil
}
