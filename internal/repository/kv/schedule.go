package kv

import (
	"context"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/store"
)

type scheduleRepository struct {
	store store.Store
}

func NewScheduleRepository(s store.Store) *scheduleRepository {
	return &scheduleRepository{store: s}
}

// Get returns the saved schedule, or nil when none has been saved yet.
func (r *scheduleRepository) Get(ctx context.Context) (*model.DoctorSchedule, error) {
	var schedule model.DoctorSchedule
	ok, err := getJSON(ctx, r.store, store.KeyDoctorSchedule, &schedule)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &schedule, nil
}

func (r *scheduleRepository) Put(ctx context.Context, schedule model.DoctorSchedule) error {
	return putJSON(ctx, r.store, store.KeyDoctorSchedule, schedule)
}
