package repository

import (
	"context"

	"github.com/docspot/docspot-api/internal/model"
)

// CredentialRegistry is the persisted list of registered users. Every
// mutation rewrites the full list.
type CredentialRegistry interface {
	List(ctx context.Context) ([]model.User, error)
	Append(ctx context.Context, user model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindMatch(ctx context.Context, email, password string, role model.Role) (*model.User, error)
}

// SessionRepository holds the single current-user session.
type SessionRepository interface {
	Current(ctx context.Context) (*model.User, error)
	Set(ctx context.Context, user model.User) error
	Clear(ctx context.Context) error
}

// AppointmentRepository is the persisted appointment list. SetStatus and
// Reschedule report whether an entry was touched; when the id is absent
// the stored list is left untouched.
type AppointmentRepository interface {
	List(ctx context.Context) ([]model.Appointment, error)
	Append(ctx context.Context, appt model.Appointment) error
	Get(ctx context.Context, id string) (*model.Appointment, error)
	SetStatus(ctx context.Context, id string, status model.AppointmentStatus) (bool, error)
	Reschedule(ctx context.Context, id, date, time string) (bool, error)
}

// ScheduleRepository holds the doctor schedule document.
type ScheduleRepository interface {
	Get(ctx context.Context) (*model.DoctorSchedule, error)
	Put(ctx context.Context, schedule model.DoctorSchedule) error
}

// SummaryRepository is the persisted visit summary list, newest first.
type SummaryRepository interface {
	List(ctx context.Context) ([]model.VisitSummary, error)
	Prepend(ctx context.Context, summary model.VisitSummary) error
}

// ProfileRepository round-trips the opaque settings documents.
type ProfileRepository interface {
	Get(ctx context.Context, key string) (model.ProfileDocument, error)
	Put(ctx context.Context, key string, doc model.ProfileDocument) error
}
