package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository"
)

var ErrNotFound = errors.New("appointment not found")

// DoctorDirectory resolves the doctor a booking targets; fee and
// location come from the directory record, never from the client.
type DoctorDirectory interface {
	Doctor(ctx context.Context, id string) (*model.Doctor, error)
}

type Service struct {
	repo      repository.AppointmentRepository
	directory DoctorDirectory
	demo      []model.Appointment
}

// NewService builds the appointment service. When withDemo is set, two
// demo appointments are merged into every read; they live in memory
// only and are never written to the store or mutable.
func NewService(repo repository.AppointmentRepository, directory DoctorDirectory, withDemo bool) *Service {
	s := &Service{repo: repo, directory: directory}
	if withDemo {
		s.demo = demoAppointments()
	}
	return s
}

// Book creates a new appointment with a fresh id and status forced to
// Pending.
func (s *Service) Book(ctx context.Context, req *model.BookingRequest) (*model.Appointment, error) {
	doctor, err := s.directory.Doctor(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if doctor == nil {
		return nil, fmt.Errorf("doctor %s: %w", req.DoctorID, ErrNotFound)
	}

	appt := model.Appointment{
		ID:                   model.NewID(),
		DoctorID:             doctor.ID,
		DoctorName:           doctor.Name,
		DoctorSpecialization: doctor.Specialization,
		Date:                 req.Date,
		Time:                 req.Time,
		Type:                 req.Type,
		Location:             doctor.Location,
		ConsultationFee:      doctor.ConsultationFee,
		Notes:                req.Notes,
		Status:               model.AppointmentStatusPending,
	}

	if err := s.repo.Append(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to store appointment: %w", err)
	}
	return &appt, nil
}

// Get returns a single appointment, demo entries included.
func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	appt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appt != nil {
		return appt, nil
	}
	for i := range s.demo {
		if s.demo[i].ID == id {
			d := s.demo[i]
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

// List returns stored appointments followed by the demo entries.
func (s *Service) List(ctx context.Context) ([]model.Appointment, error) {
	appts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return append(appts, s.demo...), nil
}

// SetStatus overwrites the status of a stored appointment. The store
// layer stays a silent no-op for unknown ids; this layer makes that
// visible as ErrNotFound. Demo ids are not mutable.
func (s *Service) SetStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	updated, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Reschedule moves a stored appointment to a new date/time; the store
// resets the status to Pending whatever it was before.
func (s *Service) Reschedule(ctx context.Context, id string, req *model.RescheduleRequest) error {
	updated, err := s.repo.Reschedule(ctx, id, req.Date, req.Time)
	if err != nil {
		return fmt.Errorf("failed to reschedule: %w", err)
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Upcoming returns appointments still in play: Pending or Confirmed.
func (s *Service) Upcoming(ctx context.Context) ([]model.Appointment, error) {
	return s.filter(ctx, func(a model.Appointment) bool {
		return a.Status == model.AppointmentStatusPending || a.Status == model.AppointmentStatusConfirmed
	})
}

// Past returns appointments in a terminal state: Completed or Cancelled.
func (s *Service) Past(ctx context.Context) ([]model.Appointment, error) {
	return s.filter(ctx, func(a model.Appointment) bool {
		return a.Status.Terminal()
	})
}

// Today returns appointments whose date equals the current date.
func (s *Service) Today(ctx context.Context) ([]model.Appointment, error) {
	today := time.Now().Format("2006-01-02")
	return s.filter(ctx, func(a model.Appointment) bool {
		return a.Date == today
	})
}

func (s *Service) filter(ctx context.Context, keep func(model.Appointment) bool) ([]model.Appointment, error) {
	appts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Appointment, 0, len(appts))
	for _, a := range appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func demoAppointments() []model.Appointment {
	return []model.Appointment{
		{
			ID:                   "mock-1",
			DoctorName:           "Dr. Emily Rodriguez",
			DoctorSpecialization: "Pediatrics",
			Date:                 "2023-12-10",
			Time:                 "11:00 AM",
			Status:               model.AppointmentStatusCompleted,
			Location:             "Children's Hospital, Chicago",
			ConsultationFee:      175,
			VisitSummary:         "Regular checkup completed. Patient is healthy. Next visit in 6 months.",
		},
		{
			ID:                   "mock-2",
			DoctorName:           "Dr. James Wilson",
			DoctorSpecialization: "Orthopedics",
			Date:                 "2023-11-25",
			Time:                 "3:00 PM",
			Status:               model.AppointmentStatusCancelled,
			Location:             "Orthopedic Center, Houston",
			ConsultationFee:      220,
			Notes:                "Knee pain consultation - rescheduled by patient",
		},
	}
}
