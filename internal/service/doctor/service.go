package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository"
)

var ErrNotFound = errors.New("doctor not found")

// Service serves the doctor directory, the persisted schedule document
// and the admin review queue. The directory and the review queue are
// seeded in memory and not persisted, matching the data they replace.
type Service struct {
	schedules repository.ScheduleRepository

	mu        sync.Mutex
	directory []model.Doctor
	pending   []model.PendingDoctor
}

func NewService(schedules repository.ScheduleRepository) *Service {
	return &Service{
		schedules: schedules,
		directory: seedDirectory(),
		pending:   seedPending(),
	}
}

// Doctor returns a directory entry by id, or nil when unknown.
func (s *Service) Doctor(_ context.Context, id string) (*model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.directory {
		if s.directory[i].ID == id {
			d := s.directory[i]
			return &d, nil
		}
	}
	return nil, nil
}

// Search filters the directory by a case-insensitive name/specialization
// substring and an exact specialization. Empty arguments match all;
// specialization "All" is the filter's off position.
func (s *Service) Search(_ context.Context, term, specialization string) ([]model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(term)
	out := make([]model.Doctor, 0, len(s.directory))
	for _, d := range s.directory {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialization), term) {
			continue
		}
		if specialization != "" && specialization != "All" && d.Specialization != specialization {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// Specializations returns the filter options, "All" first.
func (s *Service) Specializations(_ context.Context) []string {
	return []string{"All", "Cardiology", "Dermatology", "Pediatrics", "Orthopedics", "Neurology"}
}

// Schedule returns the saved schedule, or the default Monday-Friday
// template when none has been saved.
func (s *Service) Schedule(ctx context.Context) (*model.DoctorSchedule, error) {
	schedule, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		def := defaultSchedule()
		return &def, nil
	}
	return schedule, nil
}

// SaveSchedule persists the schedule document wholesale.
func (s *Service) SaveSchedule(ctx context.Context, schedule model.DoctorSchedule) error {
	if err := s.schedules.Put(ctx, schedule); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

// PendingApprovals returns doctor applications awaiting review.
func (s *Service) PendingApprovals(_ context.Context) ([]model.PendingDoctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PendingDoctor, len(s.pending))
	copy(out, s.pending)
	return out, nil
}

// Approve removes the application from the queue and lists the doctor
// in the directory.
func (s *Service) Approve(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pending {
		if p.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			s.directory = append(s.directory, model.Doctor{
				ID:             p.ID,
				Name:           p.Name,
				Specialization: p.Specialization,
				Location:       p.Location,
			})
			return nil
		}
	}
	return ErrNotFound
}

// Reject drops the application.
func (s *Service) Reject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pending {
		if p.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seedDirectory() []model.Doctor {
	return []model.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Cardiology",
			Location:        "New York",
			Rating:          4.8,
			Experience:      12,
			Availability:    []string{"Monday", "Tuesday", "Wednesday"},
			ConsultationFee: 200,
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialization:  "Dermatology",
			Location:        "Los Angeles",
			Rating:          4.9,
			Experience:      8,
			Availability:    []string{"Tuesday", "Thursday", "Friday"},
			ConsultationFee: 150,
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Rodriguez",
			Specialization:  "Pediatrics",
			Location:        "Chicago",
			Rating:          4.7,
			Experience:      15,
			Availability:    []string{"Monday", "Wednesday", "Friday"},
			ConsultationFee: 175,
		},
		{
			ID:              "4",
			Name:            "Dr. James Wilson",
			Specialization:  "Orthopedics",
			Location:        "Houston",
			Rating:          4.6,
			Experience:      20,
			Availability:    []string{"Tuesday", "Wednesday", "Thursday"},
			ConsultationFee: 220,
		},
		{
			ID:              "5",
			Name:            "Dr. Lisa Thompson",
			Specialization:  "Neurology",
			Location:        "Miami",
			Rating:          4.9,
			Experience:      18,
			Availability:    []string{"Monday", "Thursday", "Friday"},
			ConsultationFee: 250,
		},
	}
}

func seedPending() []model.PendingDoctor {
	return []model.PendingDoctor{
		{
			ID:             "1",
			Name:           "Dr. Jennifer Wilson",
			Specialization: "Pediatrics",
			Location:       "New York, NY",
			LicenseNumber:  "NY123456",
			SubmittedDate:  "2024-01-10",
		},
		{
			ID:             "2",
			Name:           "Dr. Robert Martinez",
			Specialization: "Orthopedics",
			Location:       "Los Angeles, CA",
			LicenseNumber:  "CA789012",
			SubmittedDate:  "2024-01-12",
		},
	}
}

func defaultSchedule() model.DoctorSchedule {
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	days := make([]model.DaySchedule, 0, 7)
	slot := 1
	for _, day := range weekdays {
		days = append(days, model.DaySchedule{
			Day:     day,
			Working: true,
			TimeSlots: []model.TimeSlot{
				{ID: fmt.Sprint(slot), StartTime: "09:00", EndTime: "12:00", Available: true},
				{ID: fmt.Sprint(slot + 1), StartTime: "14:00", EndTime: "17:00", Available: true},
			},
		})
		slot += 2
	}
	for _, day := range []string{"Saturday", "Sunday"} {
		days = append(days, model.DaySchedule{Day: day, Working: false, TimeSlots: []model.TimeSlot{}})
	}
	return model.DoctorSchedule{Schedule: days, ConsultationFee: "200"}
}
