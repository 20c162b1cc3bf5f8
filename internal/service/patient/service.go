package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/docspot/docspot-api/internal/model"
)

var ErrNotFound = errors.New("patient not found")

// Service serves the patient records doctors browse. The records are
// seeded in memory and read-only, like the admin review queue.
type Service struct {
	records []model.PatientRecord
}

func NewService() *Service {
	return &Service{records: seedRecords()}
}

// Search filters records by a case-insensitive name or email substring.
// An empty term matches all.
func (s *Service) Search(_ context.Context, term string) ([]model.PatientRecord, error) {
	term = strings.ToLower(term)
	out := make([]model.PatientRecord, 0, len(s.records))
	for _, r := range s.records {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Name), term) &&
			!strings.Contains(strings.ToLower(r.Email), term) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Get returns one record by id.
func (s *Service) Get(_ context.Context, id string) (*model.PatientRecord, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func seedRecords() []model.PatientRecord {
	return []model.PatientRecord{
		{
			ID:                 "1",
			Name:               "John Smith",
			Email:              "john.smith@email.com",
			Phone:              "+1-555-0123",
			DateOfBirth:        "1985-06-15",
			LastVisit:          "2024-01-15",
			TotalVisits:        5,
			MedicalHistory:     []string{"Hypertension", "Type 2 Diabetes"},
			CurrentMedications: []string{"Metformin 500mg", "Lisinopril 10mg"},
		},
		{
			ID:                 "2",
			Name:               "Emily Davis",
			Email:              "emily.davis@email.com",
			Phone:              "+1-555-0124",
			DateOfBirth:        "1990-03-22",
			LastVisit:          "2024-01-10",
			TotalVisits:        3,
			MedicalHistory:     []string{"Allergic Rhinitis"},
			CurrentMedications: []string{"Cetirizine 10mg"},
		},
		{
			ID:                 "3",
			Name:               "Michael Brown",
			Email:              "michael.brown@email.com",
			Phone:              "+1-555-0125",
			DateOfBirth:        "1978-11-08",
			LastVisit:          "2024-01-08",
			TotalVisits:        8,
			MedicalHistory:     []string{"Chronic Back Pain", "Migraine"},
			CurrentMedications: []string{"Ibuprofen 400mg", "Sumatriptan 50mg"},
		},
	}
}
