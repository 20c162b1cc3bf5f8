package medical

import (
	"context"
	"fmt"
	"time"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository"
)

// Service manages visit summaries. Two seeded demo summaries are served
// read-only ahead of persisted entries when demo data is enabled.
type Service struct {
	repo repository.SummaryRepository
	demo []model.VisitSummary
}

func NewService(repo repository.SummaryRepository, withDemo bool) *Service {
	s := &Service{repo: repo}
	if withDemo {
		s.demo = demoSummaries()
	}
	return s
}

// List returns persisted summaries (newest first) followed by the demo
// entries.
func (s *Service) List(ctx context.Context) ([]model.VisitSummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visit summaries: %w", err)
	}
	return append(summaries, s.demo...), nil
}

// Create persists a new summary at the head of the list. The visit date
// defaults to today when omitted.
func (s *Service) Create(ctx context.Context, req *model.CreateVisitSummaryRequest) (*model.VisitSummary, error) {
	visitDate := req.VisitDate
	if visitDate == "" {
		visitDate = time.Now().Format("2006-01-02")
	}

	summary := model.VisitSummary{
		ID:           model.NewID(),
		PatientID:    req.PatientID,
		PatientName:  req.PatientName,
		VisitDate:    visitDate,
		Diagnosis:    req.Diagnosis,
		Symptoms:     req.Symptoms,
		Treatment:    req.Treatment,
		Medications:  req.Medications,
		FollowUpDate: req.FollowUpDate,
		Notes:        req.Notes,
	}

	if err := s.repo.Prepend(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to store visit summary: %w", err)
	}
	return &summary, nil
}

func demoSummaries() []model.VisitSummary {
	return []model.VisitSummary{
		{
			ID:           "1",
			PatientName:  "John Smith",
			PatientID:    "1",
			VisitDate:    "2024-01-15",
			Diagnosis:    "Hypertension follow-up",
			Symptoms:     "Occasional headaches, fatigue",
			Treatment:    "Continue current medication, lifestyle modifications",
			Medications:  "Lisinopril 10mg daily",
			FollowUpDate: "2024-03-15",
			Notes:        "Blood pressure well controlled. Patient reports good adherence to medication.",
		},
		{
			ID:          "2",
			PatientName: "Emily Davis",
			PatientID:   "2",
			VisitDate:   "2024-01-10",
			Diagnosis:   "Allergic rhinitis",
			Symptoms:    "Sneezing, nasal congestion, itchy eyes",
			Treatment:   "Antihistamine therapy, environmental modifications",
			Medications: "Cetirizine 10mg daily",
			Notes:       "Symptoms improved with current treatment. Advised to avoid known allergens.",
		},
	}
}
