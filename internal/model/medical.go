package model

// VisitSummary is a doctor-authored record of one visit, shown under
// medical history.
type VisitSummary struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	VisitDate    string `json:"visitDate"`
	Diagnosis    string `json:"diagnosis"`
	Symptoms     string `json:"symptoms"`
	Treatment    string `json:"treatment"`
	Medications  string `json:"medications"`
	FollowUpDate string `json:"followUpDate,omitempty"`
	Notes        string `json:"notes"`
}

// CreateVisitSummaryRequest carries a new visit summary. Patient name and
// diagnosis are the only hard requirements.
type CreateVisitSummaryRequest struct {
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName" binding:"required"`
	VisitDate    string `json:"visitDate" binding:"omitempty,datetime=2006-01-02"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Symptoms     string `json:"symptoms"`
	Treatment    string `json:"treatment"`
	Medications  string `json:"medications"`
	FollowUpDate string `json:"followUpDate" binding:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes"`
}
