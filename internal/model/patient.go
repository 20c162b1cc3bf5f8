package model

// PatientRecord is a doctor-facing view of one patient: contact data,
// visit counters and the standing medical picture.
type PatientRecord struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	DateOfBirth        string   `json:"dateOfBirth"`
	LastVisit          string   `json:"lastVisit"`
	TotalVisits        int      `json:"totalVisits"`
	MedicalHistory     []string `json:"medicalHistory"`
	CurrentMedications []string `json:"currentMedications"`
}
