package model

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Terminal reports whether no further transition out of s is offered.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment is one booking record. Date is an ISO date string
// ("2006-01-02") and Time a display slot such as "9:00 AM", matching the
// persisted layout.
type Appointment struct {
	ID                   string            `json:"id"`
	DoctorID             string            `json:"doctorId"`
	DoctorName           string            `json:"doctorName"`
	DoctorSpecialization string            `json:"doctorSpecialization"`
	Date                 string            `json:"date"`
	Time                 string            `json:"time"`
	Type                 string            `json:"type,omitempty"`
	Location             string            `json:"location"`
	ConsultationFee      float64           `json:"consultationFee"`
	Notes                string            `json:"notes,omitempty"`
	VisitSummary         string            `json:"visitSummary,omitempty"`
	Status               AppointmentStatus `json:"status"`
}

// BookingRequest carries a new booking. Fee and location come from the
// doctor record, not the client.
type BookingRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Notes    string `json:"notes"`
}

// RescheduleRequest moves an appointment to a new date/time. The status
// is reset to Pending by the store, never by the caller.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time" binding:"required"`
}

// UpdateStatusRequest overwrites an appointment status.
type UpdateStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required,apptstatus"`
}
