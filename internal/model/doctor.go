package model

// Doctor is a directory entry shown on the find-doctors page.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating"`
	Experience      int      `json:"experience"`
	Availability    []string `json:"availability"`
	ConsultationFee float64  `json:"consultationFee"`
}

// TimeSlot is one bookable window within a working day.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"isAvailable"`
}

// DaySchedule is a doctor's plan for one weekday.
type DaySchedule struct {
	Day       string     `json:"day"`
	Working   bool       `json:"isWorking"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// DoctorSchedule is the single persisted schedule document.
type DoctorSchedule struct {
	Schedule        []DaySchedule `json:"schedule"`
	ConsultationFee string        `json:"consultationFee"`
}

// PendingDoctor is a doctor application awaiting admin review.
type PendingDoctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Location       string `json:"location"`
	LicenseNumber  string `json:"licenseNumber"`
	SubmittedDate  string `json:"submittedDate"`
}
