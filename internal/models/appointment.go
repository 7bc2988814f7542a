package models

// StatusScheduled is the status every new appointment starts in.
const StatusScheduled = "Scheduled"

// Appointment defines a booked slot with a doctor. Doctor name and
// specialization are copied from the directory at booking time.
type Appointment struct {
	ID             int    `json:"id"`
	PatientID      int    `json:"patient_id"`
	DoctorID       int    `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

func (a Appointment) RecordID() int { return a.ID }

type CreateAppointmentRequest struct {
	PatientID int    `json:"patient_id" binding:"required"`
	DoctorID  int    `json:"doctor_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Reason *string `json:"reason"`
	Status *string `json:"status"`
}
