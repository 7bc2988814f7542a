package models

// UserStats summarizes a user's activity for the dashboard.
type UserStats struct {
	TotalAppointments    int `json:"total_appointments"`
	UpcomingAppointments int `json:"upcoming_appointments"`
	TotalRecords         int `json:"total_records"`
	TotalCycles          int `json:"total_cycles"`
}
