package models

// CycleEntry is one logged menstrual period.
type CycleEntry struct {
	ID        int      `json:"id"`
	UserID    int      `json:"user_id"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes"`
	CreatedAt string   `json:"created_at"`
}

func (e CycleEntry) RecordID() int { return e.ID }

type CreateCycleEntryRequest struct {
	UserID    int      `json:"user_id" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes"`
}
