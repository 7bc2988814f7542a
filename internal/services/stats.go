package services

import (
	"context"
	"time"

	"medilink/internal/database"
	"medilink/internal/models"
	"medilink/internal/utils"

	"github.com/rs/zerolog"
)

// StatsService aggregates a user's appointments, records and cycle entries.
type StatsService struct {
	appointments *database.Collection[models.Appointment]
	records      *database.Collection[models.MedicalRecord]
	entries      *database.Collection[models.CycleEntry]
	logger       zerolog.Logger
	now          func() time.Time
}

func NewStatsService(store *database.Store, logger zerolog.Logger) *StatsService {
	return &StatsService{
		appointments: database.NewCollection[models.Appointment](store, database.KindAppointments),
		records:      database.NewCollection[models.MedicalRecord](store, database.KindMedicalRecords),
		entries:      database.NewCollection[models.CycleEntry](store, database.KindPeriodTracker),
		logger:       logger.With().Str("component", "stats").Logger(),
		now:          time.Now,
	}
}

// ForUser counts the user's activity. An appointment is upcoming when it is
// still Scheduled and dated today or later.
func (s *StatsService) ForUser(ctx context.Context, userID int) (models.UserStats, error) {
	var stats models.UserStats

	appointments, err := s.appointments.Load(ctx)
	if err != nil {
		return stats, err
	}
	today := s.now()
	for _, a := range appointments {
		if a.PatientID != userID {
			continue
		}
		stats.TotalAppointments++
		if a.Status != models.StatusScheduled {
			continue
		}
		upcoming, err := utils.OnOrAfter(a.Date, today)
		if err != nil {
			s.logger.Warn().Err(err).Int("appointment_id", a.ID).Msg("unparseable appointment date")
			continue
		}
		if upcoming {
			stats.UpcomingAppointments++
		}
	}

	records, err := s.records.Load(ctx)
	if err != nil {
		return stats, err
	}
	for _, r := range records {
		if r.PatientID == userID {
			stats.TotalRecords++
		}
	}

	entries, err := s.entries.Load(ctx)
	if err != nil {
		return stats, err
	}
	for _, e := range entries {
		if e.UserID == userID {
			stats.TotalCycles++
		}
	}
	return stats, nil
}
