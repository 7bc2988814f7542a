package services

import (
	"context"
	"fmt"
	"time"

	"medilink/internal/database"
	"medilink/internal/models"
	"medilink/internal/validation"

	"github.com/rs/zerolog"
)

// PeriodTrackerService stores menstrual cycle entries.
type PeriodTrackerService struct {
	entries *database.Collection[models.CycleEntry]
	logger  zerolog.Logger
	now     func() time.Time
}

func NewPeriodTrackerService(store *database.Store, logger zerolog.Logger) *PeriodTrackerService {
	return &PeriodTrackerService{
		entries: database.NewCollection[models.CycleEntry](store, database.KindPeriodTracker),
		logger:  logger.With().Str("component", "period_tracker").Logger(),
		now:     time.Now,
	}
}

func (s *PeriodTrackerService) Add(ctx context.Context, req models.CreateCycleEntryRequest) (models.CycleEntry, error) {
	if err := validation.Required(&req); err != nil {
		return models.CycleEntry{}, err
	}
	symptoms := req.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	var entry models.CycleEntry
	err := s.entries.Update(ctx, func(b *database.Batch[models.CycleEntry]) error {
		entry = models.CycleEntry{
			ID:        b.NextID(),
			UserID:    req.UserID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Symptoms:  symptoms,
			Notes:     req.Notes,
			CreatedAt: models.Timestamp(s.now()),
		}
		b.Records = append(b.Records, entry)
		return nil
	})
	if err != nil {
		return models.CycleEntry{}, err
	}
	s.logger.Debug().Int("entry_id", entry.ID).Msg("cycle entry added")
	return entry, nil
}

func (s *PeriodTrackerService) Delete(ctx context.Context, id int) error {
	return s.entries.Update(ctx, func(b *database.Batch[models.CycleEntry]) error {
		i := indexOf(b.Records, id)
		if i < 0 {
			return fmt.Errorf("period entry %d: %w", id, ErrEntryNotFound)
		}
		b.Records = removeAt(b.Records, i)
		return nil
	})
}

func (s *PeriodTrackerService) List(ctx context.Context, userID *int) ([]models.CycleEntry, error) {
	all, err := s.entries.Load(ctx)
	if err != nil || userID == nil {
		return all, err
	}
	return filter(all, func(e models.CycleEntry) bool { return e.UserID == *userID }), nil
}
