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

type MedicalRecordService struct {
	records *database.Collection[models.MedicalRecord]
	logger  zerolog.Logger
	now     func() time.Time
}

func NewMedicalRecordService(store *database.Store, logger zerolog.Logger) *MedicalRecordService {
	return &MedicalRecordService{
		records: database.NewCollection[models.MedicalRecord](store, database.KindMedicalRecords),
		logger:  logger.With().Str("component", "medical_records").Logger(),
		now:     time.Now,
	}
}

func (s *MedicalRecordService) Create(ctx context.Context, req models.CreateMedicalRecordRequest) (models.MedicalRecord, error) {
	if err := validation.Required(&req); err != nil {
		return models.MedicalRecord{}, err
	}
	var rec models.MedicalRecord
	err := s.records.Update(ctx, func(b *database.Batch[models.MedicalRecord]) error {
		rec = models.MedicalRecord{
			ID:          b.NextID(),
			PatientID:   req.PatientID,
			RecordType:  req.RecordType,
			Description: req.Description,
			Date:        req.Date,
			Doctor:      req.Doctor,
			CreatedAt:   models.Timestamp(s.now()),
		}
		b.Records = append(b.Records, rec)
		return nil
	})
	if err != nil {
		return models.MedicalRecord{}, err
	}
	s.logger.Info().Int("record_id", rec.ID).Int("patient_id", rec.PatientID).Msg("medical record created")
	return rec, nil
}

func (s *MedicalRecordService) Update(ctx context.Context, id int, req models.UpdateMedicalRecordRequest) (models.MedicalRecord, error) {
	var rec models.MedicalRecord
	err := s.records.Update(ctx, func(b *database.Batch[models.MedicalRecord]) error {
		i := indexOf(b.Records, id)
		if i < 0 {
			return fmt.Errorf("medical record %d: %w", id, ErrRecordNotFound)
		}
		r := &b.Records[i]
		if req.RecordType != nil {
			r.RecordType = *req.RecordType
		}
		if req.Description != nil {
			r.Description = *req.Description
		}
		if req.Date != nil {
			r.Date = *req.Date
		}
		if req.Doctor != nil {
			r.Doctor = *req.Doctor
		}
		rec = *r
		return nil
	})
	return rec, err
}

func (s *MedicalRecordService) Delete(ctx context.Context, id int) error {
	return s.records.Update(ctx, func(b *database.Batch[models.MedicalRecord]) error {
		i := indexOf(b.Records, id)
		if i < 0 {
			return fmt.Errorf("medical record %d: %w", id, ErrRecordNotFound)
		}
		b.Records = removeAt(b.Records, i)
		return nil
	})
}

func (s *MedicalRecordService) List(ctx context.Context, patientID *int) ([]models.MedicalRecord, error) {
	all, err := s.records.Load(ctx)
	if err != nil || patientID == nil {
		return all, err
	}
	return filter(all, func(r models.MedicalRecord) bool { return r.PatientID == *patientID }), nil
}
