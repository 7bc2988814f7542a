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

// AppointmentService books doctors. A slot is the (doctor_id, date, time)
// triple and may be booked once; date and time are compared as plain strings.
type AppointmentService struct {
	appointments *database.Collection[models.Appointment]
	logger       zerolog.Logger
	now          func() time.Time
}

func NewAppointmentService(store *database.Store, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: database.NewCollection[models.Appointment](store, database.KindAppointments),
		logger:       logger.With().Str("component", "appointments").Logger(),
		now:          time.Now,
	}
}

func (s *AppointmentService) Create(ctx context.Context, req models.CreateAppointmentRequest) (models.Appointment, error) {
	if err := validation.Required(&req); err != nil {
		return models.Appointment{}, err
	}
	doctor, ok := models.FindDoctor(req.DoctorID)
	if !ok {
		return models.Appointment{}, fmt.Errorf("book doctor %d: %w", req.DoctorID, ErrDoctorNotFound)
	}

	var appt models.Appointment
	err := s.appointments.Update(ctx, func(b *database.Batch[models.Appointment]) error {
		for _, a := range b.Records {
			if a.DoctorID == req.DoctorID && a.Date == req.Date && a.Time == req.Time {
				return fmt.Errorf("book doctor %d at %s %s: %w", req.DoctorID, req.Date, req.Time, ErrSlotTaken)
			}
		}
		appt = models.Appointment{
			ID:             b.NextID(),
			PatientID:      req.PatientID,
			DoctorID:       doctor.ID,
			DoctorName:     doctor.Name,
			Specialization: doctor.Specialization,
			Date:           req.Date,
			Time:           req.Time,
			Reason:         req.Reason,
			Status:         models.StatusScheduled,
			CreatedAt:      models.Timestamp(s.now()),
		}
		b.Records = append(b.Records, appt)
		return nil
	})
	if err != nil {
		return models.Appointment{}, err
	}
	s.logger.Info().
		Int("appointment_id", appt.ID).
		Int("doctor_id", appt.DoctorID).
		Str("date", appt.Date).
		Str("time", appt.Time).
		Msg("appointment booked")
	return appt, nil
}

// Update changes date, time, reason and status. Moving an appointment does
// not re-check the slot.
func (s *AppointmentService) Update(ctx context.Context, id int, req models.UpdateAppointmentRequest) (models.Appointment, error) {
	var appt models.Appointment
	err := s.appointments.Update(ctx, func(b *database.Batch[models.Appointment]) error {
		i := indexOf(b.Records, id)
		if i < 0 {
			return fmt.Errorf("appointment %d: %w", id, ErrAppointmentNotFound)
		}
		a := &b.Records[i]
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Time != nil {
			a.Time = *req.Time
		}
		if req.Reason != nil {
			a.Reason = *req.Reason
		}
		if req.Status != nil {
			a.Status = *req.Status
		}
		appt = *a
		return nil
	})
	return appt, err
}

func (s *AppointmentService) Delete(ctx context.Context, id int) error {
	err := s.appointments.Update(ctx, func(b *database.Batch[models.Appointment]) error {
		i := indexOf(b.Records, id)
		if i < 0 {
			return fmt.Errorf("appointment %d: %w", id, ErrAppointmentNotFound)
		}
		b.Records = removeAt(b.Records, i)
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int("appointment_id", id).Msg("appointment deleted")
	return nil
}

// List returns every appointment, or only the patient's when patientID is set.
func (s *AppointmentService) List(ctx context.Context, patientID *int) ([]models.Appointment, error) {
	all, err := s.appointments.Load(ctx)
	if err != nil || patientID == nil {
		return all, err
	}
	return filter(all, func(a models.Appointment) bool { return a.PatientID == *patientID }), nil
}
