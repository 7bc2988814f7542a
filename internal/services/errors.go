package services

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrIncorrectPassword   = errors.New("current password is incorrect")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrSlotTaken           = errors.New("time slot already booked")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrRecordNotFound      = errors.New("medical record not found")
	ErrEntryNotFound       = errors.New("period entry not found")
)
