package services

import (
	"context"
	"fmt"
	"time"

	"medilink/internal/database"
	"medilink/internal/models"
	"medilink/internal/utils"
	"medilink/internal/validation"

	"github.com/rs/zerolog"
)

// UserService manages accounts. Emails are unique by exact, case-sensitive
// comparison.
type UserService struct {
	users  *database.Collection[models.User]
	hasher utils.PasswordHasher
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(store *database.Store, hasher utils.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  database.NewCollection[models.User](store, database.KindUsers),
		hasher: hasher,
		logger: logger.With().Str("component", "users").Logger(),
		now:    time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := validation.Required(&req); err != nil {
		return models.User{}, err
	}
	password, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = s.users.Update(ctx, func(b *database.Batch[models.User]) error {
		for _, u := range b.Records {
			if u.Email == req.Email {
				return fmt.Errorf("register %q: %w", req.Email, ErrDuplicateEmail)
			}
		}
		ts := models.Timestamp(s.now())
		user = models.User{
			ID:        b.NextID(),
			Name:      req.Name,
			Email:     req.Email,
			Password:  password,
			DOB:       req.DOB,
			Gender:    req.Gender,
			Phone:     req.Phone,
			Address:   req.Address,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		b.Records = append(b.Records, user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info().Int("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate returns the user whose email and password both match and
// records the login time.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	err := s.users.Update(ctx, func(b *database.Batch[models.User]) error {
		for i := range b.Records {
			u := &b.Records[i]
			if u.Email != email || !s.hasher.Check(password, u.Password) {
				continue
			}
			u.LastLogin = models.Timestamp(s.now())
			user = *u
			return nil
		}
		return fmt.Errorf("login %q: %w", email, ErrInvalidCredentials)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update overwrites the profile fields present in req.
func (s *UserService) Update(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	if err := validation.Required(&req); err != nil {
		return models.User{}, err
	}
	var user models.User
	err := s.users.Update(ctx, func(b *database.Batch[models.User]) error {
		i := indexOf(b.Records, req.UserID)
		if i < 0 {
			return fmt.Errorf("user %d: %w", req.UserID, ErrUserNotFound)
		}
		u := &b.Records[i]
		for _, f := range []struct {
			src *string
			dst *string
		}{
			{req.Name, &u.Name},
			{req.Email, &u.Email},
			{req.Phone, &u.Phone},
			{req.DOB, &u.DOB},
			{req.Gender, &u.Gender},
			{req.Address, &u.Address},
		} {
			if f.src != nil {
				*f.dst = *f.src
			}
		}
		u.UpdatedAt = models.Timestamp(s.now())
		user = *u
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if err := validation.Required(&req); err != nil {
		return err
	}
	password, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	err = s.users.Update(ctx, func(b *database.Batch[models.User]) error {
		i := indexOf(b.Records, req.UserID)
		if i < 0 {
			return fmt.Errorf("user %d: %w", req.UserID, ErrUserNotFound)
		}
		u := &b.Records[i]
		if !s.hasher.Check(req.CurrentPassword, u.Password) {
			return fmt.Errorf("change password for user %d: %w", req.UserID, ErrIncorrectPassword)
		}
		u.Password = password
		u.UpdatedAt = models.Timestamp(s.now())
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int("user_id", req.UserID).Msg("password changed")
	return nil
}
