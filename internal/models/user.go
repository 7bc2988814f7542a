package models

import "time"

// TimestampLayout is the layout every created_at/updated_at/last_login value
// is written with.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp formats t for storage.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// User defines the stored account record. Password is whatever the
// configured hasher produced.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	LastLogin string `json:"last_login,omitempty"`
}

func (u User) RecordID() int { return u.ID }

// UserView is the shape of a user echoed back to clients. It never carries
// the password.
type UserView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		DOB:       u.DOB,
		Gender:    u.Gender,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries only the fields the client sent; nil means
// leave the stored value alone.
type UpdateProfileRequest struct {
	UserID  int     `json:"user_id" binding:"required"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	DOB     *string `json:"dob"`
	Gender  *string `json:"gender"`
	Address *string `json:"address"`
}

type ChangePasswordRequest struct {
	UserID          int    `json:"user_id" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
