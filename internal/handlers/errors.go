package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"medilink/internal/database"
	"medilink/internal/services"
	"medilink/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgNotFound      = "Endpoint not found"
	msgInternal      = "Internal server error"
	msgInvalidBody   = "Invalid request body"
	msgInvalidUserID = "Invalid user ID"
)

var errorStatus = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrDuplicateEmail, http.StatusBadRequest, "User with this email already exists"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{services.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{services.ErrIncorrectPassword, http.StatusBadRequest, "Current password is incorrect"},
	{services.ErrDoctorNotFound, http.StatusNotFound, "Doctor not found"},
	{services.ErrSlotTaken, http.StatusBadRequest, "This time slot is already booked. Please choose another time."},
	{services.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{services.ErrRecordNotFound, http.StatusNotFound, "Medical record not found"},
	{services.ErrEntryNotFound, http.StatusNotFound, "Period entry not found"},
	{validation.ErrInvalidBody, http.StatusBadRequest, msgInvalidBody},
	{database.ErrStorageUnavailable, http.StatusServiceUnavailable, "Storage unavailable"},
}

// respondError writes the status and message err maps to. When missing is
// set it replaces the generic "Missing required field" message.
func respondError(c *gin.Context, err error, missing string) {
	var mf *validation.MissingFieldError
	if errors.As(err, &mf) {
		msg := mf.Error()
		if missing != "" {
			msg = missing
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			if e.status >= http.StatusInternalServerError {
				_ = c.Error(err)
			}
			c.JSON(e.status, gin.H{"error": e.message})
			return
		}
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}

// ParseID accepts an unsigned decimal id segment. Signs, spaces and
// out-of-range values are rejected.
func ParseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// pathID parses an integer path parameter. Anything else is treated as an
// unknown route.
func pathID(c *gin.Context, name string) (int, bool) {
	id, ok := ParseID(c.Param(name))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		return 0, false
	}
	return id, true
}

// userFilter reads the optional user_id query parameter. A nil result means
// no filter.
func userFilter(c *gin.Context) (*int, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidUserID})
		return nil, false
	}
	return &id, true
}
