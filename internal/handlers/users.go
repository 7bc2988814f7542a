package handlers

import (
	"net/http"

	"medilink/internal/models"
	"medilink/internal/services"
	"medilink/internal/validation"

	"github.com/gin-gonic/gin"
)

// UserHandler serves registration, login and profile routes.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	view := user.View()
	view.CreatedAt = ""
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": user.ID,
		"user":    view,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "Email and password are required")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user.View()})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "User ID is required")
		return
	}

	user, err := h.users.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user.View()})
}

// SaveMedicalInfo checks the caller named a user and echoes the payload
// back. Nothing is stored.
func (h *UserHandler) SaveMedicalInfo(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	if err := validation.RequiredFields(payload, "user_id"); err != nil {
		respondError(c, err, "User ID is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Medical information saved successfully",
		"medical_info": payload,
	})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "User ID, current password and new password are required")
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
