package handlers

import (
	"net/http"

	"medilink/internal/models"
	"medilink/internal/services"
	"medilink/internal/validation"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointments *services.AppointmentService
}

func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := userFilter(c)
	if !ok {
		return
	}
	appts, err := h.appointments.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	appt, err := h.appointments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment created successfully", "appointment": appt})
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateAppointmentRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	appt, err := h.appointments.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully", "appointment": appt})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
