package handlers

import (
	"net/http"

	"medilink/internal/models"
	"medilink/internal/services"
	"medilink/internal/validation"

	"github.com/gin-gonic/gin"
)

type PeriodTrackerHandler struct {
	tracker *services.PeriodTrackerService
}

func NewPeriodTrackerHandler(tracker *services.PeriodTrackerService) *PeriodTrackerHandler {
	return &PeriodTrackerHandler{tracker: tracker}
}

func (h *PeriodTrackerHandler) List(c *gin.Context) {
	userID, ok := userFilter(c)
	if !ok {
		return
	}
	entries, err := h.tracker.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *PeriodTrackerHandler) Add(c *gin.Context) {
	var req models.CreateCycleEntryRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	entry, err := h.tracker.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Period data added successfully", "entry": entry})
}

func (h *PeriodTrackerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.tracker.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Period entry deleted successfully"})
}
