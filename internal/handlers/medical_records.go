package handlers

import (
	"net/http"

	"medilink/internal/models"
	"medilink/internal/services"
	"medilink/internal/validation"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	records *services.MedicalRecordService
}

func NewMedicalRecordHandler(records *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{records: records}
}

func (h *MedicalRecordHandler) List(c *gin.Context) {
	userID, ok := userFilter(c)
	if !ok {
		return
	}
	records, err := h.records.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var req models.CreateMedicalRecordRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	rec, err := h.records.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Medical record created successfully", "record": rec})
}

func (h *MedicalRecordHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateMedicalRecordRequest
	if err := validation.Bind(c, &req); err != nil {
		respondError(c, err, "")
		return
	}

	rec, err := h.records.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medical record updated successfully", "record": rec})
}

func (h *MedicalRecordHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.records.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medical record deleted successfully"})
}
