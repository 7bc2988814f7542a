package models

type MedicalRecord struct {
	ID          int    `json:"id"`
	PatientID   int    `json:"patient_id"`
	RecordType  string `json:"record_type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Doctor      string `json:"doctor"`
	CreatedAt   string `json:"created_at"`
}

func (r MedicalRecord) RecordID() int { return r.ID }

type CreateMedicalRecordRequest struct {
	PatientID   int    `json:"patient_id" binding:"required"`
	RecordType  string `json:"record_type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Doctor      string `json:"doctor"`
}

type UpdateMedicalRecordRequest struct {
	RecordType  *string `json:"record_type"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Doctor      *string `json:"doctor"`
}
