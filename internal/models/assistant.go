package models

type RecommendDoctorsRequest struct {
	Symptoms       []string `json:"symptoms"`
	Specialization string   `json:"specialization"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// MedicalInfoRequest is accepted by the profile medical endpoint. Only
// user_id is checked; every other field is echoed back untouched.
type MedicalInfoRequest struct {
	UserID int `json:"user_id" binding:"required"`
}
