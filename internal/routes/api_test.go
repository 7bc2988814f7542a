package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"medilink/internal/config"
	"medilink/internal/database"
	"medilink/internal/services"
	"medilink/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServices(store *database.Store) Services {
	logger := zerolog.Nop()
	return Services{
		Users:          services.NewUserService(store, utils.PlainHasher{}, logger),
		Appointments:   services.NewAppointmentService(store, logger),
		MedicalRecords: services.NewMedicalRecordService(store, logger),
		PeriodTracker:  services.NewPeriodTrackerService(store, logger),
		Stats:          services.NewStatsService(store, logger),
	}
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := database.NewStore(database.NewMemoryBackend(), zerolog.Nop())
	return SetupRouter(&config.Config{AllowedOrigins: "*"}, newServices(store), zerolog.Nop())
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var asha = map[string]any{
	"name":     "Asha",
	"email":    "asha@example.com",
	"password": "secret",
	"dob":      "1990-01-01",
	"gender":   "female",
	"phone":    "555-0100",
}

func TestHome(t *testing.T) {
	w := do(t, newRouter(t), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"MedilinkPro API is running"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/register", asha)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, float64(1), body["user_id"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "", user["address"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "created_at")

	w = do(t, r, http.MethodPost, "/api/register", asha)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User with this email already exists"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/login", map[string]any{"email": "asha@example.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/login", map[string]any{"email": "asha@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/login", map[string]any{"email": "asha@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Login successful", body["message"])
	user = body["user"].(map[string]any)
	assert.Contains(t, user, "created_at")
	assert.NotContains(t, user, "password")
}

func TestRegisterMissingField(t *testing.T) {
	r := newRouter(t)
	req := map[string]any{"name": "Asha", "email": "a@example.com", "password": "x"}
	w := do(t, r, http.MethodPost, "/api/register", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required field: dob"}`, w.Body.String())
}

func TestMalformedJSON(t *testing.T) {
	w := do(t, newRouter(t), http.MethodPost, "/api/appointments", `{"patient_id":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestProfileRoutes(t *testing.T) {
	r := newRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/register", asha).Code)

	w := do(t, r, http.MethodPut, "/api/profile", map[string]any{"name": "Bo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User ID is required"}`, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/profile", map[string]any{"user_id": 9, "name": "Bo"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/profile", map[string]any{"user_id": 1, "address": "1 Main St"})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "1 Main St", user["address"])
	assert.Equal(t, "Asha", user["name"])

	w = do(t, r, http.MethodPost, "/api/profile/medical", map[string]any{"user_id": 1, "blood_type": "O+"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Medical information saved successfully","medical_info":{"user_id":1,"blood_type":"O+"}}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/profile/medical", map[string]any{"blood_type": "O+"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User ID is required"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/profile/change-password", map[string]any{"user_id": 1, "current_password": "nope", "new_password": "n"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Current password is incorrect"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/profile/change-password", map[string]any{"user_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User ID, current password and new password are required"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/profile/change-password", map[string]any{"user_id": 1, "current_password": "secret", "new_password": "n"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Password changed successfully"}`, w.Body.String())
}

func booking(doctorID int, tm string) map[string]any {
	return map[string]any{"patient_id": 1, "doctor_id": doctorID, "date": "2030-01-15", "time": tm, "reason": "checkup"}
}

func TestAppointmentRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/appointments", booking(2, "10:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appt := decode(t, w)["appointment"].(map[string]any)
	assert.Equal(t, "Dr. Michael Chen", appt["doctor_name"])
	assert.Equal(t, "Scheduled", appt["status"])

	w = do(t, r, http.MethodPost, "/api/appointments", booking(2, "10:00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"This time slot is already booked. Please choose another time."}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/appointments", booking(42, "10:00"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Doctor not found"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/appointments?user_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = do(t, r, http.MethodGet, "/api/appointments?user_id=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = do(t, r, http.MethodGet, "/api/appointments?user_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid user ID"}`, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/appointments/1", map[string]any{"status": "Completed", "doctor_id": 5})
	require.Equal(t, http.StatusOK, w.Code)
	appt = decode(t, w)["appointment"].(map[string]any)
	assert.Equal(t, "Completed", appt["status"])
	assert.Equal(t, float64(2), appt["doctor_id"])

	w = do(t, r, http.MethodPut, "/api/appointments/9", map[string]any{"status": "Completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Appointment not found"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/appointments/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/appointments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Appointment deleted successfully"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/appointments", booking(2, "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["appointment"].(map[string]any)["id"])
}

func TestMedicalRecordRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/medical-records", map[string]any{"patient_id": 1, "record_type": "Lab"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required field: description"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/medical-records", map[string]any{
		"patient_id": 1, "record_type": "Lab", "description": "Blood panel", "date": "2025-02-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	rec := decode(t, w)["record"].(map[string]any)
	assert.Equal(t, "", rec["doctor"])

	w = do(t, r, http.MethodPut, "/api/medical-records/1", map[string]any{"doctor": "Dr. Sarah Johnson"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Medical record updated successfully", decode(t, w)["message"])

	w = do(t, r, http.MethodGet, "/api/medical-records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Dr. Sarah Johnson", list[0]["doctor"])

	w = do(t, r, http.MethodDelete, "/api/medical-records/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodDelete, "/api/medical-records/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Medical record not found"}`, w.Body.String())
}

func TestPeriodTrackerRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/period-tracker", map[string]any{"user_id": 1, "start_date": "2025-03-01", "end_date": "2025-03-05"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Period data added successfully", body["message"])
	entry := body["entry"].(map[string]any)
	assert.Equal(t, []any{}, entry["symptoms"])
	assert.Equal(t, "", entry["notes"])

	w = do(t, r, http.MethodGet, "/api/period-tracker?user_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = do(t, r, http.MethodDelete, "/api/period-tracker/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Period entry deleted successfully"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/period-tracker/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Period entry not found"}`, w.Body.String())
}

func TestAssistantRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 8)

	w = do(t, r, http.MethodPost, "/api/ai/recommend-doctors", map[string]any{"specialization": "cardiology"})
	require.Equal(t, http.StatusOK, w.Code)
	docs := decodeList(t, w)
	require.Len(t, docs, 1)
	assert.Equal(t, "Dr. Sarah Johnson", docs[0]["name"])

	w = do(t, r, http.MethodPost, "/api/ai/recommend-doctors", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)

	w = do(t, r, http.MethodPost, "/api/ai/chat", map[string]any{"message": "Hello there"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"Hello! How can I assist you with your health concerns today?"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/health-tips", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tips struct {
		Tips []string `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tips))
	require.Len(t, tips.Tips, 3)
	assert.NotEqual(t, tips.Tips[0], tips.Tips[1])
	assert.NotEqual(t, tips.Tips[1], tips.Tips[2])
	assert.NotEqual(t, tips.Tips[0], tips.Tips[2])

	w = do(t, r, http.MethodGet, "/api/user-stats/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_appointments":0,"upcoming_appointments":0,"total_records":0,"total_cycles":0}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/user-stats/me", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())

	w = do(t, r, http.MethodPatch, "/api/doctors", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

func TestNonIntegerIDIsUnknownRoute(t *testing.T) {
	r := newRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/appointments", booking(1, "09:00")).Code)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/appointments/abc"},
		{http.MethodGet, "/api/medical-records/x1"},
		{http.MethodPost, "/api/period-tracker/abc"},
		{http.MethodPost, "/api/user-stats/me"},
		{http.MethodDelete, "/api/appointments/-1"},
		{http.MethodPut, "/api/appointments/+1"},
		{http.MethodDelete, "/api/period-tracker/1.5"},
		{http.MethodGet, "/api/user-stats/-1"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(t, r, tc.method, tc.path, map[string]any{"status": "Completed"})
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())
		})
	}

	// an integer id on a route without that method is still 405
	w := do(t, r, http.MethodGet, "/api/appointments/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/appointments?user_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
}

func TestCorruptStorageAnswers503(t *testing.T) {
	dir := t.TempDir()
	backend, err := database.NewFileBackend(dir)
	require.NoError(t, err)
	store := database.NewStore(backend, zerolog.Nop())
	r := SetupRouter(&config.Config{}, newServices(store), zerolog.Nop())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "appointments.json"), []byte("{oops"), 0o644))

	w := do(t, r, http.MethodGet, "/api/appointments", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Storage unavailable"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/appointments", booking(1, "09:00"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
