package handlers

import (
	"net/http"

	"medilink/internal/assistant"
	"medilink/internal/models"
	"medilink/internal/services"

	"github.com/gin-gonic/gin"
)

// tipsPerRequest is how many health tips GET /api/health-tips returns.
const tipsPerRequest = 3

// AssistantHandler serves the doctor directory, the keyword assistant,
// health tips and dashboard stats.
type AssistantHandler struct {
	stats *services.StatsService
	perm  func(int) []int
}

// NewAssistantHandler wires the handler. perm orders health tips and is
// normally math/rand.Perm.
func NewAssistantHandler(stats *services.StatsService, perm func(int) []int) *AssistantHandler {
	return &AssistantHandler{stats: stats, perm: perm}
}

func (h *AssistantHandler) Doctors(c *gin.Context) {
	c.JSON(http.StatusOK, models.Doctors())
}

func (h *AssistantHandler) RecommendDoctors(c *gin.Context) {
	var req models.RecommendDoctorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	c.JSON(http.StatusOK, assistant.RecommendDoctors(models.Doctors(), req.Specialization, req.Symptoms))
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{Response: assistant.ChatReply(req.Message)})
}

func (h *AssistantHandler) HealthTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": assistant.SampleTips(tipsPerRequest, h.perm)})
}

func (h *AssistantHandler) UserStats(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	stats, err := h.stats.ForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
