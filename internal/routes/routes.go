// Package routes assembles the HTTP API.
package routes

import (
	"math/rand"
	"net/http"
	"strings"
	"time"

	"medilink/internal/config"
	"medilink/internal/handlers"
	"medilink/internal/middleware"
	"medilink/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Services bundles everything the handlers call into.
type Services struct {
	Users          *services.UserService
	Appointments   *services.AppointmentService
	MedicalRecords *services.MedicalRecordService
	PeriodTracker  *services.PeriodTrackerService
	Stats          *services.StatsService
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.Origins(); origins != nil {
		c.AllowOrigins = origins
	} else {
		c.AllowAllOrigins = true
	}
	return c
}

// idRoutes are the prefixes whose last segment must be an integer id.
var idRoutes = []string{
	"/api/appointments/",
	"/api/medical-records/",
	"/api/period-tracker/",
	"/api/user-stats/",
}

// badIDPath reports a path that only looks like an id route. Such paths are
// unknown routes whatever the method.
func badIDPath(path string) bool {
	for _, prefix := range idRoutes {
		seg, ok := strings.CutPrefix(path, prefix)
		if !ok || seg == "" || strings.Contains(seg, "/") {
			continue
		}
		if _, ok := handlers.ParseID(seg); !ok {
			return true
		}
	}
	return false
}

// SetupRouter builds the gin engine with every route of the API.
func SetupRouter(cfg *config.Config, svc Services, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		cors.New(corsConfig(cfg)),
	)

	users := handlers.NewUserHandler(svc.Users)
	appointments := handlers.NewAppointmentHandler(svc.Appointments)
	records := handlers.NewMedicalRecordHandler(svc.MedicalRecords)
	tracker := handlers.NewPeriodTrackerHandler(svc.PeriodTracker)
	assistant := handlers.NewAssistantHandler(svc.Stats, rand.Perm)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MedilinkPro API is running"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", users.Register)
		api.POST("/login", users.Login)
		api.PUT("/profile", users.UpdateProfile)
		api.POST("/profile/medical", users.SaveMedicalInfo)
		api.POST("/profile/change-password", users.ChangePassword)

		api.GET("/appointments", appointments.List)
		api.POST("/appointments", appointments.Create)
		api.PUT("/appointments/:id", appointments.Update)
		api.DELETE("/appointments/:id", appointments.Delete)

		api.GET("/medical-records", records.List)
		api.POST("/medical-records", records.Create)
		api.PUT("/medical-records/:id", records.Update)
		api.DELETE("/medical-records/:id", records.Delete)

		api.GET("/period-tracker", tracker.List)
		api.POST("/period-tracker", tracker.Add)
		api.DELETE("/period-tracker/:id", tracker.Delete)

		api.POST("/ai/recommend-doctors", assistant.RecommendDoctors)
		api.POST("/ai/chat", assistant.Chat)
		api.GET("/doctors", assistant.Doctors)
		api.GET("/user-stats/:user_id", assistant.UserStats)
		api.GET("/health-tips", assistant.HealthTips)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		if badIDPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	return r
}
