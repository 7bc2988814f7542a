package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"medilink/internal/config"
	"medilink/internal/database"
	"medilink/internal/routes"
	"medilink/internal/services"
	"medilink/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "medilink",
		Short:        "MedilinkPro clinic API server",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "optional YAML config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	file, _ := cmd.Flags().GetString("config")
	if file == "" {
		return config.LoadConfig()
	}
	return config.LoadConfig(file)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServer(cfg, newLogger(cfg))
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres collections table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
			if err != nil {
				return fmt.Errorf("connect to postgres: %w", err)
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}

func runServer(cfg *config.Config, logger zerolog.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := database.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		return err
	}

	router := routes.SetupRouter(cfg, routes.Services{
		Users:          services.NewUserService(store, hasher, logger),
		Appointments:   services.NewAppointmentService(store, logger),
		MedicalRecords: services.NewMedicalRecordService(store, logger),
		PeriodTracker:  services.NewPeriodTrackerService(store, logger),
		Stats:          services.NewStatsService(store, logger),
	}, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.ListenPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.ListenPort).Str("environment", cfg.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info().Msg("server exited")
	return nil
}
