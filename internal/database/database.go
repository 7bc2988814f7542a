package database

import (
	"context"
	"errors"
	"fmt"

	"medilink/internal/config"

	"github.com/rs/zerolog"
)

// Kind names one persisted collection.
type Kind string

const (
	KindUsers          Kind = "users"
	KindAppointments   Kind = "appointments"
	KindMedicalRecords Kind = "medical_records"
	KindPeriodTracker  Kind = "period_tracker"
)

// Kinds lists every collection the application persists.
var Kinds = []Kind{KindUsers, KindAppointments, KindMedicalRecords, KindPeriodTracker}

// ErrStorageUnavailable is returned when a collection exists but cannot be
// read or decoded.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Snapshot is the raw persisted form of a collection: a JSON array plus the
// highest id ever handed out for it.
type Snapshot struct {
	Data   []byte
	LastID int
}

// Backend reads and writes whole collections. A collection that was never
// written reads as an empty Snapshot without error.
type Backend interface {
	Read(ctx context.Context, kind Kind) (Snapshot, error)
	Write(ctx context.Context, kind Kind, snap Snapshot) error
	Close() error
}

// Open builds the backend selected by cfg.StorageDriver and wraps it in a Store.
func Open(cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.StorageDriver {
	case config.DriverFile:
		backend, err = NewFileBackend(cfg.DataDir)
	case config.DriverMemory:
		backend = NewMemoryBackend()
	case config.DriverPostgres:
		backend, err = NewPostgresBackend(cfg.PostgresURI)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}
	logger.Info().Str("driver", cfg.StorageDriver).Msg("storage opened")
	return NewStore(backend, logger), nil
}
