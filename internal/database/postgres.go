package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionRow stores one whole collection per row.
type collectionRow struct {
	Kind      string    `gorm:"primaryKey;size:64"`
	Data      string    `gorm:"type:jsonb;not null"`
	LastID    int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// PostgresBackend persists collections through gorm.
type PostgresBackend struct {
	db *gorm.DB
}

// NewPostgresBackend connects to uri and makes sure the collections table exists.
func NewPostgresBackend(uri string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return &PostgresBackend{db: db}, nil
}

// Migrate creates or updates the collections table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&collectionRow{})
}

func (p *PostgresBackend) Read(ctx context.Context, kind Kind) (Snapshot, error) {
	var row collectionRow
	err := p.db.WithContext(ctx).Where("kind = ?", string(kind)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Data: []byte(row.Data), LastID: row.LastID}, nil
}

func (p *PostgresBackend) Write(ctx context.Context, kind Kind, snap Snapshot) error {
	row := collectionRow{
		Kind:      string(kind),
		Data:      string(snap.Data),
		LastID:    snap.LastID,
		UpdatedAt: time.Now(),
	}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "last_id", "updated_at"}),
		}).
		Create(&row).Error
}

func (p *PostgresBackend) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
