package history

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"server-relay/core/database"
	"server-relay/feature/servers/models"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Repository appends and reads sightings.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Migrate creates or updates the sightings table and checks its columns.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Sighting{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Sighting{}.TableName(), err)
	}
	return r.Verify()
}

// Verify fails when the sightings table lacks a required column.
func (r *Repository) Verify() error {
	missing, err := database.MissingColumns(r.db, Sighting{}.TableName(), columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", Sighting{}.TableName(), strings.Join(missing, ", "))
	}
	return nil
}

// Record implements servers.Recorder. Strings longer than their column are
// cut to fit.
func (r *Repository) Record(ctx context.Context, key string, rec models.Record) error {
	s := Sighting{
		Key:         truncate(key, keySize),
		JobID:       truncate(rec.JobID, jobIDSize),
		ServerName:  truncate(rec.ServerName, serverNameSize),
		MoneyPerSec: rec.MoneyPerSec.Int64(),
		Players:     truncate(rec.Players, playersSize),
		Author:      truncate(rec.Author, authorSize),
		MessageID:   truncate(rec.ID, messageIDSize),
		SeenAt:      r.now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return fmt.Errorf("failed to insert sighting: %w", err)
	}
	return nil
}

// List returns up to limit sightings for jobID, newest first.
func (r *Repository) List(ctx context.Context, jobID string, limit int) ([]Sighting, error) {
	limit = ClampLimit(limit)

	var out []Sighting
	err := r.db.WithContext(ctx).
		Where("job_id = ?", truncate(jobID, jobIDSize)).
		Order("seen_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sightings: %w", err)
	}
	return out, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ClampLimit applies the default and maximum page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
