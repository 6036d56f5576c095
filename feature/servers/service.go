package servers

import (
	"context"
	"time"

	"server-relay/feature/servers/models"
	"server-relay/feature/servers/store"

	"go.uber.org/zap"
)

// Recorder receives every accepted record together with its identity key.
type Recorder interface {
	Record(ctx context.Context, key string, rec models.Record) error
}

// Service owns the entity store and applies the configured TTL.
type Service struct {
	store    *store.Store
	ttl      time.Duration
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a new servers service.
func NewService(st *store.Store, cfg store.Config, logger *zap.Logger) *Service {
	return &Service{
		store:  st,
		ttl:    cfg.TTL(),
		logger: logger,
	}
}

// SetRecorder attaches an optional sighting recorder.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// Ingest stores one record. It implements poller.Ingestor and never fails.
func (s *Service) Ingest(ctx context.Context, rec models.Record) error {
	s.IngestAll(ctx, rec)
	return nil
}

// IngestAll stores records in order and returns the total entity count.
func (s *Service) IngestAll(ctx context.Context, records ...models.Record) int {
	keys, count := s.store.UpsertKeys(records...)
	if s.recorder == nil {
		return count
	}
	for i, key := range keys {
		if err := s.recorder.Record(ctx, key, records[i]); err != nil {
			s.logger.Warn("Failed to record sighting", zap.String("key", key), zap.Error(err))
		}
	}
	return count
}

// Snapshot returns live entities, most recently updated first.
func (s *Service) Snapshot() []models.Entity {
	return s.store.Snapshot(s.ttl)
}

// Lookup returns the live entity stored under key.
func (s *Service) Lookup(key string) (models.Entity, bool) {
	return s.store.Get(key, s.ttl)
}

// Count returns the number of stored entities, including expired ones not
// yet swept.
func (s *Service) Count() int {
	return s.store.Len()
}

// Sweep evicts expired entities.
func (s *Service) Sweep() int {
	removed := s.store.Sweep(s.ttl)
	if removed > 0 {
		s.logger.Debug("Swept expired entities",
			zap.Int("removed", removed),
			zap.Int("remaining", s.store.Len()),
		)
	}
	return removed
}
