package archive

import (
	"context"
	"time"

	"server-relay/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const bucketCheckTimeout = 10 * time.Second

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg      Config
	storage  storage.Config
	exporter *Exporter
	handler  *Handler
}

// NewFeature creates the archive feature. A nil client disables it.
func NewFeature(cfg Config, storageCfg storage.Config, client storage.Client, source Source, logger *zap.Logger) *Feature {
	f := &Feature{cfg: cfg, storage: storageCfg}
	if client == nil {
		return f
	}
	f.exporter = NewExporter(client, storageCfg.Bucket, cfg.Prefix, source, logger)
	f.handler = NewHandler(f.exporter)
	return f
}

// Exporter returns the exporter, or nil when the feature is disabled.
func (f *Feature) Exporter() *Exporter {
	if !f.IsEnabled() {
		return nil
	}
	return f.exporter
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled && f.exporter != nil
}

// Load creates the bucket if needed and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	ctx, cancel := context.WithTimeout(context.Background(), bucketCheckTimeout)
	defer cancel()

	if err := storage.EnsureBucket(ctx, f.exporter.client, f.storage.Bucket, f.storage.Region); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
