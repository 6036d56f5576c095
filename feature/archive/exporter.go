package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"time"

	"server-relay/core/storage"
	"server-relay/feature/servers/models"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const latestObject = "latest.json"

// ErrNoSnapshot is returned when no snapshot has been uploaded yet.
var ErrNoSnapshot = errors.New("no snapshot exported yet")

// Source provides the entities to export.
type Source interface {
	Snapshot() []models.Entity
}

// Result describes one export.
type Result struct {
	Objects    []string  `json:"objects"`
	Entities   int       `json:"entities"`
	ExportedAt time.Time `json:"exportedAt"`
}

// Exporter uploads JSON snapshots of the live entities.
type Exporter struct {
	client storage.Client
	bucket string
	prefix string
	source Source
	logger *zap.Logger
	now    func() time.Time
	group  singleflight.Group
}

// NewExporter creates an exporter writing to bucket under prefix.
func NewExporter(client storage.Client, bucket, prefix string, source Source, logger *zap.Logger) *Exporter {
	return &Exporter{
		client: client,
		bucket: bucket,
		prefix: prefix,
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// LatestKey returns the object key of the most recent snapshot.
func (e *Exporter) LatestKey() string {
	return path.Join(e.prefix, latestObject)
}

// Export uploads the current snapshot. Concurrent calls share one upload.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	v, err, shared := e.group.Do("export", func() (any, error) {
		return e.export(ctx)
	})
	if err != nil {
		return Result{}, err
	}
	if shared {
		e.logger.Debug("Joined in-flight export")
	}
	return v.(Result), nil
}

func (e *Exporter) export(ctx context.Context) (Result, error) {
	entities := e.source.Snapshot()
	data, err := json.Marshal(entities)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	now := e.now().UTC()
	keys := []string{
		path.Join(e.prefix, strconv.FormatInt(now.Unix(), 10)+".json"),
		e.LatestKey(),
	}
	for _, key := range keys {
		_, err := e.client.PutObject(ctx, e.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return Result{}, fmt.Errorf("failed to upload %s: %w", key, err)
		}
	}

	e.logger.Info("Snapshot exported",
		zap.Int("entities", len(entities)),
		zap.Int("bytes", len(data)),
		zap.String("bucket", e.bucket),
	)
	return Result{Objects: keys, Entities: len(entities), ExportedAt: now}, nil
}

// Latest returns the body of the most recent snapshot. It returns
// ErrNoSnapshot when nothing was exported yet.
func (e *Exporter) Latest(ctx context.Context) ([]byte, error) {
	obj, err := e.client.GetObject(ctx, e.bucket, e.LatestKey(), minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapNotFound(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return data, nil
}

func wrapNotFound(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNoSnapshot
	}
	return fmt.Errorf("failed to read snapshot: %w", err)
}
