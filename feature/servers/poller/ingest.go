package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"server-relay/feature/servers/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// ErrIngest wraps every hand-off failure.
var ErrIngest = errors.New("ingest failed")

// Ingestor receives records produced by the poll loop.
type Ingestor interface {
	Ingest(ctx context.Context, rec models.Record) error
}

// IngestFunc adapts a function to the Ingestor interface.
type IngestFunc func(ctx context.Context, rec models.Record) error

// Ingest calls f.
func (f IngestFunc) Ingest(ctx context.Context, rec models.Record) error {
	return f(ctx, rec)
}

// Forwarder posts records as JSON to a remote ingestion endpoint.
type Forwarder struct {
	url     string
	timeout time.Duration
}

// NewForwarder creates a forwarder for url.
func NewForwarder(url string, timeout time.Duration) *Forwarder {
	return &Forwarder{url: url, timeout: timeout}
}

// Ingest sends rec and treats any non-2xx answer as a failure.
func (f *Forwarder) Ingest(ctx context.Context, rec models.Record) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrIngest, err)
	}

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}

	agent := fiber.Post(f.url).JSONEncoder(json.Marshal).JSON(rec).Timeout(timeout)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrIngest, errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d: %s", ErrIngest, code, body)
	}
	return nil
}
