package poller

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"server-relay/core/discord"
	"server-relay/feature/servers/models"
	"server-relay/feature/servers/parser"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const defaultFetchTimeout = 5 * time.Second

// Result summarises one poll cycle.
type Result struct {
	Fetched  int
	Ingested int
	Skipped  int
	Failed   int
}

// Poller fetches new channel messages, extracts records and hands them off.
type Poller struct {
	client    discord.Client
	channelID string
	extractor *parser.Extractor
	ingestor  Ingestor
	cfg       Config
	logger    *zap.Logger

	fetchTimeout time.Duration

	mu     sync.Mutex
	cursor string
}

// Option configures a Poller.
type Option func(*Poller)

// WithCursor starts polling after the given message id instead of at the
// latest page.
func WithCursor(messageID string) Option {
	return func(p *Poller) {
		p.cursor = messageID
	}
}

// WithFetchTimeout bounds each upstream call.
func WithFetchTimeout(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.fetchTimeout = d
		}
	}
}

// New creates a poller for channelID.
func New(client discord.Client, channelID string, ingestor Ingestor, cfg Config, logger *zap.Logger, opts ...Option) *Poller {
	p := &Poller{
		client:       client,
		channelID:    channelID,
		extractor:    parser.NewExtractor(parser.Options{LooseContentIDs: cfg.LooseContentIDs}),
		ingestor:     ingestor,
		cfg:          cfg,
		logger:       logger,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Cursor returns the id of the last processed message.
func (p *Poller) Cursor() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Run polls until ctx is cancelled. Failures are logged and retried after
// the configured interval.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("Poller started",
		zap.String("channel_id", p.channelID),
		zap.Duration("interval", p.cfg.Interval()),
	)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped", zap.String("cursor", p.Cursor()))
			return nil
		case <-timer.C:
		}

		res, err := p.PollOnce(ctx)
		if err != nil && ctx.Err() == nil {
			p.logFetchError(err)
		} else if res.Fetched > 0 {
			p.logger.Debug("Poll cycle finished",
				zap.Int("fetched", res.Fetched),
				zap.Int("ingested", res.Ingested),
				zap.Int("skipped", res.Skipped),
				zap.Int("failed", res.Failed),
				zap.String("cursor", p.Cursor()),
			)
		}

		timer.Reset(p.cfg.Interval())
	}
}

// PollOnce runs a single cycle. The returned error only reports fetch
// failures; hand-off failures are logged and counted in Result.Failed.
func (p *Poller) PollOnce(ctx context.Context) (Result, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	msgs, err := p.client.MessagesAfter(fetchCtx, p.channelID, p.Cursor(), p.cfg.PageLimit)
	cancel()
	if err != nil {
		return Result{}, err
	}

	// Upstream returns newest first; merges must be applied oldest first.
	ordered := slices.Clone(msgs)
	slices.Reverse(ordered)

	res := Result{Fetched: len(ordered)}
	for _, msg := range ordered {
		if msg == nil {
			continue
		}
		switch p.process(ctx, msg) {
		case outcomeSkipped:
			res.Skipped++
		case outcomeIngested:
			res.Ingested++
		case outcomeFailed:
			res.Failed++
		}
		p.advance(msg.ID)
	}
	return res, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeIngested
	outcomeFailed
)

func (p *Poller) process(ctx context.Context, msg *discordgo.Message) outcome {
	extracted := p.extractor.Extract(msg)
	if !extracted.Informative() {
		return outcomeSkipped
	}

	var author string
	if msg.Author != nil {
		author = msg.Author.Username
	}
	rec := models.NewRecord(msg.ID, author, extracted)

	ingestCtx, cancel := context.WithTimeout(ctx, p.cfg.ForwardTimeout())
	defer cancel()

	if err := p.ingestor.Ingest(ingestCtx, rec); err != nil {
		p.logger.Warn("Failed to hand off record", append(recordFields(rec), zap.Error(err))...)
		return outcomeFailed
	}

	p.logger.Debug("Record handed off", recordFields(rec)...)
	return outcomeIngested
}

func (p *Poller) advance(messageID string) {
	if messageID == "" {
		return
	}
	p.mu.Lock()
	p.cursor = messageID
	p.mu.Unlock()
}

func (p *Poller) logFetchError(err error) {
	var statusErr *discord.StatusError
	if errors.As(err, &statusErr) {
		p.logger.Error("Failed to fetch messages",
			zap.Int("status", statusErr.Status),
			zap.String("body", statusErr.Body),
		)
		return
	}
	p.logger.Error("Failed to fetch messages", zap.Error(err))
}

func recordFields(rec models.Record) []zap.Field {
	return []zap.Field{
		zap.String("id", rec.ID),
		zap.String("author", rec.Author),
		zap.String("server_name", rec.ServerName),
		zap.Int64("money_per_sec", rec.MoneyPerSec.Int64()),
		zap.String("players", rec.Players),
		zap.String("job_id", rec.JobID),
	}
}
