package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// ErrNoToken is returned when a client is built without credentials.
var ErrNoToken = errors.New("discord token not configured")

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord responded with status %d", e.Status)
}

// Client defines the upstream operations the poll loop depends on.
type Client interface {
	// MessagesAfter lists up to limit messages newer than afterID, newest first.
	// An empty afterID returns the latest page.
	MessagesAfter(ctx context.Context, channelID, afterID string, limit int) ([]*discordgo.Message, error)
}

// NewClient creates a REST-only discordgo session based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}

	session, err := discordgo.New(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Client = &http.Client{Timeout: cfg.Timeout()}
	session.MaxRestRetries = 0
	if cfg.UserAgent != "" {
		session.UserAgent = cfg.UserAgent
	}

	return &sessionClient{session: session}, nil
}

type sessionClient struct {
	session *discordgo.Session
}

func (c *sessionClient) MessagesAfter(ctx context.Context, channelID, afterID string, limit int) ([]*discordgo.Message, error) {
	msgs, err := c.session.ChannelMessages(channelID, limit, "", afterID, "", discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil {
			return nil, &StatusError{Status: restErr.Response.StatusCode, Body: string(restErr.ResponseBody)}
		}
		return nil, fmt.Errorf("failed to list channel messages: %w", err)
	}
	return msgs, nil
}
