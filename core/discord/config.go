package discord

import "time"

// Config holds configuration for the upstream message source.
type Config struct {
	// Token is sent verbatim in the Authorization header (prefix "Bot " for bot accounts).
	Token string `mapstructure:"token" default:""`
	// ChannelID is the channel whose messages are polled.
	ChannelID string `mapstructure:"channel_id" default:""`
	// TimeoutSeconds bounds a single list-messages call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5" validate:"gte=0"`
	// UserAgent overrides the library's default user agent when set.
	UserAgent string `mapstructure:"user_agent" default:"DiscordBot (https://github.com/bwmarrin/discordgo, v0.28.1) server-relay"`
}

// Enabled reports whether enough configuration is present to poll.
func (c Config) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// Timeout returns the per-call timeout, defaulting to five seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
