package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the ingestion and query endpoints listen.
	Port string `mapstructure:"port" default:"5000" validate:"required,numeric"`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"10" validate:"gte=0"`
	// BodyLimitBytes caps the ingestion body size.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"1048576" validate:"gte=0"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ReadTimeout returns the read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}
