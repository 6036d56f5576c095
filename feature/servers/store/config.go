package store

import "time"

// Config holds the entity expiry settings.
type Config struct {
	// ExpirySeconds is how long an entity stays visible after its last update.
	ExpirySeconds int `mapstructure:"expiry_seconds" default:"600" validate:"gt=0"`
	// SweepIntervalSeconds is how often expired entities are evicted.
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" default:"30" validate:"gt=0"`
}

// TTL returns the expiry window as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.ExpirySeconds) * time.Second
}

// SweepInterval returns the sweep cadence as a duration.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
