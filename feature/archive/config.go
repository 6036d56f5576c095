package archive

import "time"

// Config holds snapshot export settings.
type Config struct {
	// Enabled turns periodic export and the archive routes on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// IntervalSeconds is the export cadence. Zero disables the periodic job.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"60" validate:"gte=0"`
	// Prefix is the object key prefix inside the bucket.
	Prefix string `mapstructure:"prefix" default:"snapshots" validate:"required_if=Enabled true"`
}

// Interval returns the export cadence as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
