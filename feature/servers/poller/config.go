package poller

import "time"

// Config holds the poll loop settings.
type Config struct {
	// IntervalMS is the delay between poll cycles.
	IntervalMS int `mapstructure:"interval_ms" default:"2000" validate:"gt=0"`
	// PageLimit is the maximum number of messages fetched per cycle.
	PageLimit int `mapstructure:"page_limit" default:"50" validate:"gte=1,lte=100"`
	// ForwardURL, when set, sends records to another instance's /receive
	// instead of the local store.
	ForwardURL string `mapstructure:"forward_url" default:"" validate:"omitempty,url"`
	// ForwardTimeoutSeconds bounds a single hand-off.
	ForwardTimeoutSeconds int `mapstructure:"forward_timeout_seconds" default:"5" validate:"gte=0"`
	// LooseContentIDs accepts any long message content as a job id.
	LooseContentIDs bool `mapstructure:"loose_content_ids" default:"false"`
}

// Interval returns the poll delay as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// ForwardTimeout returns the hand-off timeout, defaulting to five seconds.
func (c Config) ForwardTimeout() time.Duration {
	if c.ForwardTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ForwardTimeoutSeconds) * time.Second
}
