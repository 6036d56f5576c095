package store

import (
	"strconv"
	"sync/atomic"
	"time"

	"server-relay/feature/servers/models"
)

// Key prefixes, in priority order.
const (
	JobPrefix     = "job:"
	MessagePrefix = "msg:"
	TimePrefix    = "ts:"
)

// Keyer derives identity keys. Records with neither a job id nor a message
// id get a time-based key that is unique per call, so they never merge.
type Keyer struct {
	now func() time.Time
	seq atomic.Uint64
}

// NewKeyer creates a keyer reading time from now.
func NewKeyer(now func() time.Time) *Keyer {
	if now == nil {
		now = time.Now
	}
	return &Keyer{now: now}
}

// Key returns the identity key for rec.
func (k *Keyer) Key(rec models.Record) string {
	switch {
	case rec.JobID != "":
		return JobPrefix + rec.JobID
	case rec.ID != "":
		return MessagePrefix + rec.ID
	}
	n := k.seq.Add(1)
	return TimePrefix + strconv.FormatInt(k.now().UnixMilli(), 10) + "-" + strconv.FormatUint(n, 10)
}
