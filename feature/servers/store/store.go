package store

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"server-relay/feature/servers/models"
)

type entry struct {
	key       string
	entity    models.Entity
	firstSeen time.Time
	lastSeen  time.Time
}

// Store maps identity keys to merged entities. Every method is atomic with
// respect to the others.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	keyer   *Keyer
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.keyer = NewKeyer(s.now)
	return s
}

// put merges one record and returns the key it was stored under.
// Empty strings and a zero amount never replace a known value.
// The caller must hold s.mu.
func (s *Store) put(rec models.Record, now time.Time) string {
	key := s.keyer.Key(rec)

	e, ok := s.entries[key]
	if !ok {
		s.entries[key] = &entry{
			key:       key,
			firstSeen: now,
			lastSeen:  now,
			entity: models.Entity{
				ServerName:  rec.ServerName,
				MoneyPerSec: rec.MoneyPerSec.Int64(),
				Players:     rec.Players,
				Author:      rec.Author,
				JobID:       rec.JobID,
				ID:          rec.ID,
			},
		}
		return key
	}

	merge(&e.entity, rec)
	if now.After(e.lastSeen) {
		e.lastSeen = now
	}
	return key
}

func merge(dst *models.Entity, rec models.Record) {
	dst.ServerName = cmp.Or(rec.ServerName, dst.ServerName)
	dst.MoneyPerSec = cmp.Or(rec.MoneyPerSec.Int64(), dst.MoneyPerSec)
	dst.Players = cmp.Or(rec.Players, dst.Players)
	dst.Author = cmp.Or(rec.Author, dst.Author)
	dst.JobID = cmp.Or(rec.JobID, dst.JobID)
	dst.ID = cmp.Or(rec.ID, dst.ID)
}

// Upsert merges records in order and returns the number of stored entities.
func (s *Store) Upsert(records ...models.Record) int {
	_, count := s.UpsertKeys(records...)
	return count
}

// UpsertKeys merges records in order as one atomic batch. It returns the key
// each record was stored under and the number of stored entities.
func (s *Store) UpsertKeys(records ...models.Record) ([]string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, len(records))
	for i, rec := range records {
		keys[i] = s.put(rec, s.now())
	}
	return keys, len(s.entries)
}

// Snapshot returns every entity updated within ttl, most recent first.
func (s *Store) Snapshot(ttl time.Duration) []models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	live := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		if now.Sub(e.lastSeen) <= ttl {
			live = append(live, e)
		}
	}

	slices.SortFunc(live, func(a, b *entry) int {
		if c := b.lastSeen.Compare(a.lastSeen); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})

	out := make([]models.Entity, len(live))
	for i, e := range live {
		out[i] = e.view()
	}
	return out
}

// Get returns the entity stored under key if it was updated within ttl.
func (s *Store) Get(key string, ttl time.Duration) (models.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || s.now().Sub(e.lastSeen) > ttl {
		return models.Entity{}, false
	}
	return e.view(), true
}

// Sweep evicts entities not updated within ttl and returns how many were removed.
func (s *Store) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.lastSeen) > ttl {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entities, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (e *entry) view() models.Entity {
	v := e.entity
	v.FirstSeen = epochSeconds(e.firstSeen)
	v.LastSeen = epochSeconds(e.lastSeen)
	return v
}

// epochSeconds converts t to fractional seconds at millisecond resolution.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}
