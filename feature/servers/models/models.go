package models

import (
	"bytes"
	"fmt"

	"server-relay/core/utils"

	"github.com/goccy/go-json"
)

// UnknownAuthor is used when a message carries no author username.
const UnknownAuthor = "Unknown"

// ExtractedRecord holds the fields recovered from one message.
// Empty strings mean the field was not found.
type ExtractedRecord struct {
	ServerName  string `json:"serverName"`
	MoneyPerSec int64  `json:"moneyPerSec"`
	Players     string `json:"players"`
	JobID       string `json:"jobId"`
}

// Informative reports whether the message named a server or a job.
func (r ExtractedRecord) Informative() bool {
	return r.JobID != "" || r.ServerName != ""
}

// Record is the payload handed to the store, either by the poll loop or
// by the ingestion endpoint.
type Record struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	ServerName  string `json:"serverName"`
	MoneyPerSec Amount `json:"moneyPerSec"`
	Players     string `json:"players"`
	JobID       string `json:"jobId"`
}

// NewRecord builds the payload for an extracted message.
func NewRecord(messageID, author string, x ExtractedRecord) Record {
	if author == "" {
		author = UnknownAuthor
	}
	return Record{
		ID:          messageID,
		Author:      author,
		ServerName:  x.ServerName,
		MoneyPerSec: Amount(x.MoneyPerSec),
		Players:     x.Players,
		JobID:       x.JobID,
	}
}

// Entity is the merged view of everything known about one identity key.
// Timestamps are epoch seconds with millisecond resolution.
type Entity struct {
	ServerName  string  `json:"serverName"`
	MoneyPerSec int64   `json:"moneyPerSec"`
	Players     string  `json:"players"`
	Author      string  `json:"author"`
	JobID       string  `json:"jobId"`
	FirstSeen   float64 `json:"firstSeen"`
	LastSeen    float64 `json:"lastSeen"`
	ID          string  `json:"id"`
}

// Amount is a non-negative per-second figure. It decodes from JSON numbers,
// numeric strings and null so that loosely typed producers are accepted.
type Amount int64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("moneyPerSec: %w", err)
	}

	n, ok := utils.ToInt64(raw)
	if !ok {
		return fmt.Errorf("moneyPerSec: cannot use %s as a number", string(data))
	}
	*a = Amount(max(n, 0))
	return nil
}

// Int64 returns the amount as a plain integer.
func (a Amount) Int64() int64 {
	return int64(a)
}

// Ack acknowledges an ingestion request.
type Ack struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Health reports liveness and the number of stored entities.
type Health struct {
	Status   string `json:"status"`
	Entities int    `json:"entities"`
}
