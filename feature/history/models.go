package history

import "time"

// Sighting is one accepted record, appended to the history log.
type Sighting struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	Key         string    `gorm:"column:identity_key;size:191;index" json:"key"`
	JobID       string    `gorm:"column:job_id;size:191;index" json:"jobId"`
	ServerName  string    `gorm:"column:server_name;size:255" json:"serverName"`
	MoneyPerSec int64     `gorm:"column:money_per_sec" json:"moneyPerSec"`
	Players     string    `gorm:"column:players;size:64" json:"players"`
	Author      string    `gorm:"column:author;size:191" json:"author"`
	MessageID   string    `gorm:"column:message_id;size:64" json:"messageId"`
	SeenAt      time.Time `gorm:"column:seen_at;index" json:"seenAt"`
}

// Column widths, in characters, matching the size tags above.
const (
	keySize        = 191
	jobIDSize      = 191
	serverNameSize = 255
	playersSize    = 64
	authorSize     = 191
	messageIDSize  = 64
)

// TableName overrides the table name used by Sighting.
func (Sighting) TableName() string {
	return "server_sightings"
}

// columns lists the columns the repository reads and writes.
var columns = []string{
	"id", "identity_key", "job_id", "server_name", "money_per_sec",
	"players", "author", "message_id", "seen_at",
}
