package domain

import "time"

// SyncMetadata tracks the last sync of one catalog config file into the
// database. The checksum lets startup skip files that have not changed.
type SyncMetadata struct {
	ConfigName string    `json:"config_name" db:"config_name"`
	Checksum   string    `json:"checksum" db:"checksum"`
	PartsCount int       `json:"parts_count" db:"parts_count"`
	SyncedAt   time.Time `json:"synced_at" db:"synced_at"`
}
