// Package snapshotrepo stores the registry snapshot documents in PostgreSQL,
// one row per document name.
package snapshotrepo

import "time"

// SnapshotDTO is one named JSON document.
type SnapshotDTO struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (SnapshotDTO) TableName() string {
	return "snapshots"
}
