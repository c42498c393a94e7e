// Package auditrepo appends audit records to PostgreSQL.
package auditrepo

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntryDTO is one audited action with its JSON details.
type AuditEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"size:64;index;not null"`
	Details   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (AuditEntryDTO) TableName() string {
	return "audit_log"
}
