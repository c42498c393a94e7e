package auditrepo

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuditLog implements ports.AuditLog using GORM. Write failures are
// logged; auditing never fails the audited operation.
type GormAuditLog struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormAuditLog(db *gorm.DB, logger *slog.Logger) *GormAuditLog {
	return &GormAuditLog{
		db:     db,
		logger: logger.With("component", "audit_log"),
	}
}

// Record appends one entry. details is stored as JSON.
func (l *GormAuditLog) Record(ctx context.Context, action string, details any) {
	data, err := json.Marshal(details)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to encode audit details", "action", action, "error", err)
		return
	}

	dto := AuditEntryDTO{
		ID:        uuid.New(),
		Action:    action,
		Details:   data,
		CreatedAt: time.Now().UTC(),
	}
	// The request context may already be done once the response is written.
	if err = l.db.WithContext(context.WithoutCancel(ctx)).Create(&dto).Error; err != nil {
		l.logger.ErrorContext(ctx, "failed to write audit entry", "action", action, "error", err)
	}
}
