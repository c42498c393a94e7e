// Package auditlog writes audit records to the structured application log.
// It is the audit sink used when no database is configured.
package auditlog

import (
	"context"
	"log/slog"
)

// Logger implements ports.AuditLog on top of slog.
type Logger struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Logger {
	return &Logger{logger: logger.With("component", "audit_log")}
}

// Record logs action with its details at info level.
func (l *Logger) Record(ctx context.Context, action string, details any) {
	l.logger.InfoContext(ctx, "audit", "action", action, "details", details)
}
