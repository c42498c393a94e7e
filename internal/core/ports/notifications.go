package ports

import (
	"context"

	"dispatch/internal/core/domain/model/notification"
)

// Broadcaster delivers an event to every live subscriber of role.
// Delivery is best effort: implementations log failures and never block the
// caller on a slow subscriber.
type Broadcaster interface {
	Broadcast(role notification.Role, event notification.Event)
}

// AuditLog records significant actions (status changes, deletions).
// Failures are logged by the implementation and never reach the caller.
type AuditLog interface {
	Record(ctx context.Context, action string, details any)
}
