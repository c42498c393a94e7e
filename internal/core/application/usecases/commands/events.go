package commands

import (
	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// Audit actions recorded by the command handlers.
const (
	AuditOrderStatusUpdated = "order_status_updated"
	AuditOrderDeleted       = "order_deleted"
	AuditRiderStatusUpdated = "rider_status_updated"
	AuditBatchDeleted       = "batch_deleted"
)

func orderEvent(t notification.EventType, o *order.Order) notification.Event {
	return notification.NewEvent(t, "order", o.Snapshot())
}

func orderAssignedEvent(o *order.Order) notification.Event {
	return notification.NewEvent(notification.OrderAssigned,
		"order", o.Snapshot(),
		"riderId", o.Rider().String(),
	)
}

func batchEvent(t notification.EventType, b *batch.Batch) notification.Event {
	e := notification.NewEvent(t, "batch", b.Snapshot())
	if id := b.Rider(); id != nil {
		e.Payload["riderId"] = id.String()
	}
	return e
}

func batchDeletedEvent(b *batch.Batch) notification.Event {
	e := batchEvent(notification.BatchDeleted, b)
	e.Payload["batchId"] = b.ID().String()
	return e
}

func riderEvent(r *rider.Rider) notification.Event {
	return notification.NewEvent(notification.RiderStatusUpdated, "rider", r.Snapshot())
}

// broadcast sends e to each role in turn.
func broadcast(b ports.Broadcaster, e notification.Event, roles ...notification.Role) {
	for _, role := range roles {
		b.Broadcast(role, e)
	}
}

// orderAudience is admin, plus rider when the order is assigned.
func orderAudience(o *order.Order) []notification.Role {
	if o.Rider() != nil {
		return []notification.Role{notification.Admin, notification.Rider}
	}
	return []notification.Role{notification.Admin}
}

// batchAudience is admin, plus rider when the batch carries one.
func batchAudience(b *batch.Batch) []notification.Role {
	if b.Rider() != nil {
		return []notification.Role{notification.Admin, notification.Rider}
	}
	return []notification.Role{notification.Admin}
}
