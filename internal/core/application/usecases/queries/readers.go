// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never open a unit of work: they read committed state and return
// the flat snapshot read models that clients receive.
package queries

import (
	"context"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// Read models consumed by the query handlers. Lists are ordered by creation
// time, oldest first. Unknown ids yield an ObjectNotFoundError.
type (
	OrderReader interface {
		Order(ctx context.Context, id string) (order.Snapshot, error)
		Orders(ctx context.Context, filter ports.OrderFilter) ([]order.Snapshot, error)
	}

	RiderReader interface {
		Rider(ctx context.Context, id string) (rider.Snapshot, error)
		Riders(ctx context.Context, availableOnly bool) ([]rider.Snapshot, error)
	}

	// BatchReader lists all batches for an empty riderID.
	BatchReader interface {
		Batch(ctx context.Context, id string) (batch.Snapshot, error)
		Batches(ctx context.Context, riderID string) ([]batch.Snapshot, error)
	}
)
