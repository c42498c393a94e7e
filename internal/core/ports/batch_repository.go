package ports

import (
	"context"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates.
type BatchRepository interface {
	Add(ctx context.Context, aggregate *batch.Batch) error
	Update(ctx context.Context, aggregate *batch.Batch) error
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves a batch by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.ID) (*batch.Batch, error)

	// GetAll returns every batch, oldest first.
	GetAll(ctx context.Context) ([]*batch.Batch, error)

	// GetByRider returns the batches carrying riderID, oldest first.
	GetByRider(ctx context.Context, riderID kernel.ID) ([]*batch.Batch, error)

	// GetByOrder returns the batch holding orderID.
	// Returns ObjectNotFoundError when the order is in no batch.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*batch.Batch, error)
}
