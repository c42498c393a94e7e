package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add stores a new rider. Returns ObjectAlreadyExistsError when the id is taken.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update stores changes to an existing rider.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.ID) (*rider.Rider, error)

	// GetAll returns every rider, oldest first.
	GetAll(ctx context.Context) ([]*rider.Rider, error)

	// GetAllAvailable returns the riders whose status is available.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)
}
