// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work, and the outbound
// collaborators (realtime broadcaster, audit log, snapshot store).
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderFilter narrows List. Zero fields do not filter.
type OrderFilter struct {
	CustomerID kernel.ID
	RiderID    kernel.ID
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order. Returns ObjectAlreadyExistsError when the id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order.
	// Returns ObjectNotFoundError when the order is unknown.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order. Returns ObjectNotFoundError when it is unknown.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves an order by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns the orders matching filter, oldest first.
	//
	// Example:
	//   mine, err := repo.List(ctx, ports.OrderFilter{CustomerID: customerID})
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
