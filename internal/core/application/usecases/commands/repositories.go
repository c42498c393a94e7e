// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, unit of work, persistence,
// and, once committed, notification of the roles that must observe the change.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderRepoFactory provides access to the rider repository within a unit of work.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// BatchRepoFactory provides access to the batch repository within a unit of work.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// RiderUoW manages units of work that only touch riders.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates rider units of work.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// UoW manages units of work across orders, riders and batches.
	// Order and batch commands always use it, since an order's rider and its
	// batch membership change together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   batchRepo := uow.BatchRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		BatchRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
