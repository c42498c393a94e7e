package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateBatchCommandIsNotConstructed = errors.New(
	"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
)

// CreateBatchCommand groups orders into a delivery run, optionally for a rider.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID
	riderID  *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand requires at least one order id. An empty riderID
// leaves the batch unassigned.
func NewCreateBatchCommand(orderIDs []string, riderID string) (CreateBatchCommand, error) {
	cmd := CreateBatchCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setRiderID(riderID),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return cmd, nil
}

func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

func (c CreateBatchCommand) OrderIDs() []kernel.ID {
	return c.orderIDs
}

// RiderID returns the rider to hand the batch to, or nil.
func (c CreateBatchCommand) RiderID() *kernel.ID {
	return c.riderID
}

func (c *CreateBatchCommand) setOrderIDs(orderIDs []string) error {
	if len(orderIDs) == 0 {
		return batch.ErrOrdersAreRequired
	}
	ids, err := kernel.IDsFromStrings(orderIDs)
	if err != nil {
		return err
	}
	c.orderIDs = ids
	return nil
}

func (c *CreateBatchCommand) setRiderID(riderID string) error {
	if strings.TrimSpace(riderID) == "" {
		return nil
	}
	id, err := kernel.IDFromString(riderID)
	if err != nil {
		return err
	}
	c.riderID = &id
	return nil
}
