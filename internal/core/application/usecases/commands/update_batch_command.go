package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateBatchCommandIsNotConstructed = errors.New(
	"UpdateBatchCommand must be created via NewUpdateBatchCommand constructor",
)

// BatchChanges is a partial batch update. Nil fields are left untouched; a
// RiderID pointing to an empty string takes the batch away from its rider.
type BatchChanges struct {
	OrderIDs *[]string
	RiderID  *string
	Status   *string
}

// UpdateBatchCommand edits a batch's members, rider or status.
type UpdateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID   kernel.ID
	orderIDs  []kernel.ID
	setOrders bool
	riderID   *kernel.ID
	setRider  bool
	status    *batch.Status

	guard guard.ConstructorGuard
}

func NewUpdateBatchCommand(batchID string, changes BatchChanges) (UpdateBatchCommand, error) {
	cmd := UpdateBatchCommand{guard: guard.NewConstructorGuard()}

	id, idErr := kernel.IDFromString(batchID)
	cmd.batchID = id

	if err := errors.Join(
		idErr,
		cmd.setOrderIDs(changes.OrderIDs),
		cmd.setRiderID(changes.RiderID),
		cmd.setStatus(changes.Status),
	); err != nil {
		return UpdateBatchCommand{}, err
	}

	return cmd, nil
}

func (c UpdateBatchCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBatchCommandIsNotConstructed)
}

func (c UpdateBatchCommand) BatchID() kernel.ID {
	return c.batchID
}

// OrderIDs returns the new member list and whether one was given.
func (c UpdateBatchCommand) OrderIDs() ([]kernel.ID, bool) {
	return c.orderIDs, c.setOrders
}

// RiderID returns the new rider (nil to clear) and whether the rider changes.
func (c UpdateBatchCommand) RiderID() (*kernel.ID, bool) {
	return c.riderID, c.setRider
}

// Status returns the target status, or nil.
func (c UpdateBatchCommand) Status() *batch.Status {
	return c.status
}

func (c *UpdateBatchCommand) setOrderIDs(orderIDs *[]string) error {
	if orderIDs == nil {
		return nil
	}
	if len(*orderIDs) == 0 {
		return batch.ErrOrdersAreRequired
	}
	ids, err := kernel.IDsFromStrings(*orderIDs)
	if err != nil {
		return err
	}
	c.orderIDs, c.setOrders = ids, true
	return nil
}

func (c *UpdateBatchCommand) setRiderID(riderID *string) error {
	if riderID == nil {
		return nil
	}
	c.setRider = true
	if strings.TrimSpace(*riderID) == "" {
		return nil
	}
	id, err := kernel.IDFromString(*riderID)
	if err != nil {
		return err
	}
	c.riderID = &id
	return nil
}

func (c *UpdateBatchCommand) setStatus(status *string) error {
	if status == nil {
		return nil
	}
	parsed, err := batch.ParseStatus(*status)
	if err != nil {
		return err
	}
	c.status = &parsed
	return nil
}
