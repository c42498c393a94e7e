package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand hands an order to a rider.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, "R1")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or rider
//	case errs.IsValidation(err):
//	    // order already delivered or cancelled
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	riderID kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(orderID, riderID string) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{guard: guard.NewConstructorGuard()}

	oid, orderErr := kernel.IDFromString(orderID)
	rid, riderErr := kernel.IDFromString(riderID)
	if err := errors.Join(orderErr, riderErr); err != nil {
		return AssignOrderCommand{}, err
	}

	cmd.orderID = oid
	cmd.riderID = rid
	return cmd, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AssignOrderCommand) RiderID() kernel.ID {
	return c.riderID
}
