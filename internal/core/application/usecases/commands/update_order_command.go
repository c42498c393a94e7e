package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderChanges is a partial order update as supplied by a client.
// Nil fields are left untouched.
type OrderChanges struct {
	Items           *[]OrderItem
	DeliveryAddress *string
	Notes           *string
	Status          *string
}

// UpdateOrderCommand edits an order: its items, delivery details or status.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand parses the order id and every present field.
func NewUpdateOrderCommand(orderID string, changes OrderChanges) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		patch: order.Patch{
			DeliveryAddress: changes.DeliveryAddress,
			Notes:           changes.Notes,
		},
		guard: guard.NewConstructorGuard(),
	}

	id, idErr := kernel.IDFromString(orderID)
	cmd.orderID = id

	var itemsErr, statusErr error
	if changes.Items != nil {
		cmd.patch.Items, itemsErr = buildItems(*changes.Items)
	}
	if changes.Status != nil {
		var status order.Status
		status, statusErr = order.ParseStatus(*changes.Status)
		cmd.patch.Status = &status
	}

	if err := errors.Join(idErr, itemsErr, statusErr); err != nil {
		return UpdateOrderCommand{}, err
	}
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}
