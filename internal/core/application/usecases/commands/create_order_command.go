package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one order line as supplied by a client.
type OrderItem struct {
	ID       string
	Quantity int
	Price    decimal.Decimal
}

// CreateOrderCommand represents a customer placing a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("C1", []OrderItem{{ID: "1", Quantity: 2, Price: price}}, "Abay 10", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	items      []order.Item
	details    order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer and every item line.
// All problems are reported together.
func NewCreateOrderCommand(customerID string, items []OrderItem, deliveryAddress, notes string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: order.Details{DeliveryAddress: deliveryAddress, Notes: notes},
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	id, err := kernel.IDFromString(customerID)
	if err != nil {
		return order.ErrCustomerIsRequired
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	built, err := buildItems(items)
	if err != nil {
		return err
	}
	c.items = built
	return nil
}

// buildItems converts client lines into order items.
func buildItems(items []OrderItem) ([]order.Item, error) {
	if len(items) == 0 {
		return nil, order.ErrItemsAreRequired
	}

	built := make([]order.Item, 0, len(items))
	var failures []error
	for _, in := range items {
		item, err := order.NewItem(in.ID, in.Quantity, in.Price)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		built = append(built, item)
	}
	if err := errors.Join(failures...); err != nil {
		return nil, err
	}
	return built, nil
}
