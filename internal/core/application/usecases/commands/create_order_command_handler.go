package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler registers new orders and announces them to the dispatch console.
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle creates a pending order with a generated id and emits new_order to admin.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewID(), cmd.CustomerID(), cmd.Items(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcast(h.broadcaster, orderEvent(notification.NewOrder, o), notification.Admin)
	return o, nil
}
