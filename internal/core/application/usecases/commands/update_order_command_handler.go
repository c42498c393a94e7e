package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial order updates.
type UpdateOrderCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	broadcaster ports.Broadcaster,
	audit ports.AuditLog,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		audit:       audit,
	}
}

// Handle applies the patch. A patch that changes nothing is a silent success.
// Otherwise order_updated goes to admin, and to rider when the order is assigned.
// A status change inside the patch is audited like a plain status update.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	changed, err := o.Update(cmd.Patch(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if o.Status() != previous {
		h.audit.Record(ctx, AuditOrderStatusUpdated, map[string]any{
			"orderId": o.ID().String(),
			"from":    previous,
			"to":      o.Status(),
		})
	}
	broadcast(h.broadcaster, orderEvent(notification.OrderUpdated, o), orderAudience(o)...)
	return o, nil
}
