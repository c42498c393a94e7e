package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies status changes to orders.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	broadcaster ports.Broadcaster,
	audit ports.AuditLog,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		audit:       audit,
	}
}

// Handle changes the order status.
//
// Re-applying the current status returns the order untouched: nothing is
// written, audited or broadcast. A real change is audited as
// order_status_updated and sent as order_updated to admin and rider.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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
	changed, err := o.ChangeStatus(cmd.Status(), time.Now().UTC())
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

	h.audit.Record(ctx, AuditOrderStatusUpdated, map[string]any{
		"orderId": o.ID().String(),
		"from":    previous,
		"to":      o.Status(),
	})
	broadcast(h.broadcaster, orderEvent(notification.OrderUpdated, o), notification.Admin, notification.Rider)
	return o, nil
}
