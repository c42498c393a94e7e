package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders, taking them out of their batch first.
type DeleteOrderCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
}

func NewDeleteOrderCommandHandler(
	uowFactory UoWFactory,
	broadcaster ports.Broadcaster,
	audit ports.AuditLog,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		audit:       audit,
	}
}

// Handle deletes the order unconditionally. When the order was in a batch,
// the batch is updated and announced with batch_updated; the order itself
// gets no event. The deletion is audited as order_deleted.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	batchRepo := uow.BatchRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	b, err := findBatchOfOrder(ctx, batchRepo, o.ID())
	if err != nil {
		return err
	}
	if b != nil {
		b.RemoveOrder(o.ID(), time.Now().UTC())
		if err = batchRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, AuditOrderDeleted, map[string]any{
		"orderId": o.ID().String(),
		"order":   o.Snapshot(),
	})
	if b != nil {
		broadcast(h.broadcaster, batchEvent(notification.BatchUpdated, b), batchAudience(b)...)
	}
	return nil
}
