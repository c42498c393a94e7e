package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
)

// DeleteBatchCommandHandler dissolves delivery runs.
type DeleteBatchCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
}

func NewDeleteBatchCommandHandler(
	uowFactory UoWFactory,
	broadcaster ports.Broadcaster,
	audit ports.AuditLog,
) DeleteBatchCommandHandler {
	return DeleteBatchCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		audit:       audit,
	}
}

// Handle unlinks the rider of every member order and removes the batch.
// The deletion is audited as batch_deleted and announced with batch_deleted
// to admin, and to rider when the batch had one. Customers are not told.
func (h DeleteBatchCommandHandler) Handle(ctx context.Context, cmd DeleteBatchCommand) error {
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

	batchRepo := uow.BatchRepository()
	b, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	m := membership{orders: uow.OrderRepository(), batches: batchRepo, now: time.Now().UTC()}
	for _, orderID := range b.OrderIDs() {
		if err = m.release(ctx, orderID); err != nil {
			return err
		}
	}

	if err = batchRepo.Delete(ctx, b.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, AuditBatchDeleted, map[string]any{
		"batchId": b.ID().String(),
		"batch":   b.Snapshot(),
	})
	broadcast(h.broadcaster, batchDeletedEvent(b), batchAudience(b)...)
	return nil
}
