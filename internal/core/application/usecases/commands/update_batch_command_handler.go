package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// UpdateBatchCommandHandler edits delivery runs.
type UpdateBatchCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

func NewUpdateBatchCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) UpdateBatchCommandHandler {
	return UpdateBatchCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle applies the changes in this order: status, rider, members.
//
// Orders leaving the batch lose their rider. Orders joining it leave their
// previous batch and take this batch's rider; when the rider itself changes
// every member follows. batch_updated goes to admin, and to rider when the
// batch has a rider after the update.
func (h UpdateBatchCommandHandler) Handle(ctx context.Context, cmd UpdateBatchCommand) (*batch.Batch, error) {
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

	batchRepo := uow.BatchRepository()
	b, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if status := cmd.Status(); status != nil {
		if _, err = b.ChangeStatus(*status, now); err != nil {
			return nil, err
		}
	}

	riderChanged := false
	if riderID, ok := cmd.RiderID(); ok {
		if riderChanged, err = h.changeRider(ctx, uow, b, riderID, now); err != nil {
			return nil, err
		}
	}

	var removed, added []kernel.ID
	if orderIDs, ok := cmd.OrderIDs(); ok {
		if removed, added, err = b.ReplaceOrders(orderIDs, now); err != nil {
			return nil, err
		}
	}

	m := membership{orders: uow.OrderRepository(), batches: batchRepo, now: now}
	for _, orderID := range removed {
		if err = m.release(ctx, orderID); err != nil {
			return nil, err
		}
	}
	toClaim := added
	if riderChanged {
		toClaim = b.OrderIDs()
	}
	for _, orderID := range toClaim {
		if err = m.claim(ctx, b, orderID); err != nil {
			return nil, err
		}
	}

	if err = batchRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcast(h.broadcaster, batchEvent(notification.BatchUpdated, b), batchAudience(b)...)
	return b, nil
}

// changeRider hands b to riderID, or takes it from its rider when riderID is nil.
func (h UpdateBatchCommandHandler) changeRider(
	ctx context.Context,
	uow UoW,
	b *batch.Batch,
	riderID *kernel.ID,
	now time.Time,
) (bool, error) {
	current := b.Rider()
	if riderID == nil {
		return b.ClearRider(now), nil
	}
	if current != nil && current.IsEqual(*riderID) {
		return false, nil
	}
	if _, err := uow.RiderRepository().Get(ctx, *riderID); err != nil {
		return false, err
	}
	return true, b.AssignRider(*riderID, now)
}
