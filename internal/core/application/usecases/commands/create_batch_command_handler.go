package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// CreateBatchCommandHandler creates delivery runs.
type CreateBatchCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

func NewCreateBatchCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle creates the batch. Known member orders leave their previous batch
// and take the batch's rider; unknown order ids are kept as given.
// batch_created goes to admin, and to rider when the batch has one.
func (h CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) (*batch.Batch, error) {
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

	if riderID := cmd.RiderID(); riderID != nil {
		if _, err := uow.RiderRepository().Get(ctx, *riderID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	b, err := batch.NewBatch(kernel.NewID(), cmd.OrderIDs(), cmd.RiderID(), now)
	if err != nil {
		return nil, err
	}

	m := membership{orders: uow.OrderRepository(), batches: uow.BatchRepository(), now: now}
	for _, orderID := range b.OrderIDs() {
		if err = m.claim(ctx, b, orderID); err != nil {
			return nil, err
		}
	}

	if err = uow.BatchRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcast(h.broadcaster, batchEvent(notification.BatchCreated, b), batchAudience(b)...)
	return b, nil
}
