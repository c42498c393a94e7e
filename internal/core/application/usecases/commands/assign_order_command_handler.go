package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AssignOrderCommandHandler orchestrates handing an order to a rider.
// The order, the batch it leaves and the batch it joins are written in one
// unit of work.
type AssignOrderCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle assigns the order and emits exactly one order_assigned to rider and
// one to admin. The batch bookkeeping behind the assignment is not announced
// separately.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
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
	riderRepo := uow.RiderRepository()
	batchRepo := uow.BatchRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}

	current, err := findBatchOfOrder(ctx, batchRepo, o.ID())
	if err != nil {
		return nil, err
	}

	riderBatches, err := batchRepo.GetByRider(ctx, r.ID())
	if err != nil {
		return nil, err
	}

	dispatch, err := services.NewOrderDispatcher().Dispatch(o, r, current, riderBatches, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if dispatch.Created {
		err = batchRepo.Add(ctx, dispatch.Target)
	} else {
		err = batchRepo.Update(ctx, dispatch.Target)
	}
	if err != nil {
		return nil, err
	}

	if dispatch.Previous != nil {
		if err = batchRepo.Update(ctx, dispatch.Previous); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcast(h.broadcaster, orderAssignedEvent(o), notification.Rider, notification.Admin)
	return o, nil
}

// findBatchOfOrder returns the batch holding orderID, or nil.
func findBatchOfOrder(ctx context.Context, repo ports.BatchRepository, orderID kernel.ID) (*batch.Batch, error) {
	b, err := repo.GetByOrder(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
