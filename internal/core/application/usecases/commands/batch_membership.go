package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// membership keeps orders in line with the batch that holds them: an order
// carries the rider of its batch, and belongs to one batch at most.
//
// Ids of orders that do not exist are tolerated; a batch may reference an
// order that is created later or was never known to this service.
type membership struct {
	orders  ports.OrderRepository
	batches ports.BatchRepository
	now     time.Time
}

// claim pulls orderID into b: the order leaves any other batch and takes b's
// rider. Delivered and cancelled orders cannot be handed to a rider, so
// joining a batch with a rider leaves their rider reference as it was.
func (m membership) claim(ctx context.Context, b *batch.Batch, orderID kernel.ID) error {
	o, err := m.order(ctx, orderID)
	if err != nil || o == nil {
		return err
	}

	previous, err := findBatchOfOrder(ctx, m.batches, orderID)
	if err != nil {
		return err
	}
	if previous != nil && !previous.ID().IsEqual(b.ID()) {
		previous.RemoveOrder(orderID, m.now)
		if err = m.batches.Update(ctx, previous); err != nil {
			return err
		}
	}

	riderID := b.Rider()
	switch {
	case riderID == nil:
		if !o.UnlinkRider(m.now) {
			return nil
		}
	case o.Status().IsTerminal():
		return nil
	default:
		if err = o.AssignToRider(*riderID, m.now); err != nil {
			return err
		}
	}
	return m.orders.Update(ctx, o)
}

// release clears the rider of an order that left its batch.
func (m membership) release(ctx context.Context, orderID kernel.ID) error {
	o, err := m.order(ctx, orderID)
	if err != nil || o == nil {
		return err
	}
	if !o.UnlinkRider(m.now) {
		return nil
	}
	return m.orders.Update(ctx, o)
}

// order loads orderID, returning nil for unknown ids.
func (m membership) order(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	o, err := m.orders.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return o, err
}
