package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
)

// ErrBatchBelongsToAnotherOrder is returned when the batch passed as the
// order's current batch does not contain the order.
var ErrBatchBelongsToAnotherOrder = errors.New("current batch does not contain the order")

// Dispatch is the outcome of handing an order to a rider.
type Dispatch struct {
	// Target is the batch that now holds the order.
	Target *batch.Batch
	// Created is true when Target was created for this dispatch.
	Created bool
	// Previous is the batch the order was taken out of, or nil when it
	// stayed where it was or had no batch.
	Previous *batch.Batch
}

// OrderDispatcher hands orders to riders. An order handed to a rider always
// ends up in a batch carrying that rider, so the order's rider reference and
// its batch never disagree.
//
// Placement rules:
//   - an order already in an open batch of the same rider stays there
//   - otherwise it leaves its current batch and joins the rider's oldest
//     pending batch
//   - a rider without a pending batch gets a new one holding just this order
//
// Example:
//
//	d, err := services.NewOrderDispatcher().Dispatch(o, r, current, riderBatches, time.Now())
//	if err != nil {
//	    // terminal order or inconsistent input
//	}
//	// persist o, d.Target (Add when d.Created) and d.Previous
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns o to r and moves it into the right batch.
//
// Parameters:
//   - current: the batch that holds o now, or nil
//   - riderBatches: every batch of r, in creation order
//
// Nothing is modified when an error is returned.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	r *rider.Rider,
	current *batch.Batch,
	riderBatches []*batch.Batch,
	now time.Time,
) (Dispatch, error) {
	if err := errors.Join(o.Validate(), r.Validate()); err != nil {
		return Dispatch{}, err
	}
	if err := o.Status().ValidateAssign(); err != nil {
		return Dispatch{}, err
	}
	if current != nil && !current.Contains(o.ID()) {
		return Dispatch{}, ErrBatchBelongsToAnotherOrder
	}

	if current != nil && current.IsOpen() && isRiderOf(current, r.ID()) {
		if err := o.AssignToRider(r.ID(), now); err != nil {
			return Dispatch{}, err
		}
		return Dispatch{Target: current}, nil
	}

	target := d.findPendingBatch(riderBatches, r.ID())
	created := false
	if target == nil {
		riderID := r.ID()
		b, err := batch.NewBatch(kernel.NewID(), []kernel.ID{o.ID()}, &riderID, now)
		if err != nil {
			return Dispatch{}, err
		}
		target, created = b, true
	} else if _, err := target.AddOrder(o.ID(), now); err != nil {
		return Dispatch{}, err
	}

	if err := o.AssignToRider(r.ID(), now); err != nil {
		return Dispatch{}, err
	}
	if current != nil {
		current.RemoveOrder(o.ID(), now)
	}

	return Dispatch{Target: target, Created: created, Previous: current}, nil
}

// findPendingBatch returns the oldest pending batch of riderID, or nil.
func (d OrderDispatcher) findPendingBatch(batches []*batch.Batch, riderID kernel.ID) *batch.Batch {
	for _, b := range batches {
		if b.Status() == batch.Pending && isRiderOf(b, riderID) {
			return b
		}
	}
	return nil
}

func isRiderOf(b *batch.Batch, riderID kernel.ID) bool {
	id := b.Rider()
	return id != nil && id.IsEqual(riderID)
}
