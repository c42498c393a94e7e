package memory

import (
	"context"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// OrderRepository reads through the unit of work's staged changes into the store.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()
	if _, ok := r.snapshot(id); ok {
		return errs.NewObjectAlreadyExistsError("order", id)
	}
	s := aggregate.Snapshot()
	r.uow.orders[id] = &s
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()
	if _, ok := r.snapshot(id); !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	s := aggregate.Snapshot()
	r.uow.orders[id] = &s
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.ID) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if _, ok := r.snapshot(id.String()); !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	r.uow.orders[id.String()] = nil
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	s, ok := r.snapshot(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.Restore(s)
}

func (r *OrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var snapshots []order.Snapshot
	if r.uow.active {
		r.uow.store.mu.RLock()
		merged := r.uow.orders.merge(r.uow.store.orders)
		r.uow.store.mu.RUnlock()

		for _, s := range merged {
			if matchOrder(s, filter) {
				snapshots = append(snapshots, s)
			}
		}
		sortByCreation(snapshots, orderKey)
	} else {
		var err error
		if snapshots, err = r.uow.store.Orders(ctx, filter); err != nil {
			return nil, err
		}
	}

	out := make([]*order.Order, 0, len(snapshots))
	for _, s := range snapshots {
		o, err := order.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepository) snapshot(id string) (order.Snapshot, bool) {
	if r.uow.active {
		if staged, ok := r.uow.orders.lookup(id); ok {
			if staged == nil {
				return order.Snapshot{}, false
			}
			return *staged, true
		}
	}
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	s, ok := r.uow.store.orders[id]
	return s, ok
}

// RiderRepository reads through the unit of work's staged changes into the store.
type RiderRepository struct {
	uow *UnitOfWork
}

func (r *RiderRepository) Add(_ context.Context, aggregate *rider.Rider) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()
	if _, ok := r.snapshot(id); ok {
		return errs.NewObjectAlreadyExistsError("rider", id)
	}
	s := aggregate.Snapshot()
	r.uow.riders[id] = &s
	return nil
}

func (r *RiderRepository) Update(_ context.Context, aggregate *rider.Rider) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()
	if _, ok := r.snapshot(id); !ok {
		return errs.NewObjectNotFoundError("rider", id)
	}
	s := aggregate.Snapshot()
	r.uow.riders[id] = &s
	return nil
}

func (r *RiderRepository) Get(_ context.Context, id kernel.ID) (*rider.Rider, error) {
	s, ok := r.snapshot(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("rider", id.String())
	}
	return rider.Restore(s)
}

func (r *RiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	return r.list(ctx, false)
}

func (r *RiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	return r.list(ctx, true)
}

func (r *RiderRepository) list(ctx context.Context, availableOnly bool) ([]*rider.Rider, error) {
	var snapshots []rider.Snapshot
	if r.uow.active {
		r.uow.store.mu.RLock()
		merged := r.uow.riders.merge(r.uow.store.riders)
		r.uow.store.mu.RUnlock()

		for _, s := range merged {
			if !availableOnly || s.Status == rider.Available {
				snapshots = append(snapshots, s)
			}
		}
		sortByCreation(snapshots, riderKey)
	} else {
		var err error
		if snapshots, err = r.uow.store.Riders(ctx, availableOnly); err != nil {
			return nil, err
		}
	}

	out := make([]*rider.Rider, 0, len(snapshots))
	for _, s := range snapshots {
		rd, err := rider.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, nil
}

func (r *RiderRepository) snapshot(id string) (rider.Snapshot, bool) {
	if r.uow.active {
		if staged, ok := r.uow.riders.lookup(id); ok {
			if staged == nil {
				return rider.Snapshot{}, false
			}
			return *staged, true
		}
	}
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	s, ok := r.uow.store.riders[id]
	return s, ok
}

// BatchRepository reads through the unit of work's staged changes into the store.
type BatchRepository struct {
	uow *UnitOfWork
}

func (r *BatchRepository) Add(_ context.Context, aggregate *batch.Batch) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()
	if _, ok := r.snapshot(id); ok {
		return errs.NewObjectAlreadyExistsError("batch", id)
	}
	s := aggregate.Snapshot()
	r.uow.batches[id] = &s
	return nil
}

func (r *BatchRepository) Update(_ context.Context, aggregate *batch.Batch) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID().String()
	if _, ok := r.snapshot(id); !ok {
		return errs.NewObjectNotFoundError("batch", id)
	}
	s := aggregate.Snapshot()
	r.uow.batches[id] = &s
	return nil
}

func (r *BatchRepository) Delete(_ context.Context, id kernel.ID) error {
	if err := r.uow.writable(); err != nil {
		return err
	}
	if _, ok := r.snapshot(id.String()); !ok {
		return errs.NewObjectNotFoundError("batch", id.String())
	}
	r.uow.batches[id.String()] = nil
	return nil
}

func (r *BatchRepository) Get(_ context.Context, id kernel.ID) (*batch.Batch, error) {
	s, ok := r.snapshot(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("batch", id.String())
	}
	return batch.Restore(s)
}

func (r *BatchRepository) GetAll(ctx context.Context) ([]*batch.Batch, error) {
	return r.list(ctx, func(batch.Snapshot) bool { return true })
}

func (r *BatchRepository) GetByRider(ctx context.Context, riderID kernel.ID) ([]*batch.Batch, error) {
	return r.list(ctx, func(s batch.Snapshot) bool { return s.RiderID == riderID.String() })
}

func (r *BatchRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*batch.Batch, error) {
	batches, err := r.list(ctx, func(s batch.Snapshot) bool {
		for _, id := range s.OrderIDs {
			if id == orderID.String() {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, errs.NewObjectNotFoundError("batch of order", orderID.String())
	}
	return batches[0], nil
}

func (r *BatchRepository) list(_ context.Context, keep func(batch.Snapshot) bool) ([]*batch.Batch, error) {
	r.uow.store.mu.RLock()
	var all map[string]batch.Snapshot
	if r.uow.active {
		all = r.uow.batches.merge(r.uow.store.batches)
	} else {
		all = r.uow.store.batches
	}
	snapshots := make([]batch.Snapshot, 0, len(all))
	for _, s := range all {
		if keep(s) {
			snapshots = append(snapshots, s)
		}
	}
	r.uow.store.mu.RUnlock()
	sortByCreation(snapshots, batchKey)

	out := make([]*batch.Batch, 0, len(snapshots))
	for _, s := range snapshots {
		b, err := batch.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BatchRepository) snapshot(id string) (batch.Snapshot, bool) {
	if r.uow.active {
		if staged, ok := r.uow.batches.lookup(id); ok {
			if staged == nil {
				return batch.Snapshot{}, false
			}
			return *staged, true
		}
	}
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	s, ok := r.uow.store.batches[id]
	return s, ok
}
