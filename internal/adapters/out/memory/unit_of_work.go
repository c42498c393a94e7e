package memory

import (
	"context"
	"errors"
	"maps"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// changeSet holds the records written by a unit of work. A nil value marks a deletion.
type changeSet[S any] map[string]*S

// apply writes the staged records into committed.
func (c changeSet[S]) apply(committed map[string]S) {
	for id, s := range c {
		if s == nil {
			delete(committed, id)
			continue
		}
		committed[id] = *s
	}
}

// lookup returns the staged version of id. staged reports whether the unit
// of work touched id at all; a staged deletion yields (nil, true).
func (c changeSet[S]) lookup(id string) (record *S, staged bool) {
	record, staged = c[id]
	return record, staged
}

// merge overlays the staged records on a copy of committed.
func (c changeSet[S]) merge(committed map[string]S) map[string]S {
	merged := maps.Clone(committed)
	c.apply(merged)
	return merged
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new, inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes to the registries and applies them on Commit.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store  *Store
	active bool

	orders  changeSet[order.Snapshot]
	riders  changeSet[rider.Snapshot]
	batches changeSet[batch.Snapshot]
}

// Begin waits until no other unit of work is active. Calling Begin twice is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case u.store.writer <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	u.active = true
	u.orders = make(changeSet[order.Snapshot])
	u.riders = make(changeSet[rider.Snapshot])
	u.batches = make(changeSet[batch.Snapshot])
	return nil
}

// Commit applies every staged change atomically and ends the unit of work.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.store.mu.Lock()
	u.orders.apply(u.store.orders)
	u.riders.apply(u.store.riders)
	u.batches.apply(u.store.batches)
	u.store.mu.Unlock()

	u.finish()
	return nil
}

// Rollback discards staged changes and ends the unit of work.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.finish()
	return nil
}

func (u *UnitOfWork) finish() {
	u.orders, u.riders, u.batches = nil, nil, nil
	u.active = false
	<-u.store.writer
}

// OrderRepository returns the order repository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

// RiderRepository returns the rider repository bound to this unit of work.
func (u *UnitOfWork) RiderRepository() ports.RiderRepository {
	return &RiderRepository{uow: u}
}

// BatchRepository returns the batch repository bound to this unit of work.
func (u *UnitOfWork) BatchRepository() ports.BatchRepository {
	return &BatchRepository{uow: u}
}

// writable reports ErrNoActiveTransaction for writes outside Begin/Commit.
func (u *UnitOfWork) writable() error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	return nil
}
