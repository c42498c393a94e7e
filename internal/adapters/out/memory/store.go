// Package memory keeps the order, rider and batch registries in process memory.
//
// A Store holds the committed state. Writers go through a UnitOfWork: only one
// unit of work is active at a time, it stages its changes privately and
// applies them in one step on Commit. Readers never wait for a unit of work to
// finish; they only wait for the short moment a commit is being applied.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Store is the committed state of all registries.
type Store struct {
	// writer admits one unit of work at a time.
	writer chan struct{}

	mu      sync.RWMutex
	orders  map[string]order.Snapshot
	riders  map[string]rider.Snapshot
	batches map[string]batch.Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer:  make(chan struct{}, 1),
		orders:  make(map[string]order.Snapshot),
		riders:  make(map[string]rider.Snapshot),
		batches: make(map[string]batch.Snapshot),
	}
}

// Order returns the committed order with the given id.
func (s *Store) Order(_ context.Context, id string) (order.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return order.Snapshot{}, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// Orders returns the committed orders matching filter, oldest first.
func (s *Store) Orders(_ context.Context, filter ports.OrderFilter) ([]order.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Snapshot, 0, len(s.orders))
	for _, o := range s.orders {
		if matchOrder(o, filter) {
			out = append(out, o)
		}
	}
	sortByCreation(out, orderKey)
	return out, nil
}

// Rider returns the committed rider with the given id.
func (s *Store) Rider(_ context.Context, id string) (rider.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.riders[id]
	if !ok {
		return rider.Snapshot{}, errs.NewObjectNotFoundError("rider", id)
	}
	return r, nil
}

// Riders returns the committed riders, oldest first. With availableOnly set
// only riders whose status is available are returned.
func (s *Store) Riders(_ context.Context, availableOnly bool) ([]rider.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]rider.Snapshot, 0, len(s.riders))
	for _, r := range s.riders {
		if !availableOnly || r.Status == rider.Available {
			out = append(out, r)
		}
	}
	sortByCreation(out, riderKey)
	return out, nil
}

// Batch returns the committed batch with the given id.
func (s *Store) Batch(_ context.Context, id string) (batch.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.batches[id]
	if !ok {
		return batch.Snapshot{}, errs.NewObjectNotFoundError("batch", id)
	}
	return b, nil
}

// Batches returns the committed batches, oldest first. A non-empty riderID
// keeps only that rider's batches.
func (s *Store) Batches(_ context.Context, riderID string) ([]batch.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]batch.Snapshot, 0, len(s.batches))
	for _, b := range s.batches {
		if riderID == "" || b.RiderID == riderID {
			out = append(out, b)
		}
	}
	sortByCreation(out, batchKey)
	return out, nil
}

func matchOrder(o order.Snapshot, filter ports.OrderFilter) bool {
	if !filter.CustomerID.IsZero() && o.CustomerID != filter.CustomerID.String() {
		return false
	}
	if !filter.RiderID.IsZero() && o.RiderID != filter.RiderID.String() {
		return false
	}
	return true
}

type creationKey struct {
	createdAt time.Time
	id        string
}

func orderKey(s order.Snapshot) creationKey { return creationKey{s.CreatedAt, s.ID} }
func riderKey(s rider.Snapshot) creationKey { return creationKey{s.CreatedAt, s.ID} }
func batchKey(s batch.Snapshot) creationKey { return creationKey{s.CreatedAt, s.ID} }

// sortByCreation orders records by creation time, ties broken by id.
func sortByCreation[S any](records []S, key func(S) creationKey) {
	slices.SortFunc(records, func(a, b S) int {
		ka, kb := key(a), key(b)
		if c := ka.createdAt.Compare(kb.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(ka.id, kb.id)
	})
}
