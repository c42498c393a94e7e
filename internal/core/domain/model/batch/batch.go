package batch

import (
	"errors"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not created through
	// NewBatch or Restore.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")
	// ErrOrdersAreRequired is returned for a batch without orders.
	ErrOrdersAreRequired = errs.NewValueIsRequiredError("orderIds")
)

// Batch groups orders into one delivery run, optionally handed to a rider.
//
// Batch follows these invariants:
//   - it references at least one order at creation, each order id at most once
//   - order ids keep their insertion order
//   - status only moves forward, except for cancellation
//
// The batch itself does not know whether its order ids exist; the registry
// keeps the orders' rider references in line with the batch.
type Batch struct {
	id        kernel.ID
	orderIDs  []kernel.ID
	riderID   *kernel.ID
	status    Status
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewBatch creates a pending batch. Duplicate order ids are collapsed.
// A nil riderID leaves the batch unassigned.
func NewBatch(id kernel.ID, orderIDs []kernel.ID, riderID *kernel.ID, now time.Time) (*Batch, error) {
	b := &Batch{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrders(orderIDs),
		b.setRider(riderID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Batch was built by NewBatch or Restore.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// ID returns the batch identifier.
func (b *Batch) ID() kernel.ID {
	return b.id
}

// OrderIDs returns a copy of the member order ids in insertion order.
func (b *Batch) OrderIDs() []kernel.ID {
	return slices.Clone(b.orderIDs)
}

// Rider returns the assigned rider, or nil.
func (b *Batch) Rider() *kernel.ID {
	if b.riderID == nil {
		return nil
	}
	id := *b.riderID
	return &id
}

// Status returns the lifecycle status.
func (b *Batch) Status() Status {
	return b.status
}

// IsOpen reports whether the batch is pending or in progress.
func (b *Batch) IsOpen() bool {
	return b.status.IsOpen()
}

// CreatedAt returns the creation time.
func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (b *Batch) UpdatedAt() time.Time {
	return b.updatedAt
}

// Contains reports whether orderID is a member.
func (b *Batch) Contains(orderID kernel.ID) bool {
	return slices.ContainsFunc(b.orderIDs, orderID.IsEqual)
}

// AddOrder appends orderID unless it is already a member.
// Returns whether the batch changed.
func (b *Batch) AddOrder(orderID kernel.ID, now time.Time) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if b.Contains(orderID) {
		return false, nil
	}
	b.orderIDs = append(b.orderIDs, orderID)
	b.updatedAt = now
	return true, nil
}

// RemoveOrder drops orderID. A batch may become empty this way; the
// registry keeps empty batches until they are deleted.
// Returns whether the batch changed.
func (b *Batch) RemoveOrder(orderID kernel.ID, now time.Time) bool {
	idx := slices.IndexFunc(b.orderIDs, orderID.IsEqual)
	if idx < 0 {
		return false
	}
	b.orderIDs = slices.Delete(b.orderIDs, idx, idx+1)
	b.updatedAt = now
	return true
}

// ReplaceOrders swaps the member list and reports which ids left and which joined.
func (b *Batch) ReplaceOrders(orderIDs []kernel.ID, now time.Time) (removed, added []kernel.ID, err error) {
	previous := b.orderIDs
	if err := b.setOrders(orderIDs); err != nil {
		return nil, nil, err
	}

	for _, id := range previous {
		if !slices.ContainsFunc(b.orderIDs, id.IsEqual) {
			removed = append(removed, id)
		}
	}
	for _, id := range b.orderIDs {
		if !slices.ContainsFunc(previous, id.IsEqual) {
			added = append(added, id)
		}
	}
	b.updatedAt = now
	return removed, added, nil
}

// AssignRider hands the batch to riderID.
func (b *Batch) AssignRider(riderID kernel.ID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	b.riderID = &riderID
	b.updatedAt = now
	return nil
}

// ClearRider removes the rider. Returns false when none was set.
func (b *Batch) ClearRider(now time.Time) bool {
	if b.riderID == nil {
		return false
	}
	b.riderID = nil
	b.updatedAt = now
	return true
}

// ChangeStatus moves the batch to next. Returns whether the status changed.
func (b *Batch) ChangeStatus(next Status, now time.Time) (bool, error) {
	if err := b.status.ValidateTransition(next); err != nil {
		return false, err
	}
	if next == b.status {
		return false, nil
	}
	b.status = next
	b.updatedAt = now
	return true, nil
}

func (b *Batch) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setOrders(orderIDs []kernel.ID) error {
	unique := make([]kernel.ID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if !slices.ContainsFunc(unique, id.IsEqual) {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return ErrOrdersAreRequired
	}
	b.orderIDs = unique
	return nil
}

func (b *Batch) setRider(riderID *kernel.ID) error {
	if riderID == nil {
		return nil
	}
	if err := riderID.Validate(); err != nil {
		return err
	}
	id := *riderID
	b.riderID = &id
	return nil
}
