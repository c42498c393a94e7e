package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("1", 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	customer, err := kernel.IDFromString("C1")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewID(), customer, []order.Item{item}, order.Details{}, now)
	require.NoError(t, err)
	return o
}

func newRider(t *testing.T, id string) *rider.Rider {
	t.Helper()
	riderID, err := kernel.IDFromString(id)
	require.NoError(t, err)
	r, err := rider.NewRider(riderID, "Rider "+id, rider.Profile{}, now)
	require.NoError(t, err)
	return r
}

func newBatch(t *testing.T, r *rider.Rider, orders ...*order.Order) *batch.Batch {
	t.Helper()
	ids := make([]kernel.ID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	var riderID *kernel.ID
	if r != nil {
		id := r.ID()
		riderID = &id
	}
	b, err := batch.NewBatch(kernel.NewID(), ids, riderID, now)
	require.NoError(t, err)
	return b
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("should create a batch when the rider has none", func(t *testing.T) {
		o := newOrder(t)
		r := newRider(t, "R1")

		d, err := dispatcher.Dispatch(o, r, nil, nil, now)

		require.NoError(t, err)
		assert.True(t, d.Created)
		assert.Nil(t, d.Previous)
		require.NotNil(t, d.Target)
		assert.True(t, d.Target.Contains(o.ID()))
		assert.Equal(t, "R1", d.Target.Rider().String())
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, "R1", o.Rider().String())
	})

	t.Run("should join the oldest pending batch of the rider", func(t *testing.T) {
		o := newOrder(t)
		r := newRider(t, "R1")
		started := newBatch(t, r, newOrder(t))
		_, err := started.ChangeStatus(batch.InProgress, now)
		require.NoError(t, err)
		pending := newBatch(t, r, newOrder(t))
		other := newBatch(t, newRider(t, "R2"), newOrder(t))

		d, err := dispatcher.Dispatch(o, r, nil, []*batch.Batch{other, started, pending}, now)

		require.NoError(t, err)
		assert.False(t, d.Created)
		assert.Same(t, pending, d.Target)
		assert.True(t, pending.Contains(o.ID()))
		assert.False(t, started.Contains(o.ID()))
	})

	t.Run("should move the order out of its previous batch", func(t *testing.T) {
		o := newOrder(t)
		r1, r2 := newRider(t, "R1"), newRider(t, "R2")
		previous := newBatch(t, r1, o, newOrder(t))

		d, err := dispatcher.Dispatch(o, r2, previous, nil, now)

		require.NoError(t, err)
		assert.Same(t, previous, d.Previous)
		assert.False(t, previous.Contains(o.ID()))
		assert.True(t, d.Target.Contains(o.ID()))
		assert.Equal(t, "R2", o.Rider().String())
	})

	t.Run("should keep the order in an open batch of the same rider", func(t *testing.T) {
		o := newOrder(t)
		r := newRider(t, "R1")
		current := newBatch(t, r, o)

		d, err := dispatcher.Dispatch(o, r, current, []*batch.Batch{current}, now)

		require.NoError(t, err)
		assert.Same(t, current, d.Target)
		assert.False(t, d.Created)
		assert.Nil(t, d.Previous)
	})

	t.Run("should reject terminal orders without side effects", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.ChangeStatus(order.Delivered, now)
		require.NoError(t, err)
		r := newRider(t, "R1")
		pending := newBatch(t, r, newOrder(t))

		_, err = dispatcher.Dispatch(o, r, nil, []*batch.Batch{pending}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.Rider())
		assert.False(t, pending.Contains(o.ID()))
	})

	t.Run("should reject a current batch that does not hold the order", func(t *testing.T) {
		o := newOrder(t)
		r := newRider(t, "R1")

		_, err := dispatcher.Dispatch(o, r, newBatch(t, nil, newOrder(t)), nil, now)

		require.ErrorIs(t, err, services.ErrBatchBelongsToAnotherOrder)
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		_, err := dispatcher.Dispatch(&order.Order{}, &rider.Rider{}, nil, nil, now)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, err, rider.ErrRiderIsNotConstructed)
	})
}
