package batch_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)

func ids(t *testing.T, values ...string) []kernel.ID {
	t.Helper()
	out, err := kernel.IDsFromStrings(values)
	require.NoError(t, err)
	return out
}

func strs(in []kernel.ID) []string {
	out := make([]string, 0, len(in))
	for _, id := range in {
		out = append(out, id.String())
	}
	return out
}

func TestNewBatch(t *testing.T) {
	t.Run("deduplicates order ids keeping first occurrence order", func(t *testing.T) {
		b, err := batch.NewBatch(kernel.NewID(), ids(t, "o2", "o1", "o2", "o3", "o1"), nil, t0)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, []string{"o2", "o1", "o3"}, strs(b.OrderIDs()))
		assert.Equal(t, batch.Pending, b.Status())
		assert.Nil(t, b.Rider())
		assert.True(t, b.IsOpen())
	})

	t.Run("records the rider", func(t *testing.T) {
		rider := ids(t, "R1")[0]
		b, err := batch.NewBatch(kernel.NewID(), ids(t, "o1"), &rider, t0)

		require.NoError(t, err)
		require.NotNil(t, b.Rider())
		assert.Equal(t, "R1", b.Rider().String())
	})

	t.Run("requires at least one order", func(t *testing.T) {
		_, err := batch.NewBatch(kernel.NewID(), nil, nil, t0)
		require.ErrorIs(t, err, batch.ErrOrdersAreRequired)
		require.True(t, errs.IsValidation(err))
	})
}

func TestBatch_Validate_ZeroValue(t *testing.T) {
	var b batch.Batch
	require.ErrorIs(t, b.Validate(), batch.ErrBatchIsNotConstructed)
}

func TestBatch_Membership(t *testing.T) {
	b, err := batch.NewBatch(kernel.NewID(), ids(t, "o1", "o2"), nil, t0)
	require.NoError(t, err)
	o3 := ids(t, "o3")[0]

	added, err := b.AddOrder(o3, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, b.Contains(o3))

	added, err = b.AddOrder(o3, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, t0.Add(time.Minute), b.UpdatedAt())

	assert.True(t, b.RemoveOrder(ids(t, "o1")[0], t0))
	assert.False(t, b.RemoveOrder(ids(t, "o1")[0], t0))
	assert.Equal(t, []string{"o2", "o3"}, strs(b.OrderIDs()))
}

func TestBatch_ReplaceOrders(t *testing.T) {
	b, err := batch.NewBatch(kernel.NewID(), ids(t, "o1", "o2"), nil, t0)
	require.NoError(t, err)

	removed, added, err := b.ReplaceOrders(ids(t, "o2", "o3", "o3"), t0)

	require.NoError(t, err)
	assert.Equal(t, []string{"o1"}, strs(removed))
	assert.Equal(t, []string{"o3"}, strs(added))
	assert.Equal(t, []string{"o2", "o3"}, strs(b.OrderIDs()))

	_, _, err = b.ReplaceOrders(nil, t0)
	require.ErrorIs(t, err, batch.ErrOrdersAreRequired)
	assert.Equal(t, []string{"o2", "o3"}, strs(b.OrderIDs()))
}

func TestBatch_Rider(t *testing.T) {
	b, err := batch.NewBatch(kernel.NewID(), ids(t, "o1"), nil, t0)
	require.NoError(t, err)

	assert.False(t, b.ClearRider(t0))
	require.NoError(t, b.AssignRider(ids(t, "R2")[0], t0))
	assert.Equal(t, "R2", b.Rider().String())
	assert.True(t, b.ClearRider(t0))
	assert.Nil(t, b.Rider())

	require.ErrorIs(t, b.AssignRider(kernel.ID{}, t0), kernel.ErrIDIsNotConstructed)
}

func TestStatus_ValidateTransition(t *testing.T) {
	testCases := []struct {
		from, to batch.Status
		ok       bool
	}{
		{batch.Pending, batch.InProgress, true},
		{batch.Pending, batch.Completed, true},
		{batch.InProgress, batch.Completed, true},
		{batch.Pending, batch.Cancelled, true},
		{batch.InProgress, batch.Cancelled, true},
		{batch.Completed, batch.Completed, true},
		{batch.InProgress, batch.Pending, false},
		{batch.Completed, batch.Cancelled, false},
		{batch.Cancelled, batch.Pending, false},
		{batch.Pending, batch.Status("paused"), false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			err := tc.from.ValidateTransition(tc.to)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestBatch_ChangeStatus(t *testing.T) {
	b, err := batch.NewBatch(kernel.NewID(), ids(t, "o1"), nil, t0)
	require.NoError(t, err)

	changed, err := b.ChangeStatus(batch.Pending, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = b.ChangeStatus(batch.Completed, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, b.IsOpen())

	_, err = b.ChangeStatus(batch.InProgress, t0)
	require.Error(t, err)
	assert.Equal(t, batch.Completed, b.Status())
}

func TestRestore(t *testing.T) {
	rider := ids(t, "R1")[0]
	b, err := batch.NewBatch(kernel.NewID(), ids(t, "o1", "o2"), &rider, t0)
	require.NoError(t, err)

	restored, err := batch.Restore(b.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, b.Snapshot(), restored.Snapshot())

	b.RemoveOrder(ids(t, "o1")[0], t0)
	b.RemoveOrder(ids(t, "o2")[0], t0)
	empty, err := batch.Restore(b.Snapshot())
	require.NoError(t, err)
	assert.Empty(t, empty.OrderIDs())

	_, err = batch.Restore(batch.Snapshot{ID: "", Status: "paused"})
	require.Error(t, err)
}
