package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := kernel.NewID()

	require.NoError(t, id.Validate())
	_, err := uuid.Parse(id.String())
	require.NoError(t, err)
	assert.False(t, id.IsEqual(kernel.NewID()))
}

func TestIDFromString(t *testing.T) {
	t.Run("accepts arbitrary non-empty identifiers", func(t *testing.T) {
		id, err := kernel.IDFromString("  R1 ")

		require.NoError(t, err)
		assert.Equal(t, "R1", id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("rejects blank identifiers", func(t *testing.T) {
		for _, in := range []string{"", "   ", "\t"} {
			_, err := kernel.IDFromString(in)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestIDsFromStrings(t *testing.T) {
	ids, err := kernel.IDsFromStrings([]string{"O1", "O2"})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "O2", ids[1].String())

	_, err = kernel.IDsFromStrings([]string{"O1", ""})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.True(t, id.IsZero())
	require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
}
