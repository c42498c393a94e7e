package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("batch not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("embedded_guard_detects_struct_literals", func(t *testing.T) {
		type ticket struct {
			id    string
			guard guard.ConstructorGuard
		}
		errTicket := errors.New("ticket must be created via newTicket")
		newTicket := func(id string) ticket {
			return ticket{id: id, guard: guard.NewConstructorGuard()}
		}

		require.NoError(t, newTicket("T1").guard.Validate(errTicket))
		require.ErrorIs(t, ticket{id: "T2"}.guard.Validate(errTicket), errTicket)
	})
}
