package jobs_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(v)
	require.NoError(t, err)
	return id
}
