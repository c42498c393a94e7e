package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("orderID", "O1"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("riderID", "R1")), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("riderID", "R1"), http.StatusConflict},
		{"invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000), http.StatusBadRequest},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("status")), http.StatusBadRequest},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := statusOf(tt.err)

			assert.Equal(t, tt.want, code)
			assert.NotEmpty(t, message)
		})
	}
}

func TestStatusOf_HidesInternalErrors(t *testing.T) {
	_, message := statusOf(errors.New("password=secret"))

	assert.NotContains(t, message, "secret")
}

func TestItemRef_AcceptsStringsAndNumbers(t *testing.T) {
	var items []OrderItemRequest
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"burger","quantity":2},{"id":7,"qty":3},{"id":1.5}]`), &items))

	got := orderItems(items)

	require.Len(t, got, 3)
	assert.Equal(t, "burger", got[0].ID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, "7", got[1].ID)
	assert.Equal(t, 3, got[1].Quantity)
	assert.Equal(t, "1.5", got[2].ID)
	assert.Equal(t, 0, got[2].Quantity)
}

func TestItemRef_RejectsObjects(t *testing.T) {
	var ref ItemRef

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &ref))
}
