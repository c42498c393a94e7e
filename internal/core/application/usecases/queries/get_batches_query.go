package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetBatchesQueryIsNotConstructed = errors.New(
	"GetBatchesQuery must be created via a NewGetBatchesQuery constructor",
)

// GetBatchesQuery lists delivery batches, optionally those of one rider.
type GetBatchesQuery struct {
	riderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetBatchesQuery lists every batch.
func NewGetBatchesQuery() GetBatchesQuery {
	return GetBatchesQuery{guard: guard.NewConstructorGuard()}
}

// NewGetBatchesByRiderQuery lists the batches handed to riderID.
func NewGetBatchesByRiderQuery(riderID string) (GetBatchesQuery, error) {
	id, err := kernel.IDFromString(riderID)
	if err != nil {
		return GetBatchesQuery{}, err
	}
	return GetBatchesQuery{riderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchesQueryIsNotConstructed)
}

// RiderID is the zero ID when every batch is requested.
func (q GetBatchesQuery) RiderID() kernel.ID {
	return q.riderID
}
