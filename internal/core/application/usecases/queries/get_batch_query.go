package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetBatchQueryIsNotConstructed = errors.New(
	"GetBatchQuery must be created via NewGetBatchQuery constructor",
)

// GetBatchQuery retrieves a single delivery batch.
type GetBatchQuery struct {
	batchID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetBatchQuery(batchID string) (GetBatchQuery, error) {
	id, err := kernel.IDFromString(batchID)
	if err != nil {
		return GetBatchQuery{}, err
	}
	return GetBatchQuery{batchID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchQueryIsNotConstructed)
}

func (q GetBatchQuery) BatchID() kernel.ID {
	return q.batchID
}
