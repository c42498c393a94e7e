package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetRiderQueryIsNotConstructed = errors.New(
	"GetRiderQuery must be created via NewGetRiderQuery constructor",
)

// GetRiderQuery retrieves a single rider.
type GetRiderQuery struct {
	riderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetRiderQuery(riderID string) (GetRiderQuery, error) {
	id, err := kernel.IDFromString(riderID)
	if err != nil {
		return GetRiderQuery{}, err
	}
	return GetRiderQuery{riderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderQueryIsNotConstructed)
}

func (q GetRiderQuery) RiderID() kernel.ID {
	return q.riderID
}
