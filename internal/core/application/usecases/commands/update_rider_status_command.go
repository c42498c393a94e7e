package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateRiderStatusCommandIsNotConstructed = errors.New(
	"UpdateRiderStatusCommand must be created via NewUpdateRiderStatusCommand constructor",
)

// UpdateRiderStatusCommand changes a rider's availability.
type UpdateRiderStatusCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.ID
	status  rider.Status

	guard guard.ConstructorGuard
}

func NewUpdateRiderStatusCommand(riderID, status string) (UpdateRiderStatusCommand, error) {
	id, idErr := kernel.IDFromString(riderID)
	parsed, statusErr := rider.ParseStatus(status)
	if err := errors.Join(idErr, statusErr); err != nil {
		return UpdateRiderStatusCommand{}, err
	}

	return UpdateRiderStatusCommand{
		riderID: id,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderStatusCommandIsNotConstructed)
}

func (c UpdateRiderStatusCommand) RiderID() kernel.ID {
	return c.riderID
}

func (c UpdateRiderStatusCommand) Status() rider.Status {
	return c.status
}
