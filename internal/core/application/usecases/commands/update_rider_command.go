package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateRiderCommandIsNotConstructed = errors.New(
	"UpdateRiderCommand must be created via NewUpdateRiderCommand constructor",
)

// RiderChanges is a partial rider profile update. Nil fields are left untouched.
type RiderChanges struct {
	Name     *string
	Phone    *string
	Location *Position
}

// UpdateRiderCommand edits a rider's profile or reports a new location.
type UpdateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.ID
	patch   rider.Patch

	guard guard.ConstructorGuard
}

func NewUpdateRiderCommand(riderID string, changes RiderChanges) (UpdateRiderCommand, error) {
	id, idErr := kernel.IDFromString(riderID)
	loc, locErr := changes.Location.location()
	if err := errors.Join(idErr, locErr); err != nil {
		return UpdateRiderCommand{}, err
	}

	return UpdateRiderCommand{
		riderID: id,
		patch: rider.Patch{
			Name:     changes.Name,
			Phone:    changes.Phone,
			Location: loc,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRiderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderCommandIsNotConstructed)
}

func (c UpdateRiderCommand) RiderID() kernel.ID {
	return c.riderID
}

func (c UpdateRiderCommand) Patch() rider.Patch {
	return c.patch
}
