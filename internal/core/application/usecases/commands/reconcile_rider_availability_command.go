package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrReconcileRiderAvailabilityCommandIsNotConstructed = errors.New(
	"ReconcileRiderAvailabilityCommand must be created via NewReconcileRiderAvailabilityCommand constructor",
)

// ReconcileRiderAvailabilityCommand marks riders that still have open batches as busy.
// This is a parameterless command run periodically by a job.
type ReconcileRiderAvailabilityCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileRiderAvailabilityCommand() ReconcileRiderAvailabilityCommand {
	return ReconcileRiderAvailabilityCommand{guard: guard.NewConstructorGuard()}
}

func (c ReconcileRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRiderAvailabilityCommandIsNotConstructed)
}
