package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteBatchCommandIsNotConstructed = errors.New(
	"DeleteBatchCommand must be created via NewDeleteBatchCommand constructor",
)

// DeleteBatchCommand dissolves a delivery run.
type DeleteBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteBatchCommand(batchID string) (DeleteBatchCommand, error) {
	id, err := kernel.IDFromString(batchID)
	if err != nil {
		return DeleteBatchCommand{}, err
	}
	return DeleteBatchCommand{batchID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteBatchCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBatchCommandIsNotConstructed)
}

func (c DeleteBatchCommand) BatchID() kernel.ID {
	return c.batchID
}
