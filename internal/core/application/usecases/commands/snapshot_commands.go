package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

// Names of the documents written to the snapshot store.
const (
	SnapshotOrders  = "orders"
	SnapshotRiders  = "riders"
	SnapshotBatches = "batches"
)

var (
	ErrSaveSnapshotCommandIsNotConstructed = errors.New(
		"SaveSnapshotCommand must be created via NewSaveSnapshotCommand constructor",
	)
	ErrRestoreSnapshotCommandIsNotConstructed = errors.New(
		"RestoreSnapshotCommand must be created via NewRestoreSnapshotCommand constructor",
	)
)

// SaveSnapshotCommand exports every registry to the snapshot store.
type SaveSnapshotCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveSnapshotCommand() SaveSnapshotCommand {
	return SaveSnapshotCommand{guard: guard.NewConstructorGuard()}
}

func (c SaveSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrSaveSnapshotCommandIsNotConstructed)
}

// RestoreSnapshotCommand loads the registries from the snapshot store.
// It is run once at boot, before the HTTP server accepts requests.
type RestoreSnapshotCommand struct {
	guard guard.ConstructorGuard
}

func NewRestoreSnapshotCommand() RestoreSnapshotCommand {
	return RestoreSnapshotCommand{guard: guard.NewConstructorGuard()}
}

func (c RestoreSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrRestoreSnapshotCommandIsNotConstructed)
}
