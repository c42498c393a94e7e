package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// RestoreResult counts the records loaded per registry.
type RestoreResult struct {
	Orders  int
	Riders  int
	Batches int
}

// RestoreSnapshotCommandHandler loads the registries from the snapshot store.
type RestoreSnapshotCommandHandler struct {
	uowFactory UoWFactory
	store      ports.SnapshotStore
}

func NewRestoreSnapshotCommandHandler(uowFactory UoWFactory, store ports.SnapshotStore) RestoreSnapshotCommandHandler {
	return RestoreSnapshotCommandHandler{
		uowFactory: uowFactory,
		store:      store,
	}
}

// Handle loads every document that exists; missing documents leave their
// registry as it is. Records already present are overwritten. Either all
// documents are applied or, on any decode or validation error, none.
func (h RestoreSnapshotCommandHandler) Handle(ctx context.Context, cmd RestoreSnapshotCommand) (RestoreResult, error) {
	if err := cmd.Validate(); err != nil {
		return RestoreResult{}, err
	}

	orders, err := load(ctx, h.store, SnapshotOrders, order.Restore)
	if err != nil {
		return RestoreResult{}, err
	}
	riders, err := load(ctx, h.store, SnapshotRiders, rider.Restore)
	if err != nil {
		return RestoreResult{}, err
	}
	batches, err := load(ctx, h.store, SnapshotBatches, batch.Restore)
	if err != nil {
		return RestoreResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RestoreResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if err = upsert(ctx, o, orderRepo.Add, orderRepo.Update); err != nil {
			return RestoreResult{}, err
		}
	}
	riderRepo := uow.RiderRepository()
	for _, r := range riders {
		if err = upsert(ctx, r, riderRepo.Add, riderRepo.Update); err != nil {
			return RestoreResult{}, err
		}
	}
	batchRepo := uow.BatchRepository()
	for _, b := range batches {
		if err = upsert(ctx, b, batchRepo.Add, batchRepo.Update); err != nil {
			return RestoreResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RestoreResult{}, err
	}

	return RestoreResult{Orders: len(orders), Riders: len(riders), Batches: len(batches)}, nil
}

// load reads and decodes one document. A missing document yields no records.
func load[S any, A any](
	ctx context.Context,
	store ports.SnapshotStore,
	name string,
	restore func(S) (A, error),
) ([]A, error) {
	data, err := store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s snapshot: %w", name, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var snapshots []S
	if err = json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", name, err)
	}

	out := make([]A, 0, len(snapshots))
	for _, s := range snapshots {
		a, restoreErr := restore(s)
		if restoreErr != nil {
			return nil, fmt.Errorf("restore %s snapshot: %w", name, restoreErr)
		}
		out = append(out, a)
	}
	return out, nil
}

func upsert[A any](
	ctx context.Context,
	aggregate A,
	add, update func(context.Context, A) error,
) error {
	err := add(ctx, aggregate)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return update(ctx, aggregate)
	}
	return err
}
