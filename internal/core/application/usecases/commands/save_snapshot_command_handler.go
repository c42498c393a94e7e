package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// SaveSnapshotCommandHandler writes the registries to the snapshot store as
// three JSON documents.
type SaveSnapshotCommandHandler struct {
	uowFactory UoWFactory
	store      ports.SnapshotStore
}

func NewSaveSnapshotCommandHandler(uowFactory UoWFactory, store ports.SnapshotStore) SaveSnapshotCommandHandler {
	return SaveSnapshotCommandHandler{
		uowFactory: uowFactory,
		store:      store,
	}
}

// Handle reads all three registries inside one unit of work, so the
// documents describe a single point in time, then writes them out.
func (h SaveSnapshotCommandHandler) Handle(ctx context.Context, cmd SaveSnapshotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	docs, err := h.export(ctx)
	if err != nil {
		return err
	}

	for _, name := range []string{SnapshotOrders, SnapshotRiders, SnapshotBatches} {
		if err = h.store.Save(ctx, name, docs[name]); err != nil {
			return fmt.Errorf("save %s snapshot: %w", name, err)
		}
	}
	return nil
}

func (h SaveSnapshotCommandHandler) export(ctx context.Context) (map[string][]byte, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().List(ctx, ports.OrderFilter{})
	if err != nil {
		return nil, err
	}
	riders, err := uow.RiderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	batches, err := uow.BatchRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	docs := make(map[string][]byte, 3)
	if docs[SnapshotOrders], err = marshalSnapshots(orders, (*order.Order).Snapshot); err != nil {
		return nil, err
	}
	if docs[SnapshotRiders], err = marshalSnapshots(riders, (*rider.Rider).Snapshot); err != nil {
		return nil, err
	}
	if docs[SnapshotBatches], err = marshalSnapshots(batches, (*batch.Batch).Snapshot); err != nil {
		return nil, err
	}
	return docs, nil
}

func marshalSnapshots[A any, S any](aggregates []A, snapshot func(A) S) ([]byte, error) {
	out := make([]S, 0, len(aggregates))
	for _, a := range aggregates {
		out = append(out, snapshot(a))
	}
	return json.Marshal(out)
}
