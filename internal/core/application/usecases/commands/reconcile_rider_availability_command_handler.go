package commands

import (
	"context"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// ReconcileRiderAvailabilityCommandHandler keeps riders with pending or
// in-progress batches out of the available pool.
type ReconcileRiderAvailabilityCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
}

func NewReconcileRiderAvailabilityCommandHandler(
	uowFactory UoWFactory,
	broadcaster ports.Broadcaster,
	audit ports.AuditLog,
) ReconcileRiderAvailabilityCommandHandler {
	return ReconcileRiderAvailabilityCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		audit:       audit,
	}
}

// Handle switches every available rider owning an open batch to busy and
// returns those riders. Each switch is audited and announced like a manual
// status update. Riders are never switched back automatically.
func (h ReconcileRiderAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileRiderAvailabilityCommand,
) ([]*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	batchRepo := uow.BatchRepository()

	available, err := riderRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	busy := make([]*rider.Rider, 0)
	for _, r := range available {
		batches, batchErr := batchRepo.GetByRider(ctx, r.ID())
		if batchErr != nil {
			return nil, batchErr
		}
		if !slices.ContainsFunc(batches, (*batch.Batch).IsOpen) {
			continue
		}

		if _, err = r.ChangeStatus(rider.Busy, now); err != nil {
			return nil, err
		}
		if err = riderRepo.Update(ctx, r); err != nil {
			return nil, err
		}
		busy = append(busy, r)
	}

	if len(busy) == 0 {
		return busy, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, r := range busy {
		h.audit.Record(ctx, AuditRiderStatusUpdated, map[string]any{
			"riderId": r.ID().String(),
			"from":    rider.Available,
			"to":      rider.Busy,
		})
		broadcast(h.broadcaster, riderEvent(r), notification.Admin, notification.Rider)
	}
	return busy, nil
}
