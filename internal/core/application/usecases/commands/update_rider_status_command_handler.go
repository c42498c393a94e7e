package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// UpdateRiderStatusCommandHandler sets rider availability.
type UpdateRiderStatusCommandHandler struct {
	uowFactory  RiderUoWFactory
	broadcaster ports.Broadcaster
	audit       ports.AuditLog
}

func NewUpdateRiderStatusCommandHandler(
	uowFactory RiderUoWFactory,
	broadcaster ports.Broadcaster,
	audit ports.AuditLog,
) UpdateRiderStatusCommandHandler {
	return UpdateRiderStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		audit:       audit,
	}
}

// Handle sets the status. Any known status is accepted from any other, and
// the update is audited and announced even when the status was already set,
// so a reconnecting rider app can re-assert its state.
func (h UpdateRiderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRiderStatusCommand) (*rider.Rider, error) {
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
	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}

	previous := r.Status()
	if _, err = r.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx, AuditRiderStatusUpdated, map[string]any{
		"riderId": r.ID().String(),
		"from":    previous,
		"to":      r.Status(),
	})
	broadcast(h.broadcaster, riderEvent(r), notification.Admin, notification.Rider)
	return r, nil
}
