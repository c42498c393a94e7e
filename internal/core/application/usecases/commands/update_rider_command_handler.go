package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// UpdateRiderCommandHandler applies rider profile updates.
type UpdateRiderCommandHandler struct {
	uowFactory  RiderUoWFactory
	broadcaster ports.Broadcaster
}

func NewUpdateRiderCommandHandler(uowFactory RiderUoWFactory, broadcaster ports.Broadcaster) UpdateRiderCommandHandler {
	return UpdateRiderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle applies the patch and emits rider_status_updated to admin and rider.
func (h UpdateRiderCommandHandler) Handle(ctx context.Context, cmd UpdateRiderCommand) (*rider.Rider, error) {
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

	if err = r.Update(cmd.Patch(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcast(h.broadcaster, riderEvent(r), notification.Admin, notification.Rider)
	return r, nil
}
