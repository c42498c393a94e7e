package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
)

// CreateRiderCommandHandler registers riders.
type CreateRiderCommandHandler struct {
	uowFactory  RiderUoWFactory
	broadcaster ports.Broadcaster
}

func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory, broadcaster ports.Broadcaster) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle stores the rider and emits rider_status_updated to admin and rider.
// A taken id yields ObjectAlreadyExistsError.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := rider.NewRider(cmd.RiderID(), cmd.Name(), cmd.Profile(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	broadcast(h.broadcaster, riderEvent(r), notification.Admin, notification.Rider)
	return r, nil
}
