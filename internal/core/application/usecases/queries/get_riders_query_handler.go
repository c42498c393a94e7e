package queries

import (
	"context"

	"dispatch/internal/core/domain/model/rider"
)

// GetRidersQueryHandler lists riders from the read model, oldest first.
type GetRidersQueryHandler struct {
	reader RiderReader
}

func NewGetRidersQueryHandler(reader RiderReader) GetRidersQueryHandler {
	return GetRidersQueryHandler{reader: reader}
}

// Handle returns a non-nil slice, empty when nothing matches.
func (h GetRidersQueryHandler) Handle(ctx context.Context, query GetRidersQuery) ([]rider.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders, err := h.reader.Riders(ctx, query.AvailableOnly())
	if err != nil {
		return nil, err
	}
	if riders == nil {
		riders = make([]rider.Snapshot, 0)
	}
	return riders, nil
}
