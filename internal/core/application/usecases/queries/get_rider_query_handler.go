package queries

import (
	"context"

	"dispatch/internal/core/domain/model/rider"
)

type GetRiderQueryHandler struct {
	reader RiderReader
}

func NewGetRiderQueryHandler(reader RiderReader) GetRiderQueryHandler {
	return GetRiderQueryHandler{reader: reader}
}

func (h GetRiderQueryHandler) Handle(ctx context.Context, query GetRiderQuery) (rider.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return rider.Snapshot{}, err
	}
	return h.reader.Rider(ctx, query.RiderID().String())
}
