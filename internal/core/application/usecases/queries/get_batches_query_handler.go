package queries

import (
	"context"

	"dispatch/internal/core/domain/model/batch"
)

type GetBatchesQueryHandler struct {
	reader BatchReader
}

func NewGetBatchesQueryHandler(reader BatchReader) GetBatchesQueryHandler {
	return GetBatchesQueryHandler{reader: reader}
}

// Handle returns a non-nil slice, empty when nothing matches.
func (h GetBatchesQueryHandler) Handle(ctx context.Context, query GetBatchesQuery) ([]batch.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	batches, err := h.reader.Batches(ctx, query.RiderID().String())
	if err != nil {
		return nil, err
	}
	if batches == nil {
		batches = make([]batch.Snapshot, 0)
	}
	return batches, nil
}
