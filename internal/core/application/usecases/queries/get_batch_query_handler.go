package queries

import (
	"context"

	"dispatch/internal/core/domain/model/batch"
)

type GetBatchQueryHandler struct {
	reader BatchReader
}

func NewGetBatchQueryHandler(reader BatchReader) GetBatchQueryHandler {
	return GetBatchQueryHandler{reader: reader}
}

func (h GetBatchQueryHandler) Handle(ctx context.Context, query GetBatchQuery) (batch.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return batch.Snapshot{}, err
	}
	return h.reader.Batch(ctx, query.BatchID().String())
}
