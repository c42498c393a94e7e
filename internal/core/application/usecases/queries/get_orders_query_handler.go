package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetOrdersQueryHandler lists orders from the read model, oldest first.
type GetOrdersQueryHandler struct {
	reader OrderReader
}

func NewGetOrdersQueryHandler(reader OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: reader}
}

// Handle returns a non-nil slice, empty when nothing matches.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.Orders(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]order.Snapshot, 0)
	}
	return orders, nil
}
