package batch

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// Snapshot is the flat, serializable state of a Batch.
type Snapshot struct {
	ID        string    `json:"id"`
	OrderIDs  []string  `json:"orderIds"`
	RiderID   string    `json:"riderId,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot captures the current state.
func (b *Batch) Snapshot() Snapshot {
	orderIDs := make([]string, 0, len(b.orderIDs))
	for _, id := range b.orderIDs {
		orderIDs = append(orderIDs, id.String())
	}
	s := Snapshot{
		ID:        b.id.String(),
		OrderIDs:  orderIDs,
		Status:    b.status,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}
	if b.riderID != nil {
		s.RiderID = b.riderID.String()
	}
	return s
}

// Restore rebuilds a Batch from a snapshot. Unlike NewBatch it accepts an
// empty member list, since batches can be emptied by order deletion.
func Restore(s Snapshot) (*Batch, error) {
	b := &Batch{
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	id, idErr := kernel.IDFromString(s.ID)
	orderIDs, ordersErr := kernel.IDsFromStrings(s.OrderIDs)
	if err := errors.Join(idErr, ordersErr, s.Status.Validate()); err != nil {
		return nil, err
	}
	b.id = id
	b.status = s.Status
	if len(orderIDs) > 0 {
		if err := b.setOrders(orderIDs); err != nil {
			return nil, err
		}
	} else {
		b.orderIDs = []kernel.ID{}
	}

	if s.RiderID != "" {
		riderID, err := kernel.IDFromString(s.RiderID)
		if err != nil {
			return nil, err
		}
		b.riderID = &riderID
	}

	return b, nil
}
