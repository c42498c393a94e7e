package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Snapshot is the flat, serializable state of an Order. It is what the
// registry stores, what clients receive and what the snapshot job persists.
type Snapshot struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	Items           []ItemSnapshot  `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	RiderID         string          `json:"riderId,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ItemSnapshot is the serializable form of an Item.
type ItemSnapshot struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Snapshot captures the current state.
func (o *Order) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, ItemSnapshot{
			ID:       item.ref,
			Quantity: item.quantity,
			Price:    item.price,
		})
	}

	s := Snapshot{
		ID:              o.id.String(),
		CustomerID:      o.customerID.String(),
		Items:           items,
		Total:           o.total,
		Status:          o.status,
		DeliveryAddress: o.deliveryAddress,
		Notes:           o.notes,
		CreatedAt:       o.createdAt,
		UpdatedAt:       o.updatedAt,
	}
	if o.riderID != nil {
		s.RiderID = o.riderID.String()
	}
	return s
}

// Restore rebuilds an Order from a snapshot, re-validating every field.
// The total is recomputed from the items rather than trusted.
func Restore(s Snapshot) (*Order, error) {
	o := &Order{
		deliveryAddress: s.DeliveryAddress,
		notes:           s.Notes,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	id, idErr := kernel.IDFromString(s.ID)
	customerID, customerErr := kernel.IDFromString(s.CustomerID)
	items := make([]Item, 0, len(s.Items))
	var itemErrs []error
	for _, is := range s.Items {
		item, err := NewItem(is.ID, is.Quantity, is.Price)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(
		idErr,
		customerErr,
		errors.Join(itemErrs...),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.status = s.Status

	if s.RiderID != "" {
		riderID, err := kernel.IDFromString(s.RiderID)
		if err != nil {
			return nil, err
		}
		o.riderID = &riderID
	}

	return o, nil
}
