package http

import (
	"encoding/json"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
)

// ItemRef is an item reference sent either as a JSON string or a number.
type ItemRef string

func (r *ItemRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ItemRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = ItemRef(n.String())
	return nil
}

// OrderItemRequest is one order line. Older clients send the quantity as qty.
type OrderItemRequest struct {
	ID       ItemRef         `json:"id"`
	Quantity *int            `json:"quantity,omitempty"`
	Qty      *int            `json:"qty,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

func (r OrderItemRequest) toCommand() commands.OrderItem {
	quantity := 0
	switch {
	case r.Quantity != nil:
		quantity = *r.Quantity
	case r.Qty != nil:
		quantity = *r.Qty
	}
	return commands.OrderItem{ID: string(r.ID), Quantity: quantity, Price: r.Price}
}

func orderItems(items []OrderItemRequest) []commands.OrderItem {
	out := make([]commands.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.toCommand())
	}
	return out
}

type CreateOrderRequest struct {
	CustomerID      string             `json:"customerId"`
	Items           []OrderItemRequest `json:"items"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Notes           string             `json:"notes"`
}

type UpdateOrderRequest struct {
	Items           *[]OrderItemRequest `json:"items"`
	DeliveryAddress *string             `json:"deliveryAddress"`
	Notes           *string             `json:"notes"`
	Status          *string             `json:"status"`
}

func (r UpdateOrderRequest) toChanges() commands.OrderChanges {
	changes := commands.OrderChanges{
		DeliveryAddress: r.DeliveryAddress,
		Notes:           r.Notes,
		Status:          r.Status,
	}
	if r.Items != nil {
		items := orderItems(*r.Items)
		changes.Items = &items
	}
	return changes
}

type StatusRequest struct {
	Status string `json:"status"`
}

type AssignOrderRequest struct {
	RiderID string `json:"riderId"`
}

type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (r *LocationRequest) toPosition() *commands.Position {
	if r == nil {
		return nil
	}
	return &commands.Position{Lat: r.Lat, Lng: r.Lng}
}

type CreateRiderRequest struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Status   string           `json:"status"`
	Location *LocationRequest `json:"location"`
}

type UpdateRiderRequest struct {
	Name     *string          `json:"name"`
	Phone    *string          `json:"phone"`
	Location *LocationRequest `json:"location"`
}

type CreateBatchRequest struct {
	OrderIDs []string `json:"orderIds"`
	RiderID  string   `json:"riderId"`
}

// UpdateBatchRequest is a partial batch update. A null riderId is treated
// as absent; an empty string clears the rider.
type UpdateBatchRequest struct {
	OrderIDs *[]string `json:"orderIds"`
	RiderID  *string   `json:"riderId"`
	Status   *string   `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
