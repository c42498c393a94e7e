package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via a NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, optionally restricted to one customer or one rider.
//
// Example:
//
//	all := NewGetOrdersQuery()
//	mine, err := NewGetOrdersByCustomerQuery("C1")
//	assigned, err := NewGetOrdersByRiderQuery("R1")
type GetOrdersQuery struct {
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery lists every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByCustomerQuery lists the orders placed by customerID.
func NewGetOrdersByCustomerQuery(customerID string) (GetOrdersQuery, error) {
	id, err := kernel.IDFromString(customerID)
	if err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{filter: ports.OrderFilter{CustomerID: id}, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrdersByRiderQuery lists the orders currently assigned to riderID.
func NewGetOrdersByRiderQuery(riderID string) (GetOrdersQuery, error) {
	id, err := kernel.IDFromString(riderID)
	if err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{filter: ports.OrderFilter{RiderID: id}, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}
