package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when an order has no lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrCustomerIsRequired is returned when an order has no customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customerId")
)

// Details carries the free-form delivery information attached to an order.
type Details struct {
	DeliveryAddress string
	Notes           string
}

// Patch describes a partial update of an order. Nil fields are left untouched.
type Patch struct {
	Items           []Item
	DeliveryAddress *string
	Notes           *string
	Status          *Status
}

// Order is a customer's purchase request moving through the delivery lifecycle.
// It is the aggregate root owned by the order registry.
//
// Order follows these invariants:
//   - id and customer are always set
//   - there is at least one item, and total is the sum of item subtotals
//   - status only moves forward along the ladder, except for cancellation
//   - a rider is recorded only through AssignToRider and removed only through UnlinkRider
//
// Fields are private; every mutation goes through a method that enforces the rules
// above and bumps updatedAt.
type Order struct {
	id              kernel.ID
	customerID      kernel.ID
	items           []Item
	total           decimal.Decimal
	status          Status
	riderID         *kernel.ID
	deliveryAddress string
	notes           string
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order with its total computed from items.
//
// Example:
//
//	item, _ := order.NewItem("margherita", 2, decimal.RequireFromString("7.50"))
//	o, err := order.NewOrder(kernel.NewID(), customerID, []order.Item{item}, order.Details{}, time.Now())
//	if err != nil {
//	    // missing customer or items
//	}
func NewOrder(id, customerID kernel.ID, items []Item, details Details, now time.Time) (*Order, error) {
	o := &Order{
		status:          Pending,
		deliveryAddress: strings.TrimSpace(details.DeliveryAddress),
		notes:           strings.TrimSpace(details.Notes),
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or Restore.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Total returns the sum of all item subtotals.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rider returns the assigned rider, or nil.
func (o *Order) Rider() *kernel.ID {
	if o.riderID == nil {
		return nil
	}
	id := *o.riderID
	return &id
}

// DeliveryAddress returns the delivery address supplied by the customer.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns the customer's notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to next.
//
// Returns:
//   - (false, nil) when next equals the current status; nothing is touched
//   - (true, nil) after a legal transition
//   - (false, error) for unknown statuses and illegal transitions
func (o *Order) ChangeStatus(next Status, now time.Time) (bool, error) {
	if err := o.status.ValidateTransition(next); err != nil {
		return false, err
	}
	if next == o.status {
		return false, nil
	}

	o.status = next
	o.updatedAt = now
	return true, nil
}

// AssignToRider records riderID and moves the status forward to assigned.
// Orders already out for delivery keep their status; terminal orders are rejected.
func (o *Order) AssignToRider(riderID kernel.ID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	o.updatedAt = now
	return nil
}

// UnlinkRider clears the rider reference. The status is left as is: leaving
// assigned would be a regression, which only cancellation may cause.
// Returns false when no rider was set.
func (o *Order) UnlinkRider(now time.Time) bool {
	if o.riderID == nil {
		return false
	}
	o.riderID = nil
	o.updatedAt = now
	return true
}

// Update applies a partial update. All fields are validated before anything
// is changed, so a failing patch leaves the order untouched.
// Returns whether anything changed.
func (o *Order) Update(patch Patch, now time.Time) (bool, error) {
	if patch.Status != nil {
		if err := o.status.ValidateTransition(*patch.Status); err != nil {
			return false, err
		}
	}
	if patch.Items != nil {
		if len(patch.Items) == 0 {
			return false, ErrItemsAreRequired
		}
		if o.status.IsTerminal() {
			return false, errs.NewValueIsInvalidError("items of a " + o.status.String() + " order")
		}
	}

	changed := false
	if patch.Items != nil {
		o.items = slices.Clone(patch.Items)
		o.total = total(o.items)
		changed = true
	}
	if patch.DeliveryAddress != nil && strings.TrimSpace(*patch.DeliveryAddress) != o.deliveryAddress {
		o.deliveryAddress = strings.TrimSpace(*patch.DeliveryAddress)
		changed = true
	}
	if patch.Notes != nil && strings.TrimSpace(*patch.Notes) != o.notes {
		o.notes = strings.TrimSpace(*patch.Notes)
		changed = true
	}
	if patch.Status != nil && *patch.Status != o.status {
		o.status = *patch.Status
		changed = true
	}

	if changed {
		o.updatedAt = now
	}
	return changed, nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if customerID.IsZero() {
		return ErrCustomerIsRequired
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = slices.Clone(items)
	o.total = total(o.items)
	return nil
}
