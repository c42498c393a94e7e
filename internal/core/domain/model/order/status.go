package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending ─> confirmed ─> preparing ─> ready ─> assigned ─> out_for_delivery ─> delivered
//	   │            │            │          │         │               │
//	   └────────────┴────────────┴──────────┴─────────┴───────────────┴──> cancelled
//
// Forward moves may skip steps (a kitchen that marks an order ready straight
// from pending is accepted). Moving backwards or leaving delivered/cancelled is
// rejected. Re-applying the current status is not a transition at all and is
// reported as "no change" by Order.ChangeStatus.
type Status string

const (
	Pending        Status = "pending"
	Confirmed      Status = "confirmed"
	Preparing      Status = "preparing"
	Ready          Status = "ready"
	Assigned       Status = "assigned"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
	Cancelled      Status = "cancelled"
)

// ladder positions of the non-cancelled statuses.
var statusRank = map[Status]int{
	Pending:        1,
	Confirmed:      2,
	Preparing:      3,
	Ready:          4,
	Assigned:       5,
	OutForDelivery: 6,
	Delivered:      7,
}

// ParseStatus converts an external status string.
// Unknown values yield a ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := statusRank[s]; ok || s == Cancelled {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateTransition checks that moving from s to next is legal.
// next == s is legal (idempotent re-application).
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s == next {
		return nil
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal, cannot move to %s", s, next),
		)
	}
	if next == Cancelled {
		return nil
	}
	if statusRank[next] < statusRank[s] {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot move back to %s", s, next),
		)
	}
	return nil
}

// ValidateAssign checks that an order in status s may be handed to a rider.
func (s Status) ValidateAssign() error {
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return nil
}

// Assign returns the status an order takes when it is handed to a rider:
// assigned, or the current status when the order is already further along.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return "", err
	}
	if statusRank[s] > statusRank[Assigned] {
		return s, nil
	}
	return Assigned, nil
}
