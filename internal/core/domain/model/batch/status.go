package batch

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery run.
//
//	pending ─> in_progress ─> completed
//	   └───────────┴──────────> cancelled
type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Cancelled  Status = "cancelled"
)

var statusRank = map[Status]int{
	Pending:    1,
	InProgress: 2,
	Completed:  3,
}

// ParseStatus converts an external status string.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is a known status.
func (s Status) Validate() error {
	if _, ok := statusRank[s]; ok || s == Cancelled {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid batch status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// IsOpen reports whether the batch still has work ahead of it.
func (s Status) IsOpen() bool {
	return s == Pending || s == InProgress
}

// ValidateTransition checks that moving from s to next is legal.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s == next {
		return nil
	}
	if !s.IsOpen() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("batch is %s", s))
	}
	if next == Cancelled || statusRank[next] > statusRank[s] {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%s cannot move back to %s", s, next))
}
