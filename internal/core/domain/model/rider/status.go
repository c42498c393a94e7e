package rider

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the availability of a rider.
type Status string

const (
	Available Status = "available"
	Busy      Status = "busy"
	Offline   Status = "offline"
)

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
	switch s {
	case Available, Busy, Offline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid rider status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
