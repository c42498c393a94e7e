package notification

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role is an audience of realtime events. Every connection subscribes to
// one or more roles and receives only the events broadcast to them.
type Role string

const (
	Admin    Role = "admin"
	Rider    Role = "rider"
	Customer Role = "customer"
)

// Roles lists every known role.
func Roles() []Role {
	return []Role{Admin, Rider, Customer}
}

// ParseRole converts an external role string.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case Admin, Rider, Customer:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

func (r Role) String() string {
	return string(r)
}
