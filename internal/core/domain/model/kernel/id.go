package kernel

import (
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is an opaque, externally visible identifier of an order, rider or batch.
//
// Identifiers generated by the core are random UUIDs, but identifiers coming
// from outside (a rider registered under an identity-provider subject, order
// ids supplied to a batch) are arbitrary non-empty strings, so ID keeps the
// textual form rather than a parsed uuid.UUID.
//
// The zero value is invalid.
//
// Example:
//
//	id := kernel.NewID()
//	riderID, err := kernel.IDFromString("R1")
//	if err != nil {
//	    // empty identifier
//	}
type ID struct {
	value string
}

// NewID generates a new random identifier (UUID version 4).
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString wraps an externally supplied identifier.
// Surrounding whitespace is trimmed; an empty result is rejected.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// IDsFromStrings converts a list of identifiers, rejecting any empty entry.
func IDsFromStrings(values []string) ([]ID, error) {
	ids := make([]ID, 0, len(values))
	for _, v := range values {
		id, err := IDFromString(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// String returns the textual form of the identifier.
func (i ID) String() string {
	return i.value
}

// IsZero reports whether the identifier is unset.
func (i ID) IsZero() bool {
	return i.value == ""
}

// IsEqual compares two identifiers.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
