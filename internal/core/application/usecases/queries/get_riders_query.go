package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery lists riders, optionally only those currently available.
//
// Example:
//
//	query := NewGetRidersQuery(true)
//	riders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available riders: %w", err)
//	}
type GetRidersQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewGetRidersQuery(availableOnly bool) GetRidersQuery {
	return GetRidersQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRidersQueryIsNotConstructed if validation fails.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

func (q GetRidersQuery) AvailableOnly() bool {
	return q.availableOnly
}
