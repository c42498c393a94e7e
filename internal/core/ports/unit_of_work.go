package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one mutating operation. Between Begin and
// Commit/Rollback no other unit of work can observe or change the registries;
// staged changes become visible to readers only on Commit.
type UnitOfWork interface {
	// Begin starts the unit of work. It blocks while another one is active
	// and gives up with ctx.Err() when ctx is done first.
	Begin(ctx context.Context) error

	// Commit applies every staged change at once.
	// Returns ErrNoActiveTransaction when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback discards staged changes.
	// Returns ErrNoActiveTransaction after Commit, which callers ignore in defer.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	RiderRepository() RiderRepository
	BatchRepository() BatchRepository
}
