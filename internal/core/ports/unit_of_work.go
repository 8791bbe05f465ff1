package ports

import "context"

// UnitOfWork coordinates a transaction across the cart and order
// repositories. Implementations hand out repositories bound to the active
// transaction; changes become visible to other readers only after Commit.
type UnitOfWork interface {
	// Begin starts a transaction. Calling Begin on an already active unit
	// of work is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all changes permanent and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes since Begin. Rolling back after a
	// commit, as the deferred cleanup in command handlers does, has no
	// effect on committed state.
	Rollback(ctx context.Context) error

	// CartRepository returns the cart repository bound to this transaction.
	CartRepository() CartRepository

	// OrderRepository returns the order repository bound to this transaction.
	OrderRepository() OrderRepository
}
