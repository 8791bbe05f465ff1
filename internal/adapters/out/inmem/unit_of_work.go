package inmem

import (
	"context"

	"dineease/internal/core/domain/model/order"
	"dineease/internal/core/ports"
)

// UnitOfWorkFactory creates unit of work instances over a shared store.
// Each business operation gets a fresh instance; a unit of work must not be
// reused after Commit or Rollback ends its transaction.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new unit of work ready for Begin.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements transactions over the in-memory store. Begin takes
// the store lock and snapshots the state; repository operations then mutate
// the live state directly. Commit publishes by simply releasing the lock,
// Rollback restores the snapshot first. The lock is held for the whole
// transaction, so transactions serialize — acceptable for a single-session
// deployment and what gives this backend its isolation.
type UnitOfWork struct {
	store  *Store
	active bool

	cartSnapshot   *order.Cart
	ordersSnapshot []*order.Order
}

// Begin locks the store and snapshots its state for rollback.
// Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.cartSnapshot, uow.ordersSnapshot = uow.store.snapshot()
	uow.active = true
	return nil
}

// Commit keeps the changes made since Begin and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.active = false
	uow.cartSnapshot = nil
	uow.ordersSnapshot = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback restores the snapshot taken at Begin and releases the store lock.
// After Commit it is a no-op, which is what the deferred Rollback in command
// handlers relies on.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.store.restore(uow.cartSnapshot, uow.ordersSnapshot)
	uow.active = false
	uow.cartSnapshot = nil
	uow.ordersSnapshot = nil
	uow.store.mu.Unlock()
	return nil
}

// CartRepository returns a cart repository bound to this transaction.
func (uow *UnitOfWork) CartRepository() ports.CartRepository {
	return &CartRepository{store: uow.store, inTx: true}
}

// OrderRepository returns an order repository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, inTx: true}
}
