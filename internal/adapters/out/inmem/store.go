// Package inmem provides the in-memory storage backend. It is the default
// for a deployment without a database: one cart and one order list guarded
// by a single mutex, with unit-of-work semantics implemented by snapshotting
// state at Begin and restoring it on Rollback.
package inmem

import (
	"sync"

	"dineease/internal/core/domain/model/order"
)

// Store holds all mutable application state: the single active cart and the
// orders placed so far, oldest first. Access goes through the repositories
// and the unit of work; the store itself only guards the data.
type Store struct {
	mu     sync.Mutex
	cart   *order.Cart
	orders []*order.Order
}

// NewStore creates a store with an empty cart and no orders.
func NewStore() *Store {
	return &Store{
		cart: order.NewCart(),
	}
}

// snapshot deep-copies the store's state. Callers must hold mu.
func (s *Store) snapshot() (*order.Cart, []*order.Order) {
	orders := make([]*order.Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = o.Clone()
	}
	return s.cart.Clone(), orders
}

// restore replaces the store's state with a snapshot. Callers must hold mu.
func (s *Store) restore(cart *order.Cart, orders []*order.Order) {
	s.cart = cart
	s.orders = orders
}
