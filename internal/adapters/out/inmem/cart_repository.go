package inmem

import (
	"context"

	"dineease/internal/core/domain/model/order"
)

// CartRepository implements ports.CartRepository against the in-memory
// store. Repositories handed out by a UnitOfWork run without locking, since
// the unit of work holds the store lock for the whole transaction;
// standalone repositories created via NewCartRepository lock per call.
type CartRepository struct {
	store *Store
	inTx  bool
}

// NewCartRepository creates a standalone cart repository for read paths.
func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get returns an independent copy of the current cart.
func (r *CartRepository) Get(_ context.Context) (*order.Cart, error) {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	return r.store.cart.Clone(), nil
}

// Save replaces the stored cart with a copy of the given one.
func (r *CartRepository) Save(_ context.Context, cart *order.Cart) error {
	if err := cart.Validate(); err != nil {
		return err
	}

	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	r.store.cart = cart.Clone()
	return nil
}
