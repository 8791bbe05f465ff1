package inmem

import (
	"context"
	"fmt"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/order"
	"dineease/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository against the in-memory
// store. The store keeps orders oldest first; reads reverse the slice so
// newest orders come back first.
type OrderRepository struct {
	store *Store
	inTx  bool
}

// NewOrderRepository creates a standalone order repository for read paths.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Add appends a new order. Rejects an order whose ID is already present.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	for _, existing := range r.store.orders {
		if existing.ID().IsEqual(aggregate.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("orderID",
				fmt.Errorf("order %s already exists", aggregate.ID()))
		}
	}

	r.store.orders = append(r.store.orders, aggregate.Clone())
	return nil
}

// Update replaces the stored order with the same ID.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	for i, existing := range r.store.orders {
		if existing.ID().IsEqual(aggregate.ID()) {
			r.store.orders[i] = aggregate.Clone()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderID", aggregate.ID())
}

// Get returns an independent copy of the order with the given ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	for _, existing := range r.store.orders {
		if existing.ID().IsEqual(id) {
			return existing.Clone(), nil
		}
	}

	return nil, errs.NewObjectNotFoundError("orderID", id)
}

// GetAllActive returns undelivered orders, newest first.
func (r *OrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	active := make([]*order.Order, 0)
	for i := len(r.store.orders) - 1; i >= 0; i-- {
		if r.store.orders[i].IsActive() {
			active = append(active, r.store.orders[i].Clone())
		}
	}
	return active, nil
}

// GetAll returns every order, newest first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	all := make([]*order.Order, 0, len(r.store.orders))
	for i := len(r.store.orders) - 1; i >= 0; i-- {
		all = append(all, r.store.orders[i].Clone())
	}
	return all, nil
}
