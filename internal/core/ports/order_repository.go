package ports

import (
	"context"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations return independent copies; mutating a returned order has
// no effect until it is passed back through Update.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves orders that have not reached the terminal
	// status, newest first. These are the orders the tracking simulator
	// advances and the tracking view displays.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves every order, newest first. The order-history view
	// derives active/past grouping from each order's status.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
