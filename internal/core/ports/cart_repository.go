package ports

import (
	"context"

	"dineease/internal/core/domain/model/order"
)

// CartRepository defines the persistence contract for the single active
// cart. The system models one cart per deployment, matching a single
// ordering session; implementations return independent copies, and
// mutations only take effect through Save.
type CartRepository interface {
	// Get retrieves the current cart. A cart always exists; before any
	// item is added it is the empty cart with the delivery order type
	// preselected.
	Get(ctx context.Context) (*order.Cart, error)

	// Save persists the cart, replacing the previous contents.
	Save(ctx context.Context, cart *order.Cart) error
}
