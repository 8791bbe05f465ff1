package ports

import (
	"context"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
)

// MenuRepository defines read access to the restaurant menu. The menu is
// seeded at startup and treated as read-only by the application; there are
// no mutating operations on this port.
type MenuRepository interface {
	// GetAll retrieves every menu item in display order.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// Get retrieves a menu item by its unique identifier.
	// Returns an ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}
