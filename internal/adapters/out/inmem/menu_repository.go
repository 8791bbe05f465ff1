package inmem

import (
	"context"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/pkg/errs"
)

// MenuRepository implements ports.MenuRepository over a fixed catalog.
// Items are immutable after construction, so reads need no locking.
type MenuRepository struct {
	items []*menu.MenuItem
	byID  map[kernel.UUID]*menu.MenuItem
}

// NewMenuRepository creates a repository over the given catalog. The slice
// order is the display order returned by GetAll.
func NewMenuRepository(items []*menu.MenuItem) *MenuRepository {
	byID := make(map[kernel.UUID]*menu.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	return &MenuRepository{items: items, byID: byID}
}

// GetAll returns every menu item in display order.
func (r *MenuRepository) GetAll(_ context.Context) ([]*menu.MenuItem, error) {
	items := make([]*menu.MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// Get returns the menu item with the given ID.
func (r *MenuRepository) Get(_ context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("itemID", id)
	}
	return item, nil
}
