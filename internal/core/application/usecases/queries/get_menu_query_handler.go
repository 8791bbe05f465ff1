package queries

import (
	"context"
	"strings"

	"dineease/internal/core/domain/model/menu"
	"dineease/internal/core/ports"
)

// GetMenuQueryHandler retrieves menu items through the menu repository.
// Filtering happens in memory; the catalog is small and loaded once.
type GetMenuQueryHandler struct {
	menuRepository ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler for menu retrieval queries.
func NewGetMenuQueryHandler(menuRepository ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuRepository: menuRepository}
}

// Handle executes the menu query.
// Returns the matching items in menu order plus distinct category and
// dietary label listings derived from the full, unfiltered menu.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	items, err := h.menuRepository.GetAll(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	response := GetMenuQueryResponse{
		Items:         make([]MenuItemView, 0, len(items)),
		Categories:    make([]string, 0),
		DietaryLabels: make([]string, 0),
	}

	seenCategories := make(map[string]struct{})
	seenLabels := make(map[string]struct{})

	for _, item := range items {
		if _, ok := seenCategories[item.Category()]; !ok {
			seenCategories[item.Category()] = struct{}{}
			response.Categories = append(response.Categories, item.Category())
		}
		for _, label := range item.DietaryLabels() {
			if _, ok := seenLabels[label]; !ok {
				seenLabels[label] = struct{}{}
				response.DietaryLabels = append(response.DietaryLabels, label)
			}
		}

		if matchesMenuQuery(item, query) {
			response.Items = append(response.Items, newMenuItemView(item))
		}
	}

	return response, nil
}

func matchesMenuQuery(item *menu.MenuItem, query GetMenuQuery) bool {
	if query.AvailableOnly() && !item.IsAvailable() {
		return false
	}
	if category := query.Category(); category != "" && item.Category() != category {
		return false
	}
	if search := strings.ToLower(query.Search()); search != "" {
		name := strings.ToLower(item.Name())
		description := strings.ToLower(item.Description())
		if !strings.Contains(name, search) && !strings.Contains(description, search) {
			return false
		}
	}
	for _, label := range query.DietaryLabels() {
		if !item.HasDietaryLabel(label) {
			return false
		}
	}
	return true
}

func newMenuItemView(item *menu.MenuItem) MenuItemView {
	groups := item.OptionGroups()
	groupViews := make([]OptionGroupView, 0, len(groups))
	for _, group := range groups {
		options := group.Options()
		optionViews := make([]OptionView, 0, len(options))
		for _, option := range options {
			optionViews = append(optionViews, OptionView{
				Name:       option.Name(),
				PriceDelta: option.PriceDelta(),
			})
		}
		groupViews = append(groupViews, OptionGroupView{Name: group.Name(), Options: optionViews})
	}

	return MenuItemView{
		ID:            item.ID(),
		Name:          item.Name(),
		Description:   item.Description(),
		Price:         item.Price(),
		Category:      item.Category(),
		ImageURL:      item.ImageURL(),
		DietaryLabels: item.DietaryLabels(),
		Available:     item.IsAvailable(),
		OptionGroups:  groupViews,
	}
}
