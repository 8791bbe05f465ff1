package queries

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the menu, optionally narrowed by filters. All
// filters are optional and combine with AND semantics: an item must match
// every filter that is set.
//
// Example:
//
//	query := NewGetMenuQuery("Main Course", "salmon", nil, true)
//	handler := NewGetMenuQueryHandler(menuRepo)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load menu: %w", err)
//	}
//
//	fmt.Printf("Found %d items\n", len(response.Items))
type GetMenuQuery struct {
	category      string
	search        string
	dietaryLabels []string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query.
//
// Parameters:
//   - category: keep only items in this menu section; empty means all
//   - search: case-insensitive substring match over name and description
//   - dietaryLabels: every listed label must be present on the item
//   - availableOnly: drop items currently marked unavailable
func NewGetMenuQuery(category, search string, dietaryLabels []string, availableOnly bool) GetMenuQuery {
	labels := make([]string, len(dietaryLabels))
	copy(labels, dietaryLabels)

	return GetMenuQuery{
		category:      category,
		search:        search,
		dietaryLabels: labels,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the category filter; empty means no filtering.
func (q GetMenuQuery) Category() string {
	return q.category
}

// Search returns the free-text filter; empty means no filtering.
func (q GetMenuQuery) Search() string {
	return q.search
}

// DietaryLabels returns the labels an item must carry to match.
func (q GetMenuQuery) DietaryLabels() []string {
	labels := make([]string, len(q.dietaryLabels))
	copy(labels, q.dietaryLabels)
	return labels
}

// AvailableOnly reports whether unavailable items are dropped.
func (q GetMenuQuery) AvailableOnly() bool {
	return q.availableOnly
}

// OptionView represents a single customization choice in the read model.
type OptionView struct {
	Name       string
	PriceDelta kernel.Money
}

// OptionGroupView represents one customization group in the read model.
type OptionGroupView struct {
	Name    string
	Options []OptionView
}

// MenuItemView represents a menu item in the read model.
type MenuItemView struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Price         kernel.Money
	Category      string
	ImageURL      string
	DietaryLabels []string
	Available     bool
	OptionGroups  []OptionGroupView
}

// GetMenuQueryResponse carries the filtered items plus the distinct
// categories and dietary labels of the whole menu, in menu order. The
// listings always describe the full menu so filter controls stay stable
// while a filter is applied.
type GetMenuQueryResponse struct {
	Items         []MenuItemView
	Categories    []string
	DietaryLabels []string
}
