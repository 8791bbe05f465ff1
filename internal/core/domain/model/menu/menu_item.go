package menu

import (
	"errors"
	"fmt"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// through the NewMenuItem factory.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is the aggregate root for a dish on the menu.
//
// MenuItem maintains these invariants:
//   - Must have a valid unique identifier, a name, and a category
//   - Base price and every option price delta are non-negative
//   - Option group names are unique per item
//   - Can only be created through the NewMenuItem constructor
//
// Items are immutable after construction; the catalog is loaded once and
// shared between readers.
type MenuItem struct {
	id            kernel.UUID
	name          string
	description   string
	price         kernel.Money
	category      string
	imageURL      string
	dietaryLabels []string
	available     bool
	optionGroups  []OptionGroup

	isConstructed bool
}

// NewMenuItem creates a validated menu item.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - name: display name (required)
//   - description: free-text description (may be empty)
//   - price: non-negative base price
//   - category: menu section such as "Main Course" (required)
//   - imageURL: image reference (may be empty)
//   - dietaryLabels: labels such as "Vegetarian", "Gluten-Free"
//   - available: whether the item can currently be ordered
//   - optionGroups: optional customization groups with unique names
func NewMenuItem(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	imageURL string,
	dietaryLabels []string,
	available bool,
	optionGroups []OptionGroup,
) (*MenuItem, error) {
	item := &MenuItem{
		description:   description,
		imageURL:      imageURL,
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
		item.setDietaryLabels(dietaryLabels),
		item.setOptionGroups(optionGroups),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the item's description text.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the item's base price, before option deltas.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category returns the menu section the item belongs to.
func (m *MenuItem) Category() string {
	return m.category
}

// ImageURL returns the item's image reference.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// DietaryLabels returns a copy of the item's dietary labels.
func (m *MenuItem) DietaryLabels() []string {
	labels := make([]string, len(m.dietaryLabels))
	copy(labels, m.dietaryLabels)
	return labels
}

// HasDietaryLabel reports whether the item carries the given label.
func (m *MenuItem) HasDietaryLabel(label string) bool {
	for _, l := range m.dietaryLabels {
		if l == label {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// OptionGroups returns a copy of the item's option groups in menu order.
func (m *MenuItem) OptionGroups() []OptionGroup {
	groups := make([]OptionGroup, len(m.optionGroups))
	copy(groups, m.optionGroups)
	return groups
}

// PriceFor computes the unit price for the item under the given selection:
// the base price plus the delta of every chosen option. It rejects
// selections naming an option group or an option the item does not have;
// groups left unselected contribute nothing.
func (m *MenuItem) PriceFor(selection Selection) (kernel.Money, error) {
	price := m.price

	for groupName, optionName := range selection {
		group, ok := m.findGroup(groupName)
		if !ok {
			return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("selection",
				fmt.Errorf("item %q has no option group %q", m.name, groupName))
		}
		option, ok := group.find(optionName)
		if !ok {
			return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("selection",
				fmt.Errorf("option group %q has no option %q", groupName, optionName))
		}
		price = price.Add(option.PriceDelta())
	}

	return price, nil
}

func (m *MenuItem) findGroup(name string) (OptionGroup, bool) {
	for _, group := range m.optionGroups {
		if group.name == name {
			return group, true
		}
	}
	return OptionGroup{}, false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.ValidateNonNegative("menu item price"); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("menu item category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setDietaryLabels(labels []string) error {
	m.dietaryLabels = make([]string, len(labels))
	copy(m.dietaryLabels, labels)
	return nil
}

func (m *MenuItem) setOptionGroups(groups []OptionGroup) error {
	seen := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		if _, ok := seen[group.name]; ok {
			return errs.NewValueIsInvalidErrorWithCause("option groups",
				fmt.Errorf("duplicate option group %q", group.name))
		}
		seen[group.name] = struct{}{}
	}
	m.optionGroups = make([]OptionGroup, len(groups))
	copy(m.optionGroups, groups)
	return nil
}
