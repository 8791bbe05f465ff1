package inmem

import (
	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
)

// DefaultMenu builds the restaurant's starting catalog. Fresh UUIDs are
// minted on every call, so the catalog must be built once at composition
// time and shared.
func DefaultMenu() ([]*menu.MenuItem, error) {
	salmonGroups, err := optionGroups(map[string][]menu.Option{
		"Cooking Preference": {
			mustOption("Medium Rare", 0),
			mustOption("Medium", 0),
			mustOption("Well Done", 0),
		},
		"Side Options": {
			mustOption("Garlic Mashed Potatoes", 0),
			mustOption("Roasted Vegetables", 0),
			mustOption("Quinoa Pilaf", 200),
		},
	}, "Cooking Preference", "Side Options")
	if err != nil {
		return nil, err
	}

	caesarGroups, err := optionGroups(map[string][]menu.Option{
		"Add Protein": {
			mustOption("Grilled Chicken", 499),
			mustOption("Grilled Shrimp", 699),
			mustOption("None", 0),
		},
		"Dressing": {
			mustOption("Regular", 0),
			mustOption("On the Side", 0),
		},
	}, "Add Protein", "Dressing")
	if err != nil {
		return nil, err
	}

	lavaCakeGroups, err := optionGroups(map[string][]menu.Option{
		"Ice Cream Flavor": {
			mustOption("Vanilla", 0),
			mustOption("Chocolate", 0),
			mustOption("Strawberry", 0),
		},
	}, "Ice Cream Flavor")
	if err != nil {
		return nil, err
	}

	pizzaGroups, err := optionGroups(map[string][]menu.Option{
		"Size": {
			mustOption(`Personal (10")`, 0),
			mustOption(`Medium (14")`, 600),
			mustOption(`Large (18")`, 1000),
		},
		"Crust": {
			mustOption("Regular", 0),
			mustOption("Thin Crust", 0),
			mustOption("Gluten-Free Crust", 300),
		},
	}, "Size", "Crust")
	if err != nil {
		return nil, err
	}

	type seed struct {
		name          string
		description   string
		priceCents    int64
		category      string
		imageURL      string
		dietaryLabels []string
		optionGroups  []menu.OptionGroup
	}

	seeds := []seed{
		{
			name: "Grilled Salmon",
			description: "Fresh Atlantic salmon grilled to perfection with a lemon herb butter sauce, " +
				"served with seasonal vegetables and garlic mashed potatoes.",
			priceCents:    2499,
			category:      "Main Course",
			imageURL:      "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=500",
			dietaryLabels: []string{"Gluten-Free", "Pescatarian"},
			optionGroups:  salmonGroups,
		},
		{
			name: "Classic Caesar Salad",
			description: "Crisp romaine lettuce, homemade croutons, parmesan cheese, " +
				"and our signature Caesar dressing.",
			priceCents:    1299,
			category:      "Starters",
			imageURL:      "https://images.unsplash.com/photo-1551248429-40975aa4de74?w=500",
			dietaryLabels: []string{"Vegetarian"},
			optionGroups:  caesarGroups,
		},
		{
			name: "Truffle Mushroom Risotto",
			description: "Arborio rice cooked with wild mushrooms, truffle oil, " +
				"and finished with aged parmesan cheese.",
			priceCents:    2299,
			category:      "Main Course",
			imageURL:      "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=500",
			dietaryLabels: []string{"Vegetarian", "Gluten-Free"},
		},
		{
			name: "Chocolate Lava Cake",
			description: "Warm chocolate cake with a molten center, served with vanilla bean " +
				"ice cream and fresh berries.",
			priceCents:    999,
			category:      "Desserts",
			imageURL:      "https://images.unsplash.com/photo-1573399054516-24af5a8395ef?w=500",
			dietaryLabels: []string{"Vegetarian"},
			optionGroups:  lavaCakeGroups,
		},
		{
			name: "Margherita Pizza",
			description: "Classic pizza with San Marzano tomato sauce, fresh mozzarella, basil, " +
				"and extra virgin olive oil.",
			priceCents:    1899,
			category:      "Main Course",
			imageURL:      "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=500",
			dietaryLabels: []string{"Vegetarian"},
			optionGroups:  pizzaGroups,
		},
	}

	items := make([]*menu.MenuItem, 0, len(seeds))
	for _, s := range seeds {
		item, itemErr := menu.NewMenuItem(
			kernel.NewUUID(),
			s.name,
			s.description,
			kernel.NewMoneyFromCents(s.priceCents),
			s.category,
			s.imageURL,
			s.dietaryLabels,
			true,
			s.optionGroups,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// optionGroups builds groups in the given name order.
func optionGroups(byName map[string][]menu.Option, names ...string) ([]menu.OptionGroup, error) {
	groups := make([]menu.OptionGroup, 0, len(names))
	for _, name := range names {
		group, err := menu.NewOptionGroup(name, byName[name])
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// mustOption builds an option, panicking on invalid seed data. Safe because
// the seed values are compile-time constants exercised by tests.
func mustOption(name string, priceDeltaCents int64) menu.Option {
	option, err := menu.NewOption(name, kernel.NewMoneyFromCents(priceDeltaCents))
	if err != nil {
		panic(err)
	}
	return option
}
