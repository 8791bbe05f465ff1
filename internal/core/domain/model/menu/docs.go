// Package menu contains the menu catalog domain model.
//
// MenuItem is the aggregate root: a dish with a base price, a category,
// dietary labels, an availability flag, and optional named option groups
// (size, sides, add-ons) whose options carry non-negative price deltas.
// Menu items are loaded once at composition time and never mutated.
//
// Selection records a customer's choice of one option per group. Its
// canonical key gives cart lines an order-independent identity, so the same
// choices always collapse onto the same line regardless of the order the
// groups were picked in.
package menu
