package order

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created through
	// NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrItemNotAvailable is returned when adding a menu item whose
	// availability flag is off.
	ErrItemNotAvailable = errors.New("menu item is not available")
)

// CartLine is one distinct entry in the cart: a menu item snapshot combined
// with an option selection and a quantity. Two lines are the same entry iff
// both the item id and the canonical selection key match; otherwise they are
// separate lines even for the same item.
//
// The unit price is frozen when the line is created (base price plus the
// chosen option deltas), so later menu edits cannot change an open cart.
type CartLine struct {
	itemID    kernel.UUID
	itemName  string
	unitPrice kernel.Money
	selection menu.Selection
	quantity  int
}

// RestoreCartLine reconstructs a cart line from persisted state.
// Quantity must be at least one and the unit price non-negative.
func RestoreCartLine(
	itemID kernel.UUID,
	itemName string,
	unitPrice kernel.Money,
	selection menu.Selection,
	quantity int,
) (CartLine, error) {
	if err := itemID.Validate(); err != nil {
		return CartLine{}, err
	}
	if itemName == "" {
		return CartLine{}, errs.NewValueIsRequiredError("cart line item name")
	}
	if err := unitPrice.ValidateNonNegative("cart line unit price"); err != nil {
		return CartLine{}, err
	}
	if quantity < 1 {
		return CartLine{}, errs.NewValueIsOutOfRangeError("cart line quantity", quantity, 1, maxLineQuantity)
	}
	if quantity > maxLineQuantity {
		return CartLine{}, errs.NewValueIsOutOfRangeError("cart line quantity", quantity, 1, maxLineQuantity)
	}

	return CartLine{
		itemID:    itemID,
		itemName:  itemName,
		unitPrice: unitPrice,
		selection: selection.Clone(),
		quantity:  quantity,
	}, nil
}

// maxLineQuantity bounds a single line so a typo cannot order 10k pizzas.
const maxLineQuantity = 99

// ItemID returns the identifier of the menu item this line refers to.
func (l CartLine) ItemID() kernel.UUID {
	return l.itemID
}

// ItemName returns the item name snapshotted when the line was created.
func (l CartLine) ItemName() string {
	return l.itemName
}

// UnitPrice returns the per-unit price including option deltas.
func (l CartLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Selection returns a copy of the line's option selection.
func (l CartLine) Selection() menu.Selection {
	return l.selection.Clone()
}

// Quantity returns how many units of the entry are in the cart.
func (l CartLine) Quantity() int {
	return l.quantity
}

// Key returns the line's identity: item id plus canonical selection key.
func (l CartLine) Key() string {
	return l.itemID.String() + "|" + l.selection.Key()
}

// Total returns unit price times quantity.
func (l CartLine) Total() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

// matches reports whether the line is the entry for (itemID, selection).
func (l CartLine) matches(itemID kernel.UUID, selection menu.Selection) bool {
	return l.itemID.IsEqual(itemID) && l.selection.IsEqual(selection)
}

// Cart is the aggregate holding the in-progress order: its lines, the
// chosen order type, and the delivery address being filled in at checkout.
//
// Cart maintains these invariants:
//   - No line has a quantity below one; dropping a quantity to zero or
//     less removes the line
//   - No two lines share the same (item id, selection key) identity
//   - The order type is always Delivery or Pickup (Delivery initially)
type Cart struct {
	lines     []CartLine
	orderType OrderType
	address   Address

	isConstructed bool
}

// NewCart creates an empty cart with the Delivery order type preselected.
func NewCart() *Cart {
	return &Cart{
		orderType:     Delivery,
		isConstructed: true,
	}
}

// RestoreCart reconstructs a cart from persisted state. Line identities
// must already be unique; duplicates are rejected.
func RestoreCart(lines []CartLine, orderType OrderType, address Address) (*Cart, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.Key()]; ok {
			return nil, errs.NewValueIsInvalidError("cart lines contain duplicate entries")
		}
		seen[line.Key()] = struct{}{}
	}

	cart := &Cart{
		lines:         make([]CartLine, len(lines)),
		orderType:     orderType,
		address:       address,
		isConstructed: true,
	}
	copy(cart.lines, lines)
	return cart, nil
}

// Validate ensures the cart was created through NewCart or RestoreCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// AddItem merges the item and selection into the cart. When a line with the
// same (item id, selection key) already exists its quantity grows by
// quantity; otherwise a new line is appended with the unit price computed
// from the item's base price and the chosen option deltas.
//
// A quantity below one is treated as one, matching "add to cart" buttons
// that do not specify an amount. Unavailable items and selections naming
// unknown groups or options are rejected.
func (c *Cart) AddItem(item *menu.MenuItem, selection menu.Selection, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsAvailable() {
		return ErrItemNotAvailable
	}
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.lines {
		if c.lines[i].matches(item.ID(), selection) {
			newQuantity := c.lines[i].quantity + quantity
			if newQuantity > maxLineQuantity {
				return errs.NewValueIsOutOfRangeError("cart line quantity", newQuantity, 1, maxLineQuantity)
			}
			c.lines[i].quantity = newQuantity
			return nil
		}
	}

	unitPrice, err := item.PriceFor(selection)
	if err != nil {
		return err
	}

	line, err := RestoreCartLine(item.ID(), item.Name(), unitPrice, selection, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// RemoveItem deletes the line matching (itemID, selection).
// Removing an absent line is a no-op.
func (c *Cart) RemoveItem(itemID kernel.UUID, selection menu.Selection) {
	for i := range c.lines {
		if c.lines[i].matches(itemID, selection) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// ChangeQuantity sets the quantity of the line matching (itemID, selection).
// A quantity of zero or less removes the line. Changing an absent line is a
// no-op; a quantity above the per-line bound is rejected.
func (c *Cart) ChangeQuantity(itemID kernel.UUID, selection menu.Selection, quantity int) error {
	for i := range c.lines {
		if !c.lines[i].matches(itemID, selection) {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
		if quantity > maxLineQuantity {
			return errs.NewValueIsOutOfRangeError("cart line quantity", quantity, 1, maxLineQuantity)
		}
		c.lines[i].quantity = quantity
		return nil
	}
	return nil
}

// Clear removes every line unconditionally. Order type and address keep
// their values so checkout settings survive an emptied cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// SetOrderType overwrites the order type after validating it.
func (c *Cart) SetOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

// UpdateAddress shallow-merges the patch into the stored address;
// omitted fields keep their previous values.
func (c *Cart) UpdateAddress(patch AddressPatch) {
	c.address = c.address.Merge(patch)
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.quantity
	}
	return count
}

// OrderType returns the currently selected order type.
func (c *Cart) OrderType() OrderType {
	return c.orderType
}

// Address returns the address collected so far.
func (c *Cart) Address() Address {
	return c.address
}

// Receipt computes the totals for the current contents and order type.
func (c *Cart) Receipt() Receipt {
	return NewReceipt(c.lines, c.orderType)
}

// Clone returns an independent deep copy of the cart. Repositories hand out
// clones so callers cannot mutate stored state without saving.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	clone := &Cart{
		lines:         make([]CartLine, len(c.lines)),
		orderType:     c.orderType,
		address:       c.address,
		isConstructed: c.isConstructed,
	}
	for i, line := range c.lines {
		clone.lines[i] = line
		clone.lines[i].selection = line.selection.Clone()
	}
	return clone
}
