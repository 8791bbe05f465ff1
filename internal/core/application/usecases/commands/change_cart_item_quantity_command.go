package commands

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/pkg/guard"
)

var (
	ErrChangeCartItemQuantityCommandIsNotConstructed = errors.New(
		"ChangeCartItemQuantityCommand must be created via NewChangeCartItemQuantityCommand constructor",
	)
)

// ChangeCartItemQuantityCommand represents a request to set the quantity of
// one cart line. A quantity of zero or less removes the line, which is how
// the minus button empties a line out of the cart.
type ChangeCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	selection menu.Selection
	quantity  int

	guard guard.ConstructorGuard
}

// NewChangeCartItemQuantityCommand creates a command to change a line quantity.
// Returns an error when the item ID is invalid. Non-positive quantities are
// accepted; they signal removal.
func NewChangeCartItemQuantityCommand(
	itemID kernel.UUID,
	selection menu.Selection,
	quantity int,
) (ChangeCartItemQuantityCommand, error) {
	command := ChangeCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return ChangeCartItemQuantityCommand{}, err
	}
	command.itemID = itemID
	command.selection = selection.Clone()
	command.quantity = quantity

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeCartItemQuantityCommandIsNotConstructed if validation fails.
func (c ChangeCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartItemQuantityCommandIsNotConstructed)
}

// ItemID returns the identifier of the menu item whose line changes.
func (c ChangeCartItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Selection returns the option selection identifying the line.
func (c ChangeCartItemQuantityCommand) Selection() menu.Selection {
	return c.selection.Clone()
}

// Quantity returns the new quantity; zero or less removes the line.
func (c ChangeCartItemQuantityCommand) Quantity() int {
	return c.quantity
}
