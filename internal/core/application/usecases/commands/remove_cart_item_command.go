package commands

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// RemoveCartItemCommand represents a request to delete one cart line. The
// line is identified by item ID plus selection; other lines for the same
// item with different options stay in the cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	selection menu.Selection

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
// Returns an error when the item ID is invalid.
func NewRemoveCartItemCommand(itemID kernel.UUID, selection menu.Selection) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return RemoveCartItemCommand{}, err
	}
	command.itemID = itemID
	command.selection = selection.Clone()

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveCartItemCommandIsNotConstructed if validation fails.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the menu item to remove.
func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Selection returns the option selection identifying the line.
func (c RemoveCartItemCommand) Selection() menu.Selection {
	return c.selection.Clone()
}
