package commands

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/pkg/guard"
)

var (
	ErrAddItemToCartCommandIsNotConstructed = errors.New(
		"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
	)
)

// AddItemToCartCommand represents a request to put a menu item into the cart.
// The selection names one option per customized group; two requests for the
// same item with different selections become separate cart lines.
//
// Example:
//
//	cmd, err := NewAddItemToCartCommand(itemID, menu.Selection{"Size": "Large"}, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart request: %w", err)
//	}
//
//	handler := NewAddItemToCartCommandHandler(menuRepo, uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	selection menu.Selection
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add a menu item to the cart.
// A quantity below one is normalized to one, matching add-to-cart buttons
// that do not specify an amount. Returns an error when the item ID is invalid.
func NewAddItemToCartCommand(
	itemID kernel.UUID,
	selection menu.Selection,
	quantity int,
) (AddItemToCartCommand, error) {
	command := AddItemToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItemID(itemID); err != nil {
		return AddItemToCartCommand{}, err
	}

	if quantity < 1 {
		quantity = 1
	}
	command.selection = selection.Clone()
	command.quantity = quantity

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemToCartCommandIsNotConstructed if validation fails.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// ItemID returns the identifier of the menu item to add.
func (c AddItemToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Selection returns the chosen options, one per customized group.
func (c AddItemToCartCommand) Selection() menu.Selection {
	return c.selection.Clone()
}

// Quantity returns the number of units to add.
func (c AddItemToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemToCartCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
