package commands

import (
	"context"

	"dineease/internal/core/ports"
)

// AddItemToCartCommandHandler handles the business logic for adding items.
// Looks the item up on the menu, snapshots its price for the chosen options,
// and merges it into the cart, growing the quantity when a line with the same
// item and selection already exists.
//
// Example:
//
//	handler := NewAddItemToCartCommandHandler(menuRepo, uowFactory)
//	cmd, _ := NewAddItemToCartCommand(itemID, nil, 1)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("add to cart failed: %w", err)
//	}
type AddItemToCartCommandHandler struct {
	menuRepository ports.MenuRepository
	uowFactory     CartUoWFactory
}

// NewAddItemToCartCommandHandler creates a handler for cart additions.
// Requires the menu repository for item lookup and a CartUoWFactory for
// transactional persistence.
func NewAddItemToCartCommandHandler(
	menuRepository ports.MenuRepository,
	uowFactory CartUoWFactory,
) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		menuRepository: menuRepository,
		uowFactory:     uowFactory,
	}
}

// Handle processes the add-item command.
// Rejects unknown and unavailable items as well as selections naming groups
// or options the item does not offer.
func (h *AddItemToCartCommandHandler) Handle(ctx context.Context, cmd AddItemToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuRepository.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	cart, err := cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = cart.AddItem(item, cmd.Selection(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
