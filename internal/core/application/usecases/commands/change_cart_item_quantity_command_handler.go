package commands

import (
	"context"
)

// ChangeCartItemQuantityCommandHandler handles cart line quantity updates.
// Changing a line that is not in the cart succeeds without effect.
type ChangeCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartItemQuantityCommandHandler creates a handler for quantity updates.
// Requires a CartUoWFactory for transactional persistence.
func NewChangeCartItemQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartItemQuantityCommandHandler {
	return ChangeCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the change-quantity command.
// A non-positive quantity removes the line; a quantity above the per-line
// bound is rejected by the cart.
func (h *ChangeCartItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCartItemQuantityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = cart.ChangeQuantity(cmd.ItemID(), cmd.Selection(), cmd.Quantity()); err != nil {
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
