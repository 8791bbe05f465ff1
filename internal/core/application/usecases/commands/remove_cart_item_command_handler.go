package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles cart line removal.
// Removing a line that is not in the cart succeeds without effect, so a
// double-click on a remove button cannot fail.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
// Requires a CartUoWFactory for transactional persistence.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cart.RemoveItem(cmd.ItemID(), cmd.Selection())

	if err = cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
