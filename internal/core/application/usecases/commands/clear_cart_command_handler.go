package commands

import (
	"context"
)

// ClearCartCommandHandler handles emptying the cart.
// Clearing an already empty cart succeeds without effect.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
// Requires a CartUoWFactory for transactional persistence.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear-cart command.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	cart.Clear()

	if err = cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
