package commands

import (
	"context"
)

// SelectOrderTypeCommandHandler handles switching between delivery and pickup.
type SelectOrderTypeCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewSelectOrderTypeCommandHandler creates a handler for order type selection.
// Requires a CartUoWFactory for transactional persistence.
func NewSelectOrderTypeCommandHandler(uowFactory CartUoWFactory) SelectOrderTypeCommandHandler {
	return SelectOrderTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the select-order-type command.
func (h *SelectOrderTypeCommandHandler) Handle(ctx context.Context, cmd SelectOrderTypeCommand) error {
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

	if err = cart.SetOrderType(cmd.OrderType()); err != nil {
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
