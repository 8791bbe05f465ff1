package commands

import (
	"context"
)

// UpdateDeliveryAddressCommandHandler handles checkout address updates.
// Applies the patch to the stored address without validating completeness, so
// the address can be filled in across several requests.
type UpdateDeliveryAddressCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateDeliveryAddressCommandHandler creates a handler for address updates.
// Requires a CartUoWFactory for transactional persistence.
func NewUpdateDeliveryAddressCommandHandler(uowFactory CartUoWFactory) UpdateDeliveryAddressCommandHandler {
	return UpdateDeliveryAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-address command.
func (h *UpdateDeliveryAddressCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryAddressCommand,
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

	cart.UpdateAddress(cmd.Patch())

	if err = cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
