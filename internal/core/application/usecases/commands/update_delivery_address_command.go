package commands

import (
	"errors"

	"dineease/internal/core/domain/model/order"
	"dineease/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryAddressCommandIsNotConstructed = errors.New(
		"UpdateDeliveryAddressCommand must be created via NewUpdateDeliveryAddressCommand constructor",
	)
)

// UpdateDeliveryAddressCommand represents a partial update of the checkout
// address. Only the fields present in the patch change; the rest keep their
// previous values. Field-level validity is not checked here so users can
// save a half-filled form; checkout enforces completeness.
type UpdateDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	patch order.AddressPatch

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryAddressCommand creates a command to patch the address.
func NewUpdateDeliveryAddressCommand(patch order.AddressPatch) UpdateDeliveryAddressCommand {
	return UpdateDeliveryAddressCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryAddressCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryAddressCommandIsNotConstructed)
}

// Patch returns the fields to merge into the stored address.
func (c UpdateDeliveryAddressCommand) Patch() order.AddressPatch {
	return c.patch
}
