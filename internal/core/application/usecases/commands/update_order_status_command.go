package commands

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/order"
	"dineease/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// tracking status. Both the tracking simulator and any manual status change
// go through this command, so the forward-only rule is enforced in one place.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Cooking)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID and target status are well formed; whether the
// transition is allowed is decided by the order aggregate.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	command.orderID = orderID
	command.status = status

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target tracking status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
