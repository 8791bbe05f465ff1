package commands

import (
	"errors"

	"dineease/internal/core/domain/model/order"
	"dineease/internal/pkg/guard"
)

var (
	ErrSelectOrderTypeCommandIsNotConstructed = errors.New(
		"SelectOrderTypeCommand must be created via NewSelectOrderTypeCommand constructor",
	)
)

// SelectOrderTypeCommand represents a request to switch the cart between
// delivery and pickup. The choice drives the delivery fee and which address
// fields checkout requires.
type SelectOrderTypeCommand struct { //nolint:recvcheck //using for validation
	orderType order.OrderType

	guard guard.ConstructorGuard
}

// NewSelectOrderTypeCommand creates a command to switch the order type.
// Returns an error when the order type is not delivery or pickup.
func NewSelectOrderTypeCommand(orderType order.OrderType) (SelectOrderTypeCommand, error) {
	command := SelectOrderTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderType.Validate(); err != nil {
		return SelectOrderTypeCommand{}, err
	}
	command.orderType = orderType

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectOrderTypeCommandIsNotConstructed if validation fails.
func (c SelectOrderTypeCommand) Validate() error {
	return c.guard.Validate(ErrSelectOrderTypeCommandIsNotConstructed)
}

// OrderType returns the requested order type.
func (c SelectOrderTypeCommand) OrderType() order.OrderType {
	return c.orderType
}
