package commands

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/payment"
	"dineease/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents the checkout request: turn the current cart
// into an order paid with the given method. Card details are only consulted
// for card payments and are format-validated by the handler at checkout
// time, since expiry freshness depends on the clock.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, payment.Cash, payment.CardDetails{})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, processor)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  payment.Method
	card    payment.CardDetails

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command.
// Validates the order ID and the payment method; card detail checks happen
// in the handler.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	method payment.Method,
	card payment.CardDetails,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		method.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	command.orderID = orderID
	command.method = method
	command.card = card

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the chosen payment method.
func (c PlaceOrderCommand) Method() payment.Method {
	return c.method
}

// Card returns the card details entered at checkout; empty for cash.
func (c PlaceOrderCommand) Card() payment.CardDetails {
	return c.card
}
