package commands

import (
	"context"
	"time"

	"dineease/internal/core/domain/model/order"
	"dineease/internal/core/domain/model/payment"
	"dineease/internal/core/ports"
)

// estimatedReadyLead is how far in the future a fresh order's estimated
// delivery (or pickup readiness) time is set.
const estimatedReadyLead = 40 * time.Minute

// PlaceOrderCommandHandler handles checkout: it validates the payment input,
// charges the customer, snapshots the cart into a new order, and clears the
// cart. The order and cart writes share one unit of work so a failure leaves
// the cart untouched.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, processor)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), payment.Card, details)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	processor  ports.PaymentProcessor
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for checkout.
// Requires a UoWFactory spanning cart and orders plus a payment processor.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	processor ports.PaymentProcessor,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
		now:        time.Now,
	}
}

// Handle processes the checkout command.
//
// Rejections, in order: invalid card details for card payments, an empty
// cart, and a delivery address that is incomplete for the chosen order type.
// Payment runs after the order passes validation but before anything is
// persisted, so a declined charge leaves no trace.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	placedAt := h.now()
	if cmd.Method() == payment.Card {
		if err := cmd.Card().Validate(placedAt); err != nil {
			return err
		}
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
	if cart.IsEmpty() {
		return order.ErrCartIsEmpty
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cart, placedAt, placedAt.Add(estimatedReadyLead))
	if err != nil {
		return err
	}

	if err = h.processor.Process(ctx, cmd.Method(), cmd.Card(), newOrder.Receipt().Total()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
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
