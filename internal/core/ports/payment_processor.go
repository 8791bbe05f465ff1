package ports

import (
	"context"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/payment"
)

// PaymentProcessor charges the customer for an order at checkout. Card
// details are only consulted for card payments; cash payments carry empty
// details. Implementations must honor context cancellation since a charge
// may take a while.
type PaymentProcessor interface {
	// Process charges the given amount using the chosen payment method.
	// Returns an error when the charge fails or the context is cancelled.
	Process(ctx context.Context, method payment.Method, card payment.CardDetails, amount kernel.Money) error
}
