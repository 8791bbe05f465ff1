// Package payments provides the simulated payment processor. There is no
// real payment network behind checkout; the processor approves every charge
// after a short delay that mimics gateway latency.
package payments

import (
	"context"
	"time"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/payment"
)

// DefaultProcessingDelay mimics the latency of a payment gateway round trip.
const DefaultProcessingDelay = 1500 * time.Millisecond

// SimulatedProcessor implements ports.PaymentProcessor by sleeping for a
// configured delay and approving. Card details have already been
// format-validated by the checkout handler; this processor does not inspect
// them.
type SimulatedProcessor struct {
	delay time.Duration
}

// NewSimulatedProcessor creates a processor with the given delay.
// A non-positive delay approves immediately, which tests rely on.
func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay}
}

// Process waits out the configured delay and approves the charge.
// Returns the context error when the caller gives up while waiting.
func (p *SimulatedProcessor) Process(
	ctx context.Context,
	method payment.Method,
	_ payment.CardDetails,
	amount kernel.Money,
) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if err := amount.ValidateNonNegative("charge amount"); err != nil {
		return err
	}

	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
