// Package payment contains the checkout payment model: the accepted payment
// methods and card-detail validation. Card numbers are format-checked only;
// no real payment network is involved.
package payment

import (
	"fmt"

	"dineease/internal/pkg/errs"
)

// Method is how the customer pays at checkout.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// Cash is paid on delivery or at pickup; no card details are needed.
	Cash

	// Card is a credit/debit card whose details are format-validated.
	Card
)

// MethodFromString parses the wire form ("cash" or "card").
func MethodFromString(s string) (Method, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "card":
		return Card, nil
	default:
		return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%q is not a valid payment method", s),
		)
	}
}

// Validate checks that the Method is Cash or Card.
func (m Method) Validate() error {
	if m != Cash && m != Card {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire form of the method.
func (m Method) String() string {
	switch m {
	case Cash:
		return "cash"
	case Card:
		return "card"
	default:
		return "unknown"
	}
}
