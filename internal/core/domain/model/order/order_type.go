package order

import (
	"fmt"

	"dineease/internal/pkg/errs"
)

// OrderType distinguishes delivery orders from pickup orders. It decides
// which address fields are required at checkout and whether the delivery
// fee applies.
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined order type.
	OrderTypeUnknown OrderType = iota

	// Delivery orders are brought to the customer's address.
	Delivery

	// Pickup orders are collected at the restaurant.
	Pickup
)

// OrderTypeFromString parses the wire form ("delivery" or "pickup").
func OrderTypeFromString(s string) (OrderType, error) {
	switch s {
	case "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	default:
		return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"order type is invalid",
			fmt.Errorf("%q is not a valid order type", s),
		)
	}
}

// Validate checks that the OrderType is Delivery or Pickup.
func (t OrderType) Validate() error {
	if t != Delivery && t != Pickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type is invalid",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the wire form of the order type.
func (t OrderType) String() string {
	switch t {
	case Delivery:
		return "delivery"
	case Pickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// RequiresAddress reports whether checkout needs street/city/state/zip.
// Pickup orders only need a name and phone number.
func (t OrderType) RequiresAddress() bool {
	return t == Delivery
}
