package kernel

import (
	"fmt"
	"math"

	"dineease/internal/pkg/errs"
)

// Money is a value object holding a monetary amount as an integer number of
// cents. Keeping amounts in integer cents makes subtotal, tax, and fee
// arithmetic exact; rounding happens only where a percentage is applied.
//
// Money is immutable: arithmetic methods return new values. Negative amounts
// are representable (for intermediate math) but menu prices and option
// deltas validate non-negativity at their own boundaries.
//
// Example:
//
//	price := kernel.NewMoneyFromCents(2499)           // $24.99
//	line := price.MulQuantity(2)                      // $49.98
//	tax := line.Percent(825)                          // 8.25%, rounded to cents
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an exact cent amount.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromDollars creates a Money from a dollar amount, rounding half
// away from zero to the nearest cent. Intended for boundary conversion of
// decimal inputs such as "24.99"; internal arithmetic stays in cents.
func NewMoneyFromDollars(dollars float64) Money {
	return Money{cents: int64(math.Round(dollars * 100))}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Dollars returns the amount as a float64 dollar value, for JSON responses.
func (m Money) Dollars() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// Percent applies a percentage expressed in basis points (1/100 of a
// percent) and rounds half away from zero to the nearest cent.
// 825 basis points is 8.25%.
func (m Money) Percent(basisPoints int64) Money {
	product := m.cents * basisPoints
	if product >= 0 {
		return Money{cents: (product + 5000) / 10000}
	}
	return Money{cents: (product - 5000) / 10000}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as "$12.34" ("-$12.34" for negative amounts).
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// ValidateNonNegative returns a ValueIsInvalidError when the amount is below
// zero. Menu prices and option deltas use this at construction.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is negative", m))
	}
	return nil
}
