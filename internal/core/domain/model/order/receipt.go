package order

import (
	"dineease/internal/core/domain/model/kernel"
)

// TaxRateBasisPoints is the sales tax applied to the subtotal: 8.25%.
const TaxRateBasisPoints int64 = 825

// deliveryFeeCents is the flat fee charged on non-empty delivery orders.
const deliveryFeeCents int64 = 399

// DeliveryFee returns the flat delivery fee amount ($3.99).
func DeliveryFee() kernel.Money {
	return kernel.NewMoneyFromCents(deliveryFeeCents)
}

// Receipt holds the totals computed from cart contents and the order type.
// It is a pure function of its inputs: the same lines and order type always
// produce the same receipt.
type Receipt struct {
	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
}

// NewReceipt computes totals for the given lines and order type:
//
//	subtotal = sum of unit price x quantity over all lines
//	tax      = subtotal x 8.25%, rounded to the nearest cent
//	fee      = $3.99 iff the order type is delivery and there are lines
//	total    = subtotal + tax + fee
func NewReceipt(lines []CartLine, orderType OrderType) Receipt {
	subtotal := kernel.NewMoneyFromCents(0)
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	tax := subtotal.Percent(TaxRateBasisPoints)

	fee := kernel.NewMoneyFromCents(0)
	if orderType == Delivery && len(lines) > 0 {
		fee = DeliveryFee()
	}

	return Receipt{
		subtotal:    subtotal,
		tax:         tax,
		deliveryFee: fee,
		total:       subtotal.Add(tax).Add(fee),
	}
}

// RestoreReceipt reconstructs a receipt from persisted totals.
func RestoreReceipt(subtotal, tax, deliveryFee, total kernel.Money) Receipt {
	return Receipt{subtotal: subtotal, tax: tax, deliveryFee: deliveryFee, total: total}
}

// Subtotal returns the sum of line totals.
func (r Receipt) Subtotal() kernel.Money {
	return r.subtotal
}

// Tax returns the sales tax amount.
func (r Receipt) Tax() kernel.Money {
	return r.tax
}

// DeliveryFee returns the fee charged, zero for pickup or empty carts.
func (r Receipt) DeliveryFee() kernel.Money {
	return r.deliveryFee
}

// Total returns subtotal + tax + delivery fee.
func (r Receipt) Total() kernel.Money {
	return r.total
}
