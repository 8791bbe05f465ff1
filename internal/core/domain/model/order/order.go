package order

import (
	"errors"
	"strings"
	"time"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCartIsEmpty is returned when placing an order from a cart with no
	// lines. Callers guard this before checkout; the constructor enforces it
	// as well so an empty order can never exist.
	ErrCartIsEmpty = errors.New("cannot place an order from an empty cart")
)

// Order is the aggregate root for a placed order. It is created at checkout
// from a cart snapshot and is immutable afterwards except for its status.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and at least one line
//   - Items, totals, order type, and address are frozen at placement
//   - Status only moves forward through the fixed tracking sequence
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                kernel.UUID
	placedAt          time.Time
	lines             []CartLine
	receipt           Receipt
	orderType         OrderType
	address           Address
	estimatedDelivery time.Time
	status            Status

	isConstructed bool
}

// NewOrder creates an order from the given cart, snapshotting its lines,
// totals, order type, and address. The cart itself is not modified; the
// caller clears it after the order is persisted.
//
// Parameters:
//   - id: unique identifier for the order
//   - cart: non-empty cart whose address validates for its order type
//   - placedAt: creation timestamp
//   - estimatedDelivery: projected delivery or pickup time
//
// The new order starts in Preparing status.
func NewOrder(id kernel.UUID, cart *Cart, placedAt, estimatedDelivery time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}
	if err := cart.Address().ValidateFor(cart.OrderType()); err != nil {
		return nil, err
	}
	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}

	return &Order{
		id:                id,
		placedAt:          placedAt,
		lines:             cart.Clone().lines,
		receipt:           cart.Receipt(),
		orderType:         cart.OrderType(),
		address:           cart.Address(),
		estimatedDelivery: estimatedDelivery,
		status:            Preparing,
		isConstructed:     true,
	}, nil
}

// RestoreOrder reconstructs an order from persisted state, including its
// current status. Used by repositories; validation mirrors NewOrder.
func RestoreOrder(
	id kernel.UUID,
	lines []CartLine,
	receipt Receipt,
	orderType OrderType,
	address Address,
	placedAt, estimatedDelivery time.Time,
	status Status,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartIsEmpty
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	restored := &Order{
		id:                id,
		placedAt:          placedAt,
		lines:             make([]CartLine, len(lines)),
		receipt:           receipt,
		orderType:         orderType,
		address:           address,
		estimatedDelivery: estimatedDelivery,
		status:            status,
		isConstructed:     true,
	}
	copy(restored.lines, lines)
	return restored, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DisplayCode returns the short human-facing order code shown on receipts
// and tracking screens, e.g. "ORD-550E8400". It is derived from the UUID
// and carries no identity of its own.
func (o *Order) DisplayCode() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(o.id.String(), "-", "")[:8])
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Lines returns a copy of the order's line snapshot.
func (o *Order) Lines() []CartLine {
	lines := make([]CartLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Receipt returns the totals frozen at placement.
func (o *Order) Receipt() Receipt {
	return o.receipt
}

// OrderType returns delivery or pickup.
func (o *Order) OrderType() OrderType {
	return o.orderType
}

// Address returns the address snapshot taken at placement.
func (o *Order) Address() Address {
	return o.address
}

// EstimatedDelivery returns the projected delivery or pickup time.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// Status returns the current tracked status.
func (o *Order) Status() Status {
	return o.status
}

// IsActive reports whether the order has not reached the terminal status.
// Active orders appear in tracking; delivered orders make up the history
// view. This replaces maintaining separate active and past collections.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// ChangeStatus moves the order to the target status.
// The transition must be strictly forward in the tracking sequence.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AdvanceStatus moves the order exactly one step forward in the tracking
// sequence. Returns an error when the order is already Delivered.
func (o *Order) AdvanceStatus() error {
	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MinutesRemaining returns the whole minutes until the estimated delivery
// time, floored at zero. Purely display logic for the tracking view.
func (o *Order) MinutesRemaining(now time.Time) int {
	remaining := o.estimatedDelivery.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / time.Minute)
}

// Clone returns an independent deep copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.lines = make([]CartLine, len(o.lines))
	for i, line := range o.lines {
		clone.lines[i] = line
		clone.lines[i].selection = line.selection.Clone()
	}
	return &clone
}
