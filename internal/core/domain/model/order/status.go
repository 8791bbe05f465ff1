package order

import (
	"fmt"

	"dineease/internal/pkg/errs"
)

// Status represents the tracked lifecycle state of a placed order.
// It implements a state machine over the fixed sequence
//
//	Preparing -> Cooking -> Packaging -> OnTheWay -> Delivered
//
// Transitions only move forward: regressions are rejected, and Delivered is
// terminal. The tracking simulator steps one status at a time via Next;
// direct transitions may skip ahead but never back.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status assigned when an order is placed.
	Preparing

	// Cooking indicates the kitchen is working on the order.
	Cooking

	// Packaging indicates the order is being packed for handoff.
	Packaging

	// OnTheWay indicates the order has left for delivery or is ready soon
	// for pickup.
	OnTheWay

	// Delivered is the terminal status; the order is no longer active.
	Delivered
)

// getStatusStrings returns the string representation of every Status value,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Preparing: "Preparing",
		Cooking:   "Cooking",
		Packaging: "Packaging",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns only the valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "Preparing",
		Cooking:   "Cooking",
		Packaging: "Packaging",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
	}
}

// StatusFromString parses a status name as it appears on the wire or in
// storage. Returns an error for names outside the fixed sequence.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the five tracked statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is Delivered, the end of the
// sequence. Orders in a terminal status are no longer active.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the following status in the fixed sequence.
//
// Returns:
//   - (next, nil) for any valid non-terminal status
//   - (0, error) when the status is Delivered or invalid
//
// The tracking simulator uses Next to advance exactly one step per tick.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is the terminal status and has no next step", s),
		)
	}
	return s + 1, nil
}

// TransitionTo validates a transition from s to target.
//
// Valid transitions move strictly forward in the sequence; skipping
// intermediate statuses is allowed, regressing or staying in place is not.
//
// Returns:
//   - (target, nil) on a valid forward transition
//   - (0, error) when either status is invalid or the move is not forward
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if target <= s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move from %s back to %s", s, target),
		)
	}
	return target, nil
}
