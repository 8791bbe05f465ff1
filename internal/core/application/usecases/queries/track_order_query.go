package queries

import (
	"errors"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves one order together with its tracking timeline
// and the minutes remaining until the estimated delivery time.
//
// Example:
//
//	query, err := NewTrackOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	handler := NewTrackOrderQueryHandler(orderRepo)
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//
//	fmt.Printf("%s: %s, %d min remaining\n",
//	    tracking.Order.DisplayCode, tracking.Order.Status, tracking.MinutesRemaining)
type TrackOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track a single order.
// Returns an error when the order ID is invalid.
func NewTrackOrderQuery(orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to track.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TimelineStepView is one station of the tracking timeline. Reached reports
// whether the order has passed (or is at) this step; Current marks the step
// the order sits at right now.
type TimelineStepView struct {
	Status      string
	Label       string
	Description string
	Reached     bool
	Current     bool
}

// TrackOrderQueryResponse carries the order, its full five-step timeline,
// and the whole minutes left until the estimated delivery time (zero once
// the estimate has passed).
type TrackOrderQueryResponse struct {
	Order            OrderView
	Timeline         []TimelineStepView
	MinutesRemaining int
}
