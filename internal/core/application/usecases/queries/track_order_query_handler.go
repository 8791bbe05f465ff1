package queries

import (
	"context"
	"time"

	"dineease/internal/core/domain/model/order"
	"dineease/internal/core/ports"
)

// timelineStep pairs a status with the copy shown on the tracking screen.
type timelineStep struct {
	status      order.Status
	label       string
	description string
}

// trackingTimeline is the fixed five-step sequence displayed to customers.
func trackingTimeline() []timelineStep {
	return []timelineStep{
		{order.Preparing, "Order Confirmed", "Your order has been received and is being prepared."},
		{order.Cooking, "Cooking", "Our chefs are now preparing your delicious meal."},
		{order.Packaging, "Packaging", "Your meal is being carefully packaged."},
		{order.OnTheWay, "On the way", "Your order is on its way to you!"},
		{order.Delivered, "Delivered", "Your order has been delivered. Enjoy your meal!"},
	}
}

// TrackOrderQueryHandler builds the tracking view for a single order: the
// order itself, the timeline with reached/current markers, and the minutes
// remaining computed against the wall clock at query time.
type TrackOrderQueryHandler struct {
	orderRepository ports.OrderRepository
	now             func() time.Time
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
func NewTrackOrderQueryHandler(orderRepository ports.OrderRepository) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{
		orderRepository: orderRepository,
		now:             time.Now,
	}
}

// Handle executes the tracking query.
// Returns an ObjectNotFoundError when the order does not exist.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	current := aggregate.Status()
	timeline := make([]TimelineStepView, 0, len(trackingTimeline()))
	for _, step := range trackingTimeline() {
		timeline = append(timeline, TimelineStepView{
			Status:      step.status.String(),
			Label:       step.label,
			Description: step.description,
			Reached:     step.status <= current,
			Current:     step.status == current,
		})
	}

	return TrackOrderQueryResponse{
		Order:            newOrderView(aggregate),
		Timeline:         timeline,
		MinutesRemaining: aggregate.MinutesRemaining(h.now()),
	}, nil
}
