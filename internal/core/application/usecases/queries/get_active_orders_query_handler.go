package queries

import (
	"context"

	"dineease/internal/core/ports"
)

// GetActiveOrdersQueryHandler retrieves undelivered orders through the order
// repository.
type GetActiveOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(orderRepository ports.OrderRepository) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the active orders query.
// Returns order read models newest first; an empty slice when nothing is
// being tracked.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepository.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, aggregate := range orders {
		views = append(views, newOrderView(aggregate))
	}

	return views, nil
}
