package queries

import (
	"context"

	"dineease/internal/core/ports"
)

// GetOrderHistoryQueryHandler retrieves all orders and groups them by
// activity for the history view.
type GetOrderHistoryQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(orderRepository ports.OrderRepository) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{orderRepository: orderRepository}
}

// Handle executes the order history query.
// Returns active (undelivered) and past (delivered) orders, newest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	response := GetOrderHistoryQueryResponse{
		Active: make([]OrderView, 0),
		Past:   make([]OrderView, 0),
	}
	for _, aggregate := range orders {
		if aggregate.IsActive() {
			response.Active = append(response.Active, newOrderView(aggregate))
		} else {
			response.Past = append(response.Past, newOrderView(aggregate))
		}
	}

	return response, nil
}
