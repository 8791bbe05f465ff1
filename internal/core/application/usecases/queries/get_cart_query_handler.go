package queries

import (
	"context"

	"dineease/internal/core/ports"
)

// GetCartQueryHandler retrieves the current cart through the cart repository.
type GetCartQueryHandler struct {
	cartRepository ports.CartRepository
}

// NewGetCartQueryHandler creates a handler for cart retrieval queries.
func NewGetCartQueryHandler(cartRepository ports.CartRepository) GetCartQueryHandler {
	return GetCartQueryHandler{cartRepository: cartRepository}
}

// Handle executes the cart query.
// Totals are recomputed from the lines and order type on every read; the
// cart stores no derived money values.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	cart, err := h.cartRepository.Get(ctx)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	lines := cart.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, newCartLineView(line))
	}

	return GetCartQueryResponse{
		Lines:       views,
		ItemCount:   cart.ItemCount(),
		OrderType:   cart.OrderType().String(),
		Address:     newAddressView(cart.Address()),
		Receipt:     newReceiptView(cart.Receipt()),
		FieldErrors: cart.Address().FieldErrors(cart.OrderType()),
	}, nil
}
