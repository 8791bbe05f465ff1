package queries

import (
	"errors"

	"dineease/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the current cart with computed totals.
//
// Example:
//
//	query := NewGetCartQuery()
//	handler := NewGetCartQueryHandler(cartRepo)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load cart: %w", err)
//	}
//
//	fmt.Printf("%d items, total %s\n", cart.ItemCount, cart.Receipt.Total)
type GetCartQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to retrieve the cart.
// This is a parameterless query.
func NewGetCartQuery() GetCartQuery {
	return GetCartQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// GetCartQueryResponse represents the cart in the read model: its lines, the
// selected order type, the address collected so far, and the receipt for the
// current contents. FieldErrors lists what still blocks checkout; an empty
// map means the cart would pass address validation as it stands.
type GetCartQueryResponse struct {
	Lines       []CartLineView
	ItemCount   int
	OrderType   string
	Address     AddressView
	Receipt     ReceiptView
	FieldErrors map[string]string
}
