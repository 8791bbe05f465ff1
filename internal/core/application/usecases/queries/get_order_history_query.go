package queries

import (
	"errors"

	"dineease/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves every order placed, split into active and
// past groups. The grouping is derived from each order's status; there is no
// separate history collection to keep in sync.
type GetOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query to retrieve the order history.
// This is a parameterless query.
func NewGetOrderHistoryQuery() GetOrderHistoryQuery {
	return GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// GetOrderHistoryQueryResponse splits orders by whether they are still being
// tracked. Both groups are newest first.
type GetOrderHistoryQueryResponse struct {
	Active []OrderView
	Past   []OrderView
}
