package queries_test

import (
	"testing"
	"time"

	"dineease/internal/core/application/usecases/queries"
	"dineease/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderHistoryQueryHandler_Handle_SplitsByActivity(t *testing.T) {
	ctx := t.Context()
	eta := time.Now().Add(40 * time.Minute)

	active := newPlacedOrder(t, eta)
	delivered := newPlacedOrder(t, eta)
	require.NoError(t, delivered.ChangeStatus(order.Delivered))

	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return([]*order.Order{active, delivered}, nil).Once()

	h := queries.NewGetOrderHistoryQueryHandler(repo)
	response, err := h.Handle(ctx, queries.NewGetOrderHistoryQuery())
	require.NoError(t, err)

	require.Len(t, response.Active, 1)
	require.Len(t, response.Past, 1)
	assert.Equal(t, active.ID(), response.Active[0].ID)
	assert.Equal(t, delivered.ID(), response.Past[0].ID)
	assert.Equal(t, "Delivered", response.Past[0].Status)
	repo.AssertExpectations(t)
}

func TestGetOrderHistoryQueryHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()

	h := queries.NewGetOrderHistoryQueryHandler(repo)
	response, err := h.Handle(ctx, queries.NewGetOrderHistoryQuery())
	require.NoError(t, err)

	assert.NotNil(t, response.Active)
	assert.NotNil(t, response.Past)
	assert.Empty(t, response.Active)
	assert.Empty(t, response.Past)
}

func TestGetActiveOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	eta := time.Now().Add(40 * time.Minute)
	first := newPlacedOrder(t, eta)

	repo := new(MockOrderRepository)
	repo.On("GetAllActive", ctx).Return([]*order.Order{first}, nil).Once()

	h := queries.NewGetActiveOrdersQueryHandler(repo)
	views, err := h.Handle(ctx, queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, first.DisplayCode(), views[0].DisplayCode)
	assert.Equal(t, 2, views[0].ItemCount)
	repo.AssertExpectations(t)
}

func TestGetActiveOrdersQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewGetActiveOrdersQueryHandler(new(MockOrderRepository))
	_, err := h.Handle(t.Context(), queries.GetActiveOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
