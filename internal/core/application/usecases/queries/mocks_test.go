package queries_test

import (
	"context"
	"testing"
	"time"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context) (*order.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, cart *order.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newItem(t *testing.T, name, category string, labels []string, available bool) *menu.MenuItem {
	t.Helper()

	item, err := menu.NewMenuItem(
		kernel.NewUUID(),
		name,
		name+" description",
		kernel.NewMoneyFromCents(1299),
		category,
		"",
		labels,
		available,
		nil,
	)
	require.NoError(t, err)
	return item
}

func ptr(s string) *string { return &s }

// newPlacedOrder builds an order in Preparing status with the given ETA.
func newPlacedOrder(t *testing.T, estimatedDelivery time.Time) *order.Order {
	t.Helper()

	cart := order.NewCart()
	require.NoError(t, cart.AddItem(newItem(t, "Grilled Salmon", "Main Course", nil, true), nil, 2))
	cart.UpdateAddress(order.AddressPatch{
		Name:    ptr("John Smith"),
		Street:  ptr("123 Main St"),
		City:    ptr("Springfield"),
		State:   ptr("IL"),
		ZipCode: ptr("62704"),
		Phone:   ptr("555-123-4567"),
	})

	placedAt := estimatedDelivery.Add(-40 * time.Minute)
	o, err := order.NewOrder(kernel.NewUUID(), cart, placedAt, estimatedDelivery)
	require.NoError(t, err)
	return o
}
