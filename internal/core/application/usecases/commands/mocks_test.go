package commands_test

import (
	"context"
	"testing"
	"time"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/core/domain/model/order"
	"dineease/internal/core/domain/model/payment"
	"dineease/internal/core/ports"

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

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) Process(
	ctx context.Context,
	method payment.Method,
	card payment.CardDetails,
	amount kernel.Money,
) error {
	args := m.Called(ctx, method, card, amount)
	return args.Error(0)
}

// newBurger builds an available menu item for tests.
func newBurger(t *testing.T) *menu.MenuItem {
	t.Helper()

	item, err := menu.NewMenuItem(
		kernel.NewUUID(),
		"Classic Burger",
		"Char-grilled beef patty",
		kernel.NewMoneyFromCents(1499),
		"Main Course",
		"",
		nil,
		true,
		nil,
	)
	require.NoError(t, err)
	return item
}

// newCheckoutCart builds a cart with one line and a complete delivery address.
func newCheckoutCart(t *testing.T) *order.Cart {
	t.Helper()

	cart := order.NewCart()
	require.NoError(t, cart.AddItem(newBurger(t), nil, 1))
	cart.UpdateAddress(order.AddressPatch{
		Name:    ptr("John Smith"),
		Street:  ptr("123 Main St"),
		City:    ptr("Springfield"),
		State:   ptr("IL"),
		ZipCode: ptr("62704"),
		Phone:   ptr("(555) 123-4567"),
	})
	return cart
}

func ptr(s string) *string { return &s }

// newTrackedOrder builds a persisted-looking order in Preparing status.
func newTrackedOrder(t *testing.T) *order.Order {
	t.Helper()

	placedAt := time.Now()
	o, err := order.NewOrder(kernel.NewUUID(), newCheckoutCart(t), placedAt, placedAt.Add(40*time.Minute))
	require.NoError(t, err)
	return o
}
