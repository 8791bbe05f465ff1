package order_test

import (
	"strings"
	"testing"
	"time"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutReadyCart(t *testing.T) *order.Cart {
	t.Helper()
	cart := order.NewCart()
	salmon := newTestItem(t, "Grilled Salmon", 2499)
	cake := newTestItem(t, "Chocolate Lava Cake", 999)
	require.NoError(t, cart.AddItem(salmon, nil, 2))
	require.NoError(t, cart.AddItem(cake, nil, 1))
	cart.UpdateAddress(order.AddressPatch{
		Name:    ptr("John Smith"),
		Street:  ptr("123 Main St"),
		City:    ptr("Foodville"),
		State:   ptr("CA"),
		ZipCode: ptr("90210"),
		Phone:   ptr("(555) 123-4567"),
	})
	return cart
}

func ptr(s string) *string { return &s }

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	eta := placedAt.Add(40 * time.Minute)

	t.Run("snapshots the cart", func(t *testing.T) {
		cart := newCheckoutReadyCart(t)

		placed, err := order.NewOrder(kernel.NewUUID(), cart, placedAt, eta)

		require.NoError(t, err)
		require.NoError(t, placed.Validate())
		assert.Equal(t, order.Preparing, placed.Status())
		assert.True(t, placed.IsActive())
		assert.Equal(t, cart.Lines(), placed.Lines())
		assert.Equal(t, int64(6891), placed.Receipt().Total().Cents())
		assert.Equal(t, order.Delivery, placed.OrderType())
		assert.Equal(t, "John Smith", placed.Address().Name)
		assert.Equal(t, eta, placed.EstimatedDelivery())
	})

	t.Run("snapshot is independent of later cart changes", func(t *testing.T) {
		cart := newCheckoutReadyCart(t)

		placed, err := order.NewOrder(kernel.NewUUID(), cart, placedAt, eta)
		require.NoError(t, err)
		cart.Clear()

		assert.Len(t, placed.Lines(), 2)
	})

	t.Run("rejects empty cart without panicking", func(t *testing.T) {
		cart := order.NewCart()

		placed, err := order.NewOrder(kernel.NewUUID(), cart, placedAt, eta)

		require.ErrorIs(t, err, order.ErrCartIsEmpty)
		assert.Nil(t, placed)
	})

	t.Run("rejects address invalid for the order type", func(t *testing.T) {
		cart := order.NewCart()
		salmon := newTestItem(t, "Grilled Salmon", 2499)
		require.NoError(t, cart.AddItem(salmon, nil, 1))
		cart.UpdateAddress(order.AddressPatch{Name: ptr("John Smith"), Phone: ptr("555-123-4567")})

		// Delivery needs street/city/state/zip; pickup does not.
		_, err := order.NewOrder(kernel.NewUUID(), cart, placedAt, eta)
		require.Error(t, err)

		require.NoError(t, cart.SetOrderType(order.Pickup))
		_, err = order.NewOrder(kernel.NewUUID(), cart, placedAt, eta)
		require.NoError(t, err)
	})

	t.Run("rejects invalid id and zero timestamp", func(t *testing.T) {
		cart := newCheckoutReadyCart(t)

		_, err := order.NewOrder(kernel.UUID{}, cart, placedAt, eta)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), cart, time.Time{}, eta)
		require.Error(t, err)
	})
}

func TestOrder_DisplayCode(t *testing.T) {
	cart := newCheckoutReadyCart(t)
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	placed, err := order.NewOrder(id, cart, time.Now(), time.Now().Add(40*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "ORD-550E8400", placed.DisplayCode())
	assert.True(t, strings.HasPrefix(placed.DisplayCode(), "ORD-"))
}

func TestOrder_StatusTransitions(t *testing.T) {
	newPlaced := func(t *testing.T) *order.Order {
		t.Helper()
		placed, err := order.NewOrder(kernel.NewUUID(), newCheckoutReadyCart(t),
			time.Now(), time.Now().Add(40*time.Minute))
		require.NoError(t, err)
		return placed
	}

	t.Run("advances through the full sequence", func(t *testing.T) {
		placed := newPlaced(t)

		for _, expected := range []order.Status{
			order.Cooking, order.Packaging, order.OnTheWay, order.Delivered,
		} {
			require.NoError(t, placed.AdvanceStatus())
			assert.Equal(t, expected, placed.Status())
		}
		assert.False(t, placed.IsActive())
		require.Error(t, placed.AdvanceStatus())
	})

	t.Run("ChangeStatus allows forward skips and rejects regression", func(t *testing.T) {
		placed := newPlaced(t)

		require.NoError(t, placed.ChangeStatus(order.OnTheWay))
		assert.Equal(t, order.OnTheWay, placed.Status())

		err := placed.ChangeStatus(order.Cooking)
		require.Error(t, err)
		assert.Equal(t, order.OnTheWay, placed.Status())
	})

	t.Run("only status mutates", func(t *testing.T) {
		placed := newPlaced(t)
		linesBefore := placed.Lines()
		totalBefore := placed.Receipt().Total()

		require.NoError(t, placed.AdvanceStatus())

		assert.Equal(t, linesBefore, placed.Lines())
		assert.Equal(t, totalBefore, placed.Receipt().Total())
	})
}

func TestOrder_MinutesRemaining(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	placed, err := order.NewOrder(kernel.NewUUID(), newCheckoutReadyCart(t),
		now, now.Add(40*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 40, placed.MinutesRemaining(now))
	assert.Equal(t, 25, placed.MinutesRemaining(now.Add(15*time.Minute)))
	assert.Equal(t, 0, placed.MinutesRemaining(now.Add(40*time.Minute)))
	assert.Equal(t, 0, placed.MinutesRemaining(now.Add(2*time.Hour)))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips an order", func(t *testing.T) {
		placedAt := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
		original, err := order.NewOrder(kernel.NewUUID(), newCheckoutReadyCart(t),
			placedAt, placedAt.Add(40*time.Minute))
		require.NoError(t, err)
		require.NoError(t, original.AdvanceStatus())

		restored, err := order.RestoreOrder(
			original.ID(),
			original.Lines(),
			original.Receipt(),
			original.OrderType(),
			original.Address(),
			original.PlacedAt(),
			original.EstimatedDelivery(),
			original.Status(),
		)

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.Lines(), restored.Lines())
	})

	t.Run("rejects empty lines and invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), nil, order.Receipt{},
			order.Delivery, order.Address{}, time.Now(), time.Now(), order.Preparing)
		require.ErrorIs(t, err, order.ErrCartIsEmpty)

		line, err := order.RestoreCartLine(kernel.NewUUID(), "Soup", kernel.NewMoneyFromCents(100), nil, 1)
		require.NoError(t, err)
		_, err = order.RestoreOrder(kernel.NewUUID(), []order.CartLine{line}, order.Receipt{},
			order.Delivery, order.Address{}, time.Now(), time.Now(), order.Unknown)
		require.Error(t, err)
	})
}

func TestOrder_Clone(t *testing.T) {
	placed, err := order.NewOrder(kernel.NewUUID(), newCheckoutReadyCart(t),
		time.Now(), time.Now().Add(40*time.Minute))
	require.NoError(t, err)

	clone := placed.Clone()
	require.NoError(t, clone.AdvanceStatus())

	assert.Equal(t, order.Preparing, placed.Status())
	assert.Equal(t, order.Cooking, clone.Status())
}
