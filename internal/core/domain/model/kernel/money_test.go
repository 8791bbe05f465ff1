package kernel_test

import (
	"testing"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Constructors(t *testing.T) {
	t.Run("from cents", func(t *testing.T) {
		m := kernel.NewMoneyFromCents(2499)

		assert.Equal(t, int64(2499), m.Cents())
		assert.InDelta(t, 24.99, m.Dollars(), 0.0001)
	})

	t.Run("from dollars rounds to nearest cent", func(t *testing.T) {
		cases := []struct {
			dollars float64
			cents   int64
		}{
			{24.99, 2499},
			{9.99, 999},
			{0, 0},
			{3.999, 400},
			{0.005, 1},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.cents, kernel.NewMoneyFromDollars(tc.dollars).Cents(),
				"dollars %v", tc.dollars)
		}
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and multiply", func(t *testing.T) {
		a := kernel.NewMoneyFromCents(2499)
		b := kernel.NewMoneyFromCents(999)

		assert.Equal(t, int64(3498), a.Add(b).Cents())
		assert.Equal(t, int64(4998), a.MulQuantity(2).Cents())
	})

	t.Run("percent rounds half away from zero", func(t *testing.T) {
		// 8.25% of $59.97 is $4.947525, which rounds to $4.95.
		subtotal := kernel.NewMoneyFromCents(5997)
		tax := subtotal.Percent(825)

		assert.Equal(t, int64(495), tax.Cents())
	})

	t.Run("percent of zero is zero", func(t *testing.T) {
		assert.True(t, kernel.NewMoneyFromCents(0).Percent(825).IsZero())
	})
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "$24.99", kernel.NewMoneyFromCents(2499).String())
	assert.Equal(t, "$0.05", kernel.NewMoneyFromCents(5).String())
	assert.Equal(t, "-$1.50", kernel.NewMoneyFromCents(-150).String())
}

func TestMoney_ValidateNonNegative(t *testing.T) {
	t.Run("non-negative passes", func(t *testing.T) {
		require.NoError(t, kernel.NewMoneyFromCents(0).ValidateNonNegative("price"))
		require.NoError(t, kernel.NewMoneyFromCents(100).ValidateNonNegative("price"))
	})

	t.Run("negative fails with typed error", func(t *testing.T) {
		err := kernel.NewMoneyFromCents(-1).ValidateNonNegative("price")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})
}
