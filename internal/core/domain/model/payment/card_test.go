package payment_test

import (
	"testing"
	"time"

	"dineease/internal/core/domain/model/payment"
	"dineease/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkoutTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func validCard() payment.CardDetails {
	return payment.CardDetails{
		Number: "4242 4242 4242 4242",
		Name:   "John Smith",
		Expiry: "12/26",
		CVV:    "123",
	}
}

func TestCardDetails_FieldErrors(t *testing.T) {
	t.Run("valid card has no errors", func(t *testing.T) {
		assert.Empty(t, validCard().FieldErrors(checkoutTime))
	})

	t.Run("number must be 16 digits, spaces tolerated", func(t *testing.T) {
		card := validCard()
		card.Number = "4242"

		fieldErrors := card.FieldErrors(checkoutTime)

		assert.Equal(t, "Invalid card number", fieldErrors["number"])
	})

	t.Run("name is required", func(t *testing.T) {
		card := validCard()
		card.Name = ""

		assert.Equal(t, "Name on card is required", card.FieldErrors(checkoutTime)["name"])
	})

	t.Run("expiry format is checked", func(t *testing.T) {
		for _, expiry := range []string{"13/26", "1/26", "12-26", "1226", ""} {
			card := validCard()
			card.Expiry = expiry

			assert.Equal(t, "Invalid expiry date (MM/YY)",
				card.FieldErrors(checkoutTime)["expiry"], "expiry %q", expiry)
		}
	})

	t.Run("expired card is rejected", func(t *testing.T) {
		card := validCard()
		card.Expiry = "02/24"

		assert.Equal(t, "Card has expired", card.FieldErrors(checkoutTime)["expiry"])
	})

	t.Run("card expiring this month is still valid", func(t *testing.T) {
		card := validCard()
		card.Expiry = "03/24"

		assert.Empty(t, card.FieldErrors(checkoutTime))
	})

	t.Run("cvv must be three or four digits", func(t *testing.T) {
		for _, cvv := range []string{"12", "12345", "abc", ""} {
			card := validCard()
			card.CVV = cvv

			assert.Equal(t, "Invalid CVV", card.FieldErrors(checkoutTime)["cvv"], "cvv %q", cvv)
		}
		for _, cvv := range []string{"123", "1234"} {
			card := validCard()
			card.CVV = cvv

			assert.Empty(t, card.FieldErrors(checkoutTime), "cvv %q", cvv)
		}
	})
}

func TestCardDetails_Validate(t *testing.T) {
	t.Run("valid passes", func(t *testing.T) {
		require.NoError(t, validCard().Validate(checkoutTime))
	})

	t.Run("invalid returns typed error", func(t *testing.T) {
		err := payment.CardDetails{}.Validate(checkoutTime)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "number")
	})
}

func TestMethodFromString(t *testing.T) {
	cash, err := payment.MethodFromString("cash")
	require.NoError(t, err)
	assert.Equal(t, payment.Cash, cash)

	card, err := payment.MethodFromString("card")
	require.NoError(t, err)
	assert.Equal(t, payment.Card, card)

	_, err = payment.MethodFromString("check")
	require.Error(t, err)
}

func TestMethod_Validate(t *testing.T) {
	require.NoError(t, payment.Cash.Validate())
	require.NoError(t, payment.Card.Validate())
	require.Error(t, payment.MethodUnknown.Validate())
}
