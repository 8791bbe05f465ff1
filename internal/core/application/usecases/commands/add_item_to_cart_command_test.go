package commands_test

import (
	"testing"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemToCartCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	selection := menu.Selection{"Size": "Large"}

	cmd, err := commands.NewAddItemToCartCommand(id, selection, 2)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, selection, cmd.Selection())
	assert.Equal(t, 2, cmd.Quantity())
}

func TestNewAddItemToCartCommand_QuantityNormalizedToOne(t *testing.T) {
	cmd, err := commands.NewAddItemToCartCommand(kernel.NewUUID(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Quantity())
}

func TestNewAddItemToCartCommand_InvalidItemID(t *testing.T) {
	_, err := commands.NewAddItemToCartCommand(kernel.UUID{}, nil, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddItemToCartCommand_SelectionIsCopied(t *testing.T) {
	selection := menu.Selection{"Size": "Large"}
	cmd, err := commands.NewAddItemToCartCommand(kernel.NewUUID(), selection, 1)
	require.NoError(t, err)

	selection["Size"] = "Small"
	assert.Equal(t, "Large", cmd.Selection()["Size"])
}
