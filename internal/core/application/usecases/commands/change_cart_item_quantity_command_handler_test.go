package commands_test

import (
	"testing"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeCartItemQuantityCommand_AcceptsZeroQuantity(t *testing.T) {
	cmd, err := commands.NewChangeCartItemQuantityCommand(kernel.NewUUID(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Quantity())
}

func TestChangeCartItemQuantityCommandHandler_Handle_SetsQuantity(t *testing.T) {
	ctx := t.Context()
	item := newBurger(t)
	cmd, _ := commands.NewChangeCartItemQuantityCommand(item.ID(), nil, 5)

	cart := order.NewCart()
	require.NoError(t, cart.AddItem(item, nil, 1))

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx).Return(cart, nil).Once(),
		cartRepo.On("Save", ctx, cart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeCartItemQuantityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 5, cart.ItemCount())
	uow.AssertExpectations(t)
}

func TestChangeCartItemQuantityCommandHandler_Handle_ZeroRemovesLine(t *testing.T) {
	ctx := t.Context()
	item := newBurger(t)
	cmd, _ := commands.NewChangeCartItemQuantityCommand(item.ID(), nil, 0)

	cart := order.NewCart()
	require.NoError(t, cart.AddItem(item, nil, 3))

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx).Return(cart, nil).Once(),
		cartRepo.On("Save", ctx, cart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeCartItemQuantityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, cart.IsEmpty())
	uow.AssertExpectations(t)
}
