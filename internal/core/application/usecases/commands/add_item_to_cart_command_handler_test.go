package commands_test

import (
	"errors"
	"testing"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/domain/model/order"
	"dineease/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := newBurger(t)
	cmd, _ := commands.NewAddItemToCartCommand(item.ID(), nil, 2)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()

	cart := order.NewCart()
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

	h := commands.NewAddItemToCartCommandHandler(menuRepo, factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, cart.ItemCount())
	menuRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemToCartCommand{} // not constructed properly
	h := commands.NewAddItemToCartCommandHandler(new(MockMenuRepository), new(MockCartUoWFactory))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAddItemToCartCommandIsNotConstructed)
}

func TestAddItemToCartCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	item := newBurger(t)
	cmd, _ := commands.NewAddItemToCartCommand(item.ID(), nil, 1)

	menuRepo := new(MockMenuRepository)
	notFound := errs.NewObjectNotFoundError("itemID", item.ID())
	menuRepo.On("Get", ctx, item.ID()).Return(nil, notFound).Once()

	h := commands.NewAddItemToCartCommandHandler(menuRepo, new(MockCartUoWFactory))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	menuRepo.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	item := newBurger(t)
	cmd, _ := commands.NewAddItemToCartCommand(item.ID(), nil, 1)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx).Return(order.NewCart(), nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*order.Cart")).Return(errors.New("save error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(menuRepo, factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
