package queries_test

import (
	"testing"

	"dineease/internal/core/application/usecases/queries"
	"dineease/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuFixture(t *testing.T) []*menu.MenuItem {
	t.Helper()

	return []*menu.MenuItem{
		newItem(t, "Grilled Salmon", "Main Course", []string{"Gluten-Free"}, true),
		newItem(t, "Caesar Salad", "Appetizers", []string{"Vegetarian"}, true),
		newItem(t, "Mushroom Risotto", "Main Course", []string{"Vegetarian", "Gluten-Free"}, true),
		newItem(t, "Chocolate Lava Cake", "Desserts", []string{"Vegetarian"}, false),
	}
}

func TestGetMenuQueryHandler_Handle_NoFilters(t *testing.T) {
	ctx := t.Context()
	repo := new(MockMenuRepository)
	repo.On("GetAll", ctx).Return(menuFixture(t), nil).Once()

	h := queries.NewGetMenuQueryHandler(repo)
	response, err := h.Handle(ctx, queries.NewGetMenuQuery("", "", nil, false))
	require.NoError(t, err)

	assert.Len(t, response.Items, 4)
	assert.Equal(t, []string{"Main Course", "Appetizers", "Desserts"}, response.Categories)
	assert.Equal(t, []string{"Gluten-Free", "Vegetarian"}, response.DietaryLabels)
	repo.AssertExpectations(t)
}

func TestGetMenuQueryHandler_Handle_Filters(t *testing.T) {
	t.Run("by category", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(menuFixture(t), nil).Once()

		h := queries.NewGetMenuQueryHandler(repo)
		response, err := h.Handle(ctx, queries.NewGetMenuQuery("Main Course", "", nil, false))
		require.NoError(t, err)

		require.Len(t, response.Items, 2)
		assert.Equal(t, "Grilled Salmon", response.Items[0].Name)
		assert.Equal(t, "Mushroom Risotto", response.Items[1].Name)
	})

	t.Run("search is case-insensitive over name and description", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(menuFixture(t), nil).Once()

		h := queries.NewGetMenuQueryHandler(repo)
		response, err := h.Handle(ctx, queries.NewGetMenuQuery("", "SALMON", nil, false))
		require.NoError(t, err)

		require.Len(t, response.Items, 1)
		assert.Equal(t, "Grilled Salmon", response.Items[0].Name)
	})

	t.Run("every dietary label must match", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(menuFixture(t), nil).Once()

		h := queries.NewGetMenuQueryHandler(repo)
		response, err := h.Handle(ctx,
			queries.NewGetMenuQuery("", "", []string{"Vegetarian", "Gluten-Free"}, false))
		require.NoError(t, err)

		require.Len(t, response.Items, 1)
		assert.Equal(t, "Mushroom Risotto", response.Items[0].Name)
	})

	t.Run("available only drops unavailable items", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(menuFixture(t), nil).Once()

		h := queries.NewGetMenuQueryHandler(repo)
		response, err := h.Handle(ctx, queries.NewGetMenuQuery("", "", nil, true))
		require.NoError(t, err)

		assert.Len(t, response.Items, 3)
	})

	t.Run("listings describe the full menu even when filtered", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(menuFixture(t), nil).Once()

		h := queries.NewGetMenuQueryHandler(repo)
		response, err := h.Handle(ctx, queries.NewGetMenuQuery("Desserts", "", nil, false))
		require.NoError(t, err)

		assert.Len(t, response.Items, 1)
		assert.Equal(t, []string{"Main Course", "Appetizers", "Desserts"}, response.Categories)
	})
}

func TestGetMenuQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewGetMenuQueryHandler(new(MockMenuRepository))
	_, err := h.Handle(t.Context(), queries.GetMenuQuery{})
	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}
