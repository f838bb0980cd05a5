package catalog_test

import (
	"context"
	"errors"
	"testing"

	"drivethru/internal/catalog"
	"drivethru/internal/domain"
	"drivethru/internal/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newCachedService(t *testing.T) (*catalog.Service, *mocks.Repository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := mocks.NewRepository(t)
	svc := catalog.NewService(repo, catalog.NewMenuCache(client, catalog.DefaultMenuTTL))
	return svc, repo, mr
}

func testMenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID: 1, RestaurantID: 10, Name: "Big Burger", Price: 8.99, IsAvailable: true,
			AvailableSizes:        []string{"regular", "large"},
			ModifiableIngredients: []string{"cheese", "onions"},
			Ingredients: []domain.IngredientLink{
				{MenuItemID: 1, IngredientID: 5, IngredientName: "Cheese", AdditionalCost: 0.50},
			},
		},
		{ID: 2, RestaurantID: 10, Name: "Veggie Burger", Price: 7.99, IsAvailable: true},
	}
}

func testIngredients() []domain.Ingredient {
	return []domain.Ingredient{
		{ID: 5, RestaurantID: 10, Name: "Cheese", IsAllergen: true, AllergenType: "dairy"},
		{ID: 6, RestaurantID: 10, Name: "Onions"},
	}
}

func TestService_PreloadMenu(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	repo.On("GetRestaurantName", ctx, 10).Return("Testaurant", nil).Once()
	repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Once()
	repo.On("ListIngredients", ctx, 10).Return(testIngredients(), nil).Once()

	assert.NoError(t, svc.PreloadMenu(ctx, 10))

	// Preloaded snapshot serves searches without touching postgres again.
	matches, err := svc.FuzzySearchMenuItems(ctx, 10, "big burger", 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, matches)
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, 100.0, matches[0].Score)
}

func TestService_FuzzySearchMenuItems_CacheMissFallsBack(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Once()

	matches, err := svc.FuzzySearchMenuItems(ctx, 10, "veggie burger", 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, matches)
	assert.Equal(t, 2, matches[0].ID)
}

func TestService_FuzzySearchIngredients(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	repo.On("ListIngredients", ctx, 10).Return(testIngredients(), nil).Once()

	matches, err := svc.FuzzySearchIngredients(ctx, 10, "cheese", 1)
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, 5, matches[0].ID)
	assert.True(t, matches[0].IsAllergen)
	assert.Equal(t, "dairy", matches[0].AllergenType)
}

func TestService_GetMenuItem(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Twice()

	item, err := svc.GetMenuItem(ctx, 10, 1)
	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.Equal(t, "Big Burger", item.Name)

	missing, err := svc.GetMenuItem(ctx, 10, 404)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_GetIngredientLink(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	t.Run("resolved_from_item_links", func(t *testing.T) {
		repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Once()

		link, err := svc.GetIngredientLink(ctx, 10, 1, 5)
		assert.NoError(t, err)
		assert.NotNil(t, link)
		assert.Equal(t, 0.50, link.AdditionalCost)
	})

	t.Run("falls_back_to_repository", func(t *testing.T) {
		repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Once()
		repo.On("GetIngredientLink", ctx, 1, 6).
			Return(&domain.IngredientLink{MenuItemID: 1, IngredientID: 6, AdditionalCost: 0.25}, nil).Once()

		link, err := svc.GetIngredientLink(ctx, 10, 1, 6)
		assert.NoError(t, err)
		assert.NotNil(t, link)
		assert.Equal(t, 0.25, link.AdditionalCost)
	})
}

func TestService_InvalidateMenu(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	repo.On("GetRestaurantName", ctx, 10).Return("Testaurant", nil).Once()
	repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Once()
	repo.On("ListIngredients", ctx, 10).Return(testIngredients(), nil).Once()
	assert.NoError(t, svc.PreloadMenu(ctx, 10))

	assert.NoError(t, svc.InvalidateMenu(ctx, 10))

	// Invalidated cache means the next search goes to postgres.
	repo.On("ListMenuItems", ctx, 10).Return(testMenuItems(), nil).Once()
	_, err := svc.FuzzySearchMenuItems(ctx, 10, "burger", 5)
	assert.NoError(t, err)
}

func TestService_RepositoryError(t *testing.T) {
	svc, repo, _ := newCachedService(t)
	ctx := context.Background()

	repo.On("ListMenuItems", ctx, 10).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.FuzzySearchMenuItems(ctx, 10, "burger", 5)
	assert.Error(t, err)
}
