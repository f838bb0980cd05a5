package split_test

import (
	"context"
	"testing"
	"time"

	"drivethru/internal/domain"
	"drivethru/internal/mocks"
	"drivethru/internal/split"

	"github.com/stretchr/testify/assert"
)

func burgerItem() *domain.MenuItem {
	return &domain.MenuItem{
		ID: 1, RestaurantID: 10, Name: "Big Burger", Price: 8.99, IsAvailable: true,
		AvailableSizes:        []string{"regular", "large"},
		ModifiableIngredients: []string{"cheese", "onions", "pickles"},
		MaxQuantity:           10,
	}
}

func burgerOrder(quantity int) *domain.OrderSession {
	return &domain.OrderSession{
		ID:           "order_1",
		SessionID:    "sess-1",
		RestaurantID: 10,
		Status:       domain.OrderStatusActive,
		Items: []domain.OrderLine{
			{
				ID:         "line_1",
				MenuItemID: 1,
				Quantity:   quantity,
				UnitPrice:  8.99,
				TotalPrice: 8.99 * float64(quantity),
				AddedAt:    time.Now().UTC(),
			},
		},
	}
}

func expectCheese(catalog *mocks.ItemCatalog, ctx context.Context) {
	catalog.On("FuzzySearchIngredients", ctx, 10, "cheese", 1).
		Return([]domain.IngredientMatch{{ID: 5, Name: "Cheese", Score: 100}}, nil)
	catalog.On("GetIngredientLink", ctx, 10, 1, 5).
		Return(&domain.IngredientLink{MenuItemID: 1, IngredientID: 5, IngredientName: "Cheese", AdditionalCost: 0.50}, nil)
}

func TestEngine_Split_WholeLineMutatesInPlace(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)
	expectCheese(catalog, ctx)

	order := burgerOrder(2)
	result, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Modifiers: []string{"extra cheese"}})

	assert.NoError(t, err)
	assert.Len(t, order.Items, 1)
	assert.Len(t, result.Lines, 1)
	assert.Equal(t, "line_1", order.Items[0].ID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "extra cheese", order.Items[0].Modifications.IngredientModifications)
	// (8.99 + 0.50) * 2
	assert.InDelta(t, 18.98, order.Items[0].TotalPrice, 0.001)
	assert.InDelta(t, 1.00, result.AdditionalCost, 0.001)
}

func TestEngine_Split_PartialLineSplits(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)
	expectCheese(catalog, ctx)

	order := burgerOrder(3)
	result, err := engine.Split(ctx, order, "line_1", 1, split.Modification{Modifiers: []string{"extra cheese"}})

	assert.NoError(t, err)
	assert.Len(t, order.Items, 2)
	assert.Len(t, result.Lines, 2)

	modified, remainder := order.Items[0], order.Items[1]
	assert.Equal(t, 1, modified.Quantity)
	assert.Equal(t, "extra cheese", modified.Modifications.IngredientModifications)
	assert.InDelta(t, 9.49, modified.TotalPrice, 0.001)

	assert.Equal(t, 2, remainder.Quantity)
	assert.Empty(t, remainder.Modifications.IngredientModifications)
	assert.InDelta(t, 17.98, remainder.TotalPrice, 0.001)

	// Quantities always sum to the original line; the remainder keeps the
	// original line's identity.
	assert.Equal(t, 3, modified.Quantity+remainder.Quantity)
	assert.Equal(t, "line_1", remainder.ID)
	assert.NotEqual(t, modified.ID, remainder.ID)
	assert.InDelta(t, 0.50, result.AdditionalCost, 0.001)
}

func TestEngine_Split_SequentialSplitsYieldThreeLines(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)
	expectCheese(catalog, ctx)
	catalog.On("FuzzySearchIngredients", ctx, 10, "onions", 1).
		Return([]domain.IngredientMatch{{ID: 6, Name: "Onions", Score: 100}}, nil)

	// "Make two of them with extra cheese and one with no onions" on a
	// four-burger line, applied as two modifications in a row.
	order := burgerOrder(4)
	result, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Modifiers: []string{"extra cheese"}})
	assert.NoError(t, err)
	assert.InDelta(t, 1.00, result.AdditionalCost, 0.001)

	remainderID := order.Items[1].ID
	_, err = engine.Split(ctx, order, remainderID, 1, split.Modification{Modifiers: []string{"no onions"}})
	assert.NoError(t, err)

	assert.Len(t, order.Items, 3)
	total := 0
	for _, l := range order.Items {
		total += l.Quantity
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, "extra cheese", order.Items[0].Modifications.IngredientModifications)
	assert.Equal(t, "remove onions", order.Items[1].Modifications.IngredientModifications)
	assert.Empty(t, order.Items[2].Modifications.IngredientModifications)
}

func TestEngine_Split_SizeChange(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)

	order := burgerOrder(2)
	result, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Size: "large"})

	assert.NoError(t, err)
	assert.Equal(t, "large", order.Items[0].Modifications.Size)
	assert.Equal(t, 0.0, result.AdditionalCost)
}

func TestEngine_Split_QuantityChangeWholeLineOnly(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)

	t.Run("whole_line_allowed", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Quantity: 5})
		assert.NoError(t, err)
		assert.Equal(t, 5, order.Items[0].Quantity)
		assert.InDelta(t, 5*8.99, order.Items[0].TotalPrice, 0.001)
	})

	t.Run("partial_rejected", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 1, split.Modification{Quantity: 5})
		var vErr *split.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "quantity", vErr.Field)
	})

	t.Run("over_max_rejected", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Quantity: 11})
		var vErr *split.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "quantity", vErr.Field)
	})
}

func TestEngine_Split_ValidationFailures(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)

	t.Run("line_not_in_order", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_404", 1, split.Modification{ItemName: "Big Burger"})
		var nErr *split.NotInOrderError
		assert.ErrorAs(t, err, &nErr)
		assert.EqualError(t, err, "could not find Big Burger in your current order")
	})

	t.Run("line_not_in_order_without_item_name", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_404", 1, split.Modification{})
		var nErr *split.NotInOrderError
		assert.ErrorAs(t, err, &nErr)
		assert.EqualError(t, err, "could not find line_404 in your current order")
	})

	t.Run("zero_units", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 0, split.Modification{})
		var vErr *split.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "units_affected", vErr.Field)
	})

	t.Run("units_exceed_quantity", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 3, split.Modification{})
		var vErr *split.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "units_affected", vErr.Field)
	})

	t.Run("size_not_offered", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Size: "extra_large"})
		var vErr *split.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "size", vErr.Field)
		assert.Equal(t, "regular, large", vErr.Allowed)
	})

	t.Run("ingredient_not_modifiable", func(t *testing.T) {
		order := burgerOrder(2)
		_, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Modifiers: []string{"extra bacon"}})
		var vErr *split.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "ingredient", vErr.Field)
	})

	t.Run("failure_leaves_order_untouched", func(t *testing.T) {
		order := burgerOrder(2)
		before := order.Items[0]
		_, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Size: "extra_large"})
		assert.Error(t, err)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, before, order.Items[0])
	})
}

func TestEngine_Split_UnresolvableIngredient(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)
	catalog.On("FuzzySearchIngredients", ctx, 10, "cheese", 1).
		Return([]domain.IngredientMatch{}, nil).Once()

	order := burgerOrder(2)
	_, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Modifiers: []string{"extra cheese"}})

	var vErr *split.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ingredient", vErr.Field)
}

func TestEngine_Split_NonChargingModifierHasNoAdditionalCost(t *testing.T) {
	catalog := mocks.NewItemCatalog(t)
	engine := split.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("GetMenuItem", ctx, 10, 1).Return(burgerItem(), nil)
	catalog.On("FuzzySearchIngredients", ctx, 10, "pickles", 1).
		Return([]domain.IngredientMatch{{ID: 7, Name: "Pickles", Score: 100}}, nil)

	order := burgerOrder(2)
	result, err := engine.Split(ctx, order, "line_1", 2, split.Modification{Modifiers: []string{"no pickles"}})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.AdditionalCost)
	assert.Equal(t, "remove pickles", order.Items[0].Modifications.IngredientModifications)
	assert.InDelta(t, 17.98, order.Items[0].TotalPrice, 0.001)
}
