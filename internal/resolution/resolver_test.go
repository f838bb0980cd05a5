package resolution_test

import (
	"context"
	"errors"
	"testing"

	"drivethru/internal/domain"
	"drivethru/internal/mocks"
	"drivethru/internal/resolution"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Resolve_ExactMatch(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "big burger", 5).
		Return([]domain.MenuMatch{
			{ID: 1, Name: "Big Burger", Price: 8.99, Score: 100},
			{ID: 2, Name: "Veggie Burger", Price: 7.99, Score: 72},
		}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "big burger", Quantity: 2, Confidence: 0.95},
	}, 10)

	assert.True(t, resp.Success)
	assert.False(t, resp.NeedsClarification)
	assert.Len(t, resp.ResolvedItems, 1)
	assert.Equal(t, 1, resp.ResolvedItems[0].ResolvedMenuItemID)
	assert.Equal(t, "Big Burger", resp.ResolvedItems[0].ResolvedMenuItemName)
	assert.Equal(t, 1.0, resp.ResolvedItems[0].Confidence)
	assert.Equal(t, 1.0, resp.Confidence)
}

func TestEngine_Resolve_ClearWinnerByGap(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	// Best is below 90, but leads the runner-up by more than 15.
	catalog.On("FuzzySearchMenuItems", ctx, 10, "chiken sandwich", 5).
		Return([]domain.MenuMatch{
			{ID: 3, Name: "Chicken Sandwich", Score: 85},
			{ID: 4, Name: "Chicken Nuggets", Score: 65},
		}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "chiken sandwich", Quantity: 1},
	}, 10)

	assert.True(t, resp.Success)
	assert.False(t, resp.ResolvedItems[0].IsAmbiguous)
	assert.Equal(t, 3, resp.ResolvedItems[0].ResolvedMenuItemID)
}

func TestEngine_Resolve_Ambiguous(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	// Close scores under the floor force a clarification.
	catalog.On("FuzzySearchMenuItems", ctx, 10, "burger", 5).
		Return([]domain.MenuMatch{
			{ID: 1, Name: "Big Burger", Score: 68},
			{ID: 2, Name: "Veggie Burger", Score: 66},
			{ID: 5, Name: "Bacon Burger", Score: 65},
			{ID: 6, Name: "Double Burger", Score: 64},
		}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "burger", Quantity: 1},
	}, 10)

	assert.True(t, resp.Success)
	assert.True(t, resp.NeedsClarification)
	item := resp.ResolvedItems[0]
	assert.True(t, item.IsAmbiguous)
	assert.Equal(t, 0, item.ResolvedMenuItemID)
	assert.Equal(t, 0.8, item.Confidence)
	assert.Len(t, item.SuggestedOptions, 3)
	assert.Equal(t, "Which burger would you like? We have Big Burger, Veggie Burger, Bacon Burger.", item.ClarificationQuestion)
}

func TestEngine_Resolve_UnavailableWithSuggestions(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "chicken parmesan", 5).
		Return([]domain.MenuMatch{}, nil).Once()
	// Retry with the first token to find nearby alternatives.
	catalog.On("FuzzySearchMenuItems", ctx, 10, "chicken", 3).
		Return([]domain.MenuMatch{
			{ID: 3, Name: "Chicken Sandwich", Score: 80},
			{ID: 4, Name: "Chicken Nuggets", Score: 75},
		}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "chicken parmesan", Quantity: 1},
	}, 10)

	assert.True(t, resp.Success)
	assert.True(t, resp.NeedsClarification)
	item := resp.ResolvedItems[0]
	assert.True(t, item.IsUnavailable)
	assert.Equal(t, []string{"Chicken Sandwich", "Chicken Nuggets"}, item.SuggestedOptions)
	assert.Equal(t, "Sorry, we don't have chicken parmesan. But we do have Chicken Sandwich, Chicken Nuggets. Would you like one of those?", item.ClarificationQuestion)
}

func TestEngine_Resolve_UnavailableNoSuggestions(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "sushi", 5).
		Return([]domain.MenuMatch{}, nil).Once()
	// Single-token name, so the alternatives retry reuses it at the
	// suggestion limit.
	catalog.On("FuzzySearchMenuItems", ctx, 10, "sushi", 3).
		Return([]domain.MenuMatch{}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "sushi", Quantity: 1},
	}, 10)

	item := resp.ResolvedItems[0]
	assert.True(t, item.IsUnavailable)
	assert.Empty(t, item.SuggestedOptions)
	assert.Equal(t, "Sorry, we don't have sushi on our menu.", item.ClarificationQuestion)
}

func TestEngine_Resolve_ModifierNormalization(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "big burger", 5).
		Return([]domain.MenuMatch{{ID: 1, Name: "Big Burger", Score: 100}}, nil).Once()
	catalog.On("FuzzySearchIngredients", ctx, 10, "cheese", 1).
		Return([]domain.IngredientMatch{{ID: 5, Name: "Cheese", IsAllergen: true, AllergenType: "dairy", Score: 100}}, nil).Once()
	catalog.On("FuzzySearchIngredients", ctx, 10, "pickles", 1).
		Return([]domain.IngredientMatch{{ID: 7, Name: "Pickles", Score: 100}}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "big burger", Quantity: 1, Modifiers: []string{"extra cheese", "hold the pickles"}},
	}, 10)

	assert.True(t, resp.Success)
	item := resp.ResolvedItems[0]
	assert.Equal(t, []domain.Modification{
		{IngredientID: 5, Action: domain.ActionExtra},
		{IngredientID: 7, Action: domain.ActionRemove},
	}, item.Modifiers)
	assert.Len(t, item.NormalizationDetails, 2)
	assert.True(t, item.NormalizationDetails[0].IsAllergen)
	assert.Equal(t, "dairy", item.NormalizationDetails[0].AllergenType)
}

func TestEngine_Resolve_UnresolvedModifierKeptInDetailsOnly(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "big burger", 5).
		Return([]domain.MenuMatch{{ID: 1, Name: "Big Burger", Score: 100}}, nil).Once()
	catalog.On("FuzzySearchIngredients", ctx, 10, "unobtainium", 1).
		Return([]domain.IngredientMatch{}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "big burger", Quantity: 1, Modifiers: []string{"extra unobtainium"}},
	}, 10)

	item := resp.ResolvedItems[0]
	assert.Empty(t, item.Modifiers)
	assert.Len(t, item.NormalizationDetails, 1)
	assert.False(t, item.NormalizationDetails[0].IsResolved)
}

func TestEngine_Resolve_CatalogOutageFailsClosed(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "big burger", 5).
		Return(nil, errors.New("connection refused")).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "big burger", Quantity: 1},
	}, 10)

	assert.False(t, resp.Success)
	assert.True(t, resp.NeedsClarification)
	assert.Empty(t, resp.ResolvedItems)
	assert.Equal(t, []string{"The menu is temporarily unavailable. Please try again in a moment."}, resp.ClarificationQuestions)
}

func TestEngine_Resolve_ConfidenceIsMinimum(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)
	ctx := context.Background()

	catalog.On("FuzzySearchMenuItems", ctx, 10, "big burger", 5).
		Return([]domain.MenuMatch{{ID: 1, Name: "Big Burger", Score: 100}}, nil).Once()
	catalog.On("FuzzySearchMenuItems", ctx, 10, "fries", 5).
		Return([]domain.MenuMatch{
			{ID: 8, Name: "French Fries", Score: 82},
			{ID: 9, Name: "Cheese Fries", Score: 60},
		}, nil).Once()

	resp := engine.Resolve(ctx, []domain.ExtractedItem{
		{ItemName: "big burger", Quantity: 1},
		{ItemName: "fries", Quantity: 1},
	}, 10)

	assert.True(t, resp.Success)
	assert.InDelta(t, 0.82, resp.Confidence, 0.001)
}

func TestEngine_Resolve_EmptyInput(t *testing.T) {
	catalog := mocks.NewMenuCatalog(t)
	engine := resolution.NewEngine(catalog)

	resp := engine.Resolve(context.Background(), nil, 10)

	assert.False(t, resp.Success)
	assert.True(t, resp.NeedsClarification)
	assert.Equal(t, []string{"No items were extracted from your request."}, resp.ClarificationQuestions)
}
