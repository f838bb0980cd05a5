package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"drivethru/internal/domain"
)

// Repository is the durable side of the catalog.
type Repository interface {
	GetRestaurantName(ctx context.Context, restaurantID int) (string, error)
	ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListIngredients(ctx context.Context, restaurantID int) ([]domain.Ingredient, error)
	GetIngredientLink(ctx context.Context, menuItemID, ingredientID int) (*domain.IngredientLink, error)
}

// Service is the catalog accessor: cache first, postgres fallback. The
// restaurant scope is always an explicit parameter; the service holds no
// per-request state.
type Service struct {
	repo    Repository
	cache   *MenuCache
	matcher *matcher
}

func NewService(repo Repository, cache *MenuCache) *Service {
	return &Service{repo: repo, cache: cache, matcher: newMatcher()}
}

// PreloadMenu builds the menu_cache:{restaurantID} snapshot from postgres.
func (s *Service) PreloadMenu(ctx context.Context, restaurantID int) error {
	name, err := s.repo.GetRestaurantName(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("preload menu: %w", err)
	}
	items, err := s.repo.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("preload menu: %w", err)
	}
	ingredients, err := s.repo.ListIngredients(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("preload menu: %w", err)
	}

	snapshot := &domain.MenuSnapshot{
		RestaurantID:   restaurantID,
		RestaurantName: name,
		MenuItems:      items,
		Ingredients:    ingredients,
		CachedAt:       time.Now().UTC(),
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Set(ctx, snapshot); err != nil {
		return err
	}
	log.Printf("[catalog] preloaded menu for restaurant %d (%d items, %d ingredients)",
		restaurantID, len(items), len(ingredients))
	return nil
}

// InvalidateMenu drops the cached snapshot for a restaurant.
func (s *Service) InvalidateMenu(ctx context.Context, restaurantID int) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, restaurantID)
}

// menuItems returns available menu items, cache first.
func (s *Service) menuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	if s.cache != nil {
		snapshot, err := s.cache.Get(ctx, restaurantID)
		if err != nil {
			log.Printf("[catalog] cache read failed, falling back to postgres: %v", err)
		} else if snapshot != nil {
			return snapshot.MenuItems, nil
		}
	}
	return s.repo.ListMenuItems(ctx, restaurantID)
}

func (s *Service) ingredients(ctx context.Context, restaurantID int) ([]domain.Ingredient, error) {
	if s.cache != nil {
		snapshot, err := s.cache.Get(ctx, restaurantID)
		if err != nil {
			log.Printf("[catalog] cache read failed, falling back to postgres: %v", err)
		} else if snapshot != nil {
			return snapshot.Ingredients, nil
		}
	}
	return s.repo.ListIngredients(ctx, restaurantID)
}

// FuzzySearchMenuItems matches term against the restaurant's available menu
// item names and returns the top hits, best first.
func (s *Service) FuzzySearchMenuItems(ctx context.Context, restaurantID int, term string, limit int) ([]domain.MenuMatch, error) {
	items, err := s.menuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("fuzzy search menu items: %w", err)
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	matches := []domain.MenuMatch{}
	for _, hit := range s.matcher.rankNames(term, names, limit) {
		item := items[hit.Index]
		matches = append(matches, domain.MenuMatch{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Score:       hit.Score,
		})
	}
	return matches, nil
}

// FuzzySearchIngredients matches term against the restaurant's ingredient
// catalog.
func (s *Service) FuzzySearchIngredients(ctx context.Context, restaurantID int, term string, limit int) ([]domain.IngredientMatch, error) {
	ingredients, err := s.ingredients(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("fuzzy search ingredients: %w", err)
	}

	names := make([]string, len(ingredients))
	for i, ing := range ingredients {
		names[i] = ing.Name
	}

	matches := []domain.IngredientMatch{}
	for _, hit := range s.matcher.rankNames(term, names, limit) {
		ing := ingredients[hit.Index]
		matches = append(matches, domain.IngredientMatch{
			ID:           ing.ID,
			Name:         ing.Name,
			IsAllergen:   ing.IsAllergen,
			AllergenType: ing.AllergenType,
			Score:        hit.Score,
		})
	}
	return matches, nil
}

// GetMenuItem returns one menu item by ID within the restaurant scope, or
// nil when it does not exist.
func (s *Service) GetMenuItem(ctx context.Context, restaurantID, menuItemID int) (*domain.MenuItem, error) {
	items, err := s.menuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	for i := range items {
		if items[i].ID == menuItemID {
			return &items[i], nil
		}
	}
	return nil, nil
}

// GetIngredientLink resolves the (menuItem, ingredient) join record, checking
// the cached snapshot before postgres. Returns nil when the pair is unlinked.
func (s *Service) GetIngredientLink(ctx context.Context, restaurantID, menuItemID, ingredientID int) (*domain.IngredientLink, error) {
	item, err := s.GetMenuItem(ctx, restaurantID, menuItemID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		for i := range item.Ingredients {
			if item.Ingredients[i].IngredientID == ingredientID {
				return &item.Ingredients[i], nil
			}
		}
	}
	return s.repo.GetIngredientLink(ctx, menuItemID, ingredientID)
}
