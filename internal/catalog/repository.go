package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"drivethru/internal/domain"

	"github.com/lib/pq"
)

// PostgresRepository reads the durable menu catalog. All reads are scoped by
// restaurant; nothing here mutates the catalog.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetRestaurantName(ctx context.Context, restaurantID int) (string, error) {
	var name string
	err := r.DB.QueryRowContext(ctx,
		`SELECT name FROM restaurants WHERE id = $1`, restaurantID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("restaurant %d: %w", restaurantID, err)
	}
	return name, nil
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price,
		       is_available, available_sizes, modifiable_ingredients, max_quantity
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE
		ORDER BY display_order, id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		var sizes, ingredients pq.StringArray
		err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.IsAvailable, &sizes, &ingredients, &item.MaxQuantity)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		item.AvailableSizes = sizes
		item.ModifiableIngredients = ingredients

		links, err := r.listIngredientLinks(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		item.Ingredients = links
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) listIngredientLinks(ctx context.Context, menuItemID int) ([]domain.IngredientLink, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT mii.menu_item_id, mii.ingredient_id, i.name, mii.quantity,
		       COALESCE(mii.unit, ''), mii.is_optional, COALESCE(mii.additional_cost, 0)
		FROM menu_item_ingredients mii
		JOIN ingredients i ON i.id = mii.ingredient_id
		WHERE mii.menu_item_id = $1`, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("list ingredient links: %w", err)
	}
	defer rows.Close()

	links := []domain.IngredientLink{}
	for rows.Next() {
		var l domain.IngredientLink
		err := rows.Scan(&l.MenuItemID, &l.IngredientID, &l.IngredientName,
			&l.Quantity, &l.Unit, &l.IsOptional, &l.AdditionalCost)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *PostgresRepository) ListIngredients(ctx context.Context, restaurantID int) ([]domain.Ingredient, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, is_allergen, COALESCE(allergen_type, ''), is_optional
		FROM ingredients
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []domain.Ingredient{}
	for rows.Next() {
		var ing domain.Ingredient
		err := rows.Scan(&ing.ID, &ing.RestaurantID, &ing.Name,
			&ing.IsAllergen, &ing.AllergenType, &ing.IsOptional)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *PostgresRepository) GetIngredientLink(ctx context.Context, menuItemID, ingredientID int) (*domain.IngredientLink, error) {
	var l domain.IngredientLink
	err := r.DB.QueryRowContext(ctx, `
		SELECT mii.menu_item_id, mii.ingredient_id, i.name, mii.quantity,
		       COALESCE(mii.unit, ''), mii.is_optional, COALESCE(mii.additional_cost, 0)
		FROM menu_item_ingredients mii
		JOIN ingredients i ON i.id = mii.ingredient_id
		WHERE mii.menu_item_id = $1 AND mii.ingredient_id = $2`,
		menuItemID, ingredientID).
		Scan(&l.MenuItemID, &l.IngredientID, &l.IngredientName,
			&l.Quantity, &l.Unit, &l.IsOptional, &l.AdditionalCost)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ingredient link: %w", err)
	}
	return &l, nil
}
