package split

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"drivethru/internal/catalog"
	"drivethru/internal/domain"
)

// ItemCatalog is the slice of the catalog accessor the split engine needs
// for validation and pricing.
type ItemCatalog interface {
	GetMenuItem(ctx context.Context, restaurantID, menuItemID int) (*domain.MenuItem, error)
	FuzzySearchIngredients(ctx context.Context, restaurantID int, term string, limit int) ([]domain.IngredientMatch, error)
	GetIngredientLink(ctx context.Context, restaurantID, menuItemID, ingredientID int) (*domain.IngredientLink, error)
}

var _ ItemCatalog = (*catalog.Service)(nil)

// Modification describes what should change on the affected units.
// Quantity, when non-zero, replaces the line's quantity and is only legal
// when the modification covers the whole line. ItemName is the spoken name
// of the item being modified, used to phrase errors for the caller.
type Modification struct {
	ItemName            string
	Modifiers           []string
	Size                string
	Quantity            int
	SpecialInstructions string
}

// Result reports the lines that now represent the original one. When the
// whole line was modified there is a single line and no sibling.
type Result struct {
	Lines          []domain.OrderLine
	AdditionalCost float64
	ModifiedFields []string
}

// Engine splits or mutates order lines when a modification applies to part
// of a line's quantity.
type Engine struct {
	catalog ItemCatalog
}

func NewEngine(catalog ItemCatalog) *Engine {
	return &Engine{catalog: catalog}
}

// boundMod is a raw modifier validated and bound to the catalog.
type boundMod struct {
	mod     domain.Modification
	display string
}

// Split applies newMod to unitsAffected of the target line. Validation is
// all or nothing: any failure returns before the order is touched. When
// unitsAffected covers the whole line it is mutated in place; otherwise the
// line is replaced by a modified sibling and an unchanged remainder whose
// quantities sum to the original. The caller persists the mutated order in
// a single store write.
func (e *Engine) Split(ctx context.Context, order *domain.OrderSession, targetLineID string, unitsAffected int, newMod Modification) (*Result, error) {
	idx := -1
	for i := range order.Items {
		if order.Items[i].ID == targetLineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		name := newMod.ItemName
		if name == "" {
			name = targetLineID
		}
		return nil, &NotInOrderError{ItemName: name}
	}
	line := order.Items[idx]

	item, err := e.catalog.GetMenuItem(ctx, order.RestaurantID, line.MenuItemID)
	if err != nil {
		return nil, fmt.Errorf("menu item lookup: %w", err)
	}
	if item == nil {
		return nil, &ValidationError{Field: "menu_item", Message: fmt.Sprintf("menu item %d not found", line.MenuItemID)}
	}

	if unitsAffected < 1 || unitsAffected > line.Quantity {
		return nil, &ValidationError{
			Field:   "units_affected",
			Message: fmt.Sprintf("%d units requested", unitsAffected),
			Allowed: fmt.Sprintf("1-%d", line.Quantity),
		}
	}

	if newMod.Size != "" && !item.CanModifySize(newMod.Size) {
		return nil, &ValidationError{
			Field:   "size",
			Message: fmt.Sprintf("%s is not offered for %s", newMod.Size, item.Name),
			Allowed: strings.Join(item.AvailableSizes, ", "),
		}
	}

	if newMod.Quantity != 0 {
		if unitsAffected != line.Quantity {
			return nil, &ValidationError{
				Field:   "quantity",
				Message: "quantity can only change for the whole line",
			}
		}
		maxQty := item.MaxQuantity
		if maxQty <= 0 || maxQty > domain.MaxItemQuantity {
			maxQty = domain.MaxItemQuantity
		}
		if newMod.Quantity < domain.MinItemQuantity || newMod.Quantity > maxQty {
			return nil, &ValidationError{
				Field:   "quantity",
				Message: fmt.Sprintf("cannot order %d %s", newMod.Quantity, item.Name),
				Allowed: fmt.Sprintf("1-%d", maxQty),
			}
		}
	}

	bound, err := e.bindModifiers(ctx, order.RestaurantID, item, newMod.Modifiers)
	if err != nil {
		return nil, err
	}

	newAddonPerUnit := 0.0
	for _, b := range bound {
		if !b.mod.Action.ChargesAddon() {
			continue
		}
		link, err := e.catalog.GetIngredientLink(ctx, order.RestaurantID, line.MenuItemID, b.mod.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("ingredient link lookup: %w", err)
		}
		if link != nil {
			newAddonPerUnit += link.AdditionalCost
		}
	}

	// Validation done; mutate.
	if unitsAffected == line.Quantity {
		modified := line
		e.applyModification(&modified, newMod, bound)
		if err := e.priceLine(ctx, order.RestaurantID, &modified); err != nil {
			return nil, err
		}
		order.Items[idx] = modified
		return &Result{
			Lines:          []domain.OrderLine{modified},
			AdditionalCost: round2(newAddonPerUnit * float64(modified.Quantity)),
			ModifiedFields: describe(item.Name, unitsAffected, newMod),
		}, nil
	}

	modified := cloneLine(line, unitsAffected)
	e.applyModification(&modified, newMod, bound)
	if err := e.priceLine(ctx, order.RestaurantID, &modified); err != nil {
		return nil, err
	}

	// The remainder keeps the original line's identity; only the modified
	// units move to a fresh line.
	remainder := line
	remainder.Quantity = line.Quantity - unitsAffected
	if err := e.priceLine(ctx, order.RestaurantID, &remainder); err != nil {
		return nil, err
	}

	// Atomic from the caller's view: the slice swap happens in memory and
	// lands in the store as one write.
	items := append([]domain.OrderLine{}, order.Items[:idx]...)
	items = append(items, modified, remainder)
	items = append(items, order.Items[idx+1:]...)
	order.Items = items

	return &Result{
		Lines:          []domain.OrderLine{modified, remainder},
		AdditionalCost: round2(newAddonPerUnit * float64(unitsAffected)),
		ModifiedFields: describe(item.Name, unitsAffected, newMod),
	}, nil
}

// bindModifiers validates each raw modifier against the menu item's
// modifiable set and resolves it in the ingredient catalog.
func (e *Engine) bindModifiers(ctx context.Context, restaurantID int, item *domain.MenuItem, raw []string) ([]boundMod, error) {
	bound := []boundMod{}
	for _, r := range raw {
		action, term := domain.ParseModifier(r)
		if term == "" {
			bound = append(bound, boundMod{
				mod:     domain.Modification{Action: action},
				display: string(action),
			})
			continue
		}

		if !item.CanModifyIngredient(term) {
			return nil, &ValidationError{
				Field:   "ingredient",
				Message: fmt.Sprintf("%s cannot be changed on %s", term, item.Name),
				Allowed: strings.Join(item.ModifiableIngredients, ", "),
			}
		}

		matches, err := e.catalog.FuzzySearchIngredients(ctx, restaurantID, term, 1)
		if err != nil {
			return nil, fmt.Errorf("ingredient lookup: %w", err)
		}
		if len(matches) == 0 {
			return nil, &ValidationError{
				Field:   "ingredient",
				Message: fmt.Sprintf("%s is not available at this restaurant", term),
			}
		}

		bound = append(bound, boundMod{
			mod:     domain.Modification{IngredientID: matches[0].ID, Action: action},
			display: string(action) + " " + strings.ToLower(matches[0].Name),
		})
	}
	return bound, nil
}

// applyModification merges the new modification into the line.
func (e *Engine) applyModification(line *domain.OrderLine, newMod Modification, bound []boundMod) {
	if len(bound) > 0 {
		displays := []string{}
		if line.Modifications.IngredientModifications != "" {
			displays = strings.Split(line.Modifications.IngredientModifications, "; ")
		}
		mods := append([]domain.Modification{}, line.Modifications.Modifiers...)
		for _, b := range bound {
			mods = append(mods, b.mod)
			displays = append(displays, b.display)
		}
		line.Modifications.Modifiers = mods
		line.Modifications.IngredientModifications = strings.Join(displays, "; ")
	}
	if newMod.Size != "" {
		line.Modifications.Size = newMod.Size
	}
	if newMod.SpecialInstructions != "" {
		if line.Modifications.SpecialInstructions != "" {
			line.Modifications.SpecialInstructions += "; " + newMod.SpecialInstructions
		} else {
			line.Modifications.SpecialInstructions = newMod.SpecialInstructions
		}
	}
	if newMod.Quantity != 0 {
		line.Quantity = newMod.Quantity
	}
}

// priceLine recomputes a line's addon breakdown and total price.
func (e *Engine) priceLine(ctx context.Context, restaurantID int, line *domain.OrderLine) error {
	addonPerUnit := 0.0
	costs := []domain.ModifierCost{}

	for _, mod := range line.Modifications.Modifiers {
		if !mod.Action.ChargesAddon() {
			continue
		}
		link, err := e.catalog.GetIngredientLink(ctx, restaurantID, line.MenuItemID, mod.IngredientID)
		if err != nil {
			return fmt.Errorf("ingredient link lookup: %w", err)
		}
		if link == nil || link.AdditionalCost == 0 {
			continue
		}
		addonPerUnit += link.AdditionalCost
		costs = append(costs, domain.ModifierCost{
			IngredientID:   mod.IngredientID,
			IngredientName: link.IngredientName,
			Action:         mod.Action,
			Cost:           link.AdditionalCost,
		})
	}

	line.ModifierCosts = costs
	line.TotalPrice = round2(float64(line.Quantity) * (line.UnitPrice + addonPerUnit))
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func cloneLine(line domain.OrderLine, quantity int) domain.OrderLine {
	clone := line
	clone.ID = fmt.Sprintf("item_%d", time.Now().UnixNano())
	clone.Quantity = quantity
	clone.Modifications.Modifiers = append([]domain.Modification{}, line.Modifications.Modifiers...)
	clone.ModifierCosts = append([]domain.ModifierCost{}, line.ModifierCosts...)
	clone.AddedAt = time.Now().UTC()
	return clone
}

func describe(itemName string, units int, newMod Modification) []string {
	fields := []string{}
	for _, m := range newMod.Modifiers {
		fields = append(fields, fmt.Sprintf("%d %s: %s", units, itemName, m))
	}
	if newMod.Size != "" {
		fields = append(fields, fmt.Sprintf("%d %s: size %s", units, itemName, newMod.Size))
	}
	if newMod.Quantity != 0 {
		fields = append(fields, fmt.Sprintf("%s: quantity changed to %d", itemName, newMod.Quantity))
	}
	if newMod.SpecialInstructions != "" {
		fields = append(fields, fmt.Sprintf("%d %s: %s", units, itemName, newMod.SpecialInstructions))
	}
	return fields
}
