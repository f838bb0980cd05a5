package domain

import (
	"strings"
	"time"
)

// Order limits. These are business rules, not hard system limits, and are
// kept together so they are easy to tune.
const (
	MaxItemQuantity = 10
	MaxTotalItems   = 20
	MaxUniqueItems  = 15
	MinItemQuantity = 1
	DefaultQuantity = 1
	DefaultItemSize = "regular"
)

// Standard item sizes.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra_large"
	SizeRegular    = "regular"
	SizeOneSize    = "one_size"
)

type MenuItem struct {
	ID                    int              `json:"id"`
	RestaurantID          int              `json:"restaurant_id"`
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	Price                 float64          `json:"price"`
	IsAvailable           bool             `json:"is_available"`
	AvailableSizes        []string         `json:"available_sizes"`
	ModifiableIngredients []string         `json:"modifiable_ingredients"`
	MaxQuantity           int              `json:"max_quantity"`
	Ingredients           []IngredientLink `json:"ingredients,omitempty"`
}

// CanModifySize reports whether the item may be served in the given size.
func (m *MenuItem) CanModifySize(size string) bool {
	for _, s := range m.AvailableSizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// CanModifyIngredient reports whether the named ingredient may be
// added, removed or otherwise changed on this item.
func (m *MenuItem) CanModifyIngredient(name string) bool {
	for _, i := range m.ModifiableIngredients {
		if strings.EqualFold(i, name) {
			return true
		}
	}
	return false
}

type Ingredient struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	IsAllergen   bool   `json:"is_allergen"`
	AllergenType string `json:"allergen_type,omitempty"`
	IsOptional   bool   `json:"is_optional"`
}

// IngredientLink joins a menu item to one of its ingredients. AdditionalCost
// is charged only when the modifier action is the extra class.
type IngredientLink struct {
	MenuItemID     int     `json:"menu_item_id"`
	IngredientID   int     `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	IsOptional     bool    `json:"is_optional"`
	AdditionalCost float64 `json:"additional_cost"`
}

// MenuSnapshot is the menu_cache:{restaurantID} blob.
type MenuSnapshot struct {
	RestaurantID   int          `json:"restaurant_id"`
	RestaurantName string       `json:"restaurant_name"`
	MenuItems      []MenuItem   `json:"menu_items"`
	Ingredients    []Ingredient `json:"ingredients"`
	CachedAt       time.Time    `json:"cached_at"`
}

// MenuMatch is a fuzzy search hit against the menu item catalog.
type MenuMatch struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Score       float64 `json:"score"`
}

// IngredientMatch is a fuzzy search hit against the ingredient catalog.
type IngredientMatch struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	IsAllergen   bool    `json:"is_allergen"`
	AllergenType string  `json:"allergen_type,omitempty"`
	Score        float64 `json:"score"`
}

// ExtractedItem is one item as produced by the upstream extraction agent.
type ExtractedItem struct {
	ItemName            string   `json:"item_name"`
	Quantity            int      `json:"quantity"`
	Size                string   `json:"size,omitempty"`
	Modifiers           []string `json:"modifiers"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
	Confidence          float64  `json:"confidence"`
}

// Modification is a normalized ingredient modifier bound to the catalog.
type Modification struct {
	IngredientID int    `json:"ingredient_id"`
	Action       Action `json:"action"`
}

// NormalizedModifier carries the full normalization trail for one raw
// modifier string. Unresolved modifiers are kept here for diagnostics only
// and never reach pricing or the order.
type NormalizedModifier struct {
	Original       string  `json:"original"`
	Action         Action  `json:"action"`
	IngredientTerm string  `json:"ingredient_term"`
	IngredientID   int     `json:"ingredient_id,omitempty"`
	IngredientName string  `json:"ingredient_name,omitempty"`
	Confidence     float64 `json:"confidence"`
	IsResolved     bool    `json:"is_resolved"`
	IsAllergen     bool    `json:"is_allergen,omitempty"`
	AllergenType   string  `json:"allergen_type,omitempty"`
}

// ResolvedItem is the immutable output of the resolution engine for one
// extracted item. ResolvedMenuItemID of 0 means unresolved.
type ResolvedItem struct {
	ItemName              string               `json:"item_name"`
	Quantity              int                  `json:"quantity"`
	Size                  string               `json:"size,omitempty"`
	Modifiers             []Modification       `json:"modifiers"`
	SpecialInstructions   string               `json:"special_instructions,omitempty"`
	NormalizationDetails  []NormalizedModifier `json:"normalization_details,omitempty"`
	ResolvedMenuItemID    int                  `json:"resolved_menu_item_id"`
	ResolvedMenuItemName  string               `json:"resolved_menu_item_name,omitempty"`
	Confidence            float64              `json:"confidence"`
	IsAmbiguous           bool                 `json:"is_ambiguous"`
	IsUnavailable         bool                 `json:"is_unavailable"`
	SuggestedOptions      []string             `json:"suggested_options"`
	ClarificationQuestion string               `json:"clarification_question,omitempty"`
}

type ResolveResponse struct {
	Success                bool           `json:"success"`
	Confidence             float64        `json:"confidence"`
	ResolvedItems          []ResolvedItem `json:"resolved_items"`
	NeedsClarification     bool           `json:"needs_clarification"`
	ClarificationQuestions []string       `json:"clarification_questions"`
	ResolutionNotes        string         `json:"resolution_notes,omitempty"`
}

// Order statuses in the ephemeral store.
const (
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
)

// LineModifications is the customization block carried on an order line.
// IngredientModifications is the display form ("extra cheese; no pickles");
// Modifiers is the priced, catalog-bound form.
type LineModifications struct {
	Name                    string         `json:"name,omitempty"`
	Size                    string         `json:"size,omitempty"`
	IngredientModifications string         `json:"ingredient_modifications,omitempty"`
	SpecialInstructions     string         `json:"special_instructions,omitempty"`
	Modifiers               []Modification `json:"modifiers,omitempty"`
}

// ModifierCost is one entry of a line's addon cost breakdown.
type ModifierCost struct {
	IngredientID   int     `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Action         Action  `json:"action"`
	Cost           float64 `json:"cost"`
}

type OrderLine struct {
	ID            string            `json:"id"`
	MenuItemID    int               `json:"menu_item_id"`
	Quantity      int               `json:"quantity"`
	Modifications LineModifications `json:"modifications"`
	ModifierCosts []ModifierCost    `json:"modifier_costs,omitempty"`
	UnitPrice     float64           `json:"unit_price"`
	TotalPrice    float64           `json:"total_price"`
	AddedAt       time.Time         `json:"added_at"`
}

// OrderSession is the order:{orderID} record. TaxAmount is always 0 here;
// tax is an external collaborator's job.
type OrderSession struct {
	ID           string      `json:"id"`
	SessionID    string      `json:"session_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       string      `json:"status"`
	Items        []OrderLine `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	TaxAmount    float64     `json:"tax_amount"`
	TotalAmount  float64     `json:"total_amount"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Session is the session:{sessionID} metadata record.
type Session struct {
	ID             string    `json:"id"`
	RestaurantID   int       `json:"restaurant_id"`
	State          string    `json:"state"`
	CurrentOrderID string    `json:"current_order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SessionLogEntry is one element of the append-only per-session logs
// (conversation, commands, performance).
type SessionLogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Kind      string         `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// ArchiveMessage is the archival intent published when an order finalizes.
type ArchiveMessage struct {
	Type      string       `json:"type"`
	Order     OrderSession `json:"order"`
	Timestamp time.Time    `json:"timestamp"`
}

const ArchiveMessageType = "order_finalized"
