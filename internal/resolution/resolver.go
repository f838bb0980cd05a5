package resolution

import (
	"context"
	"fmt"
	"log"
	"strings"

	"drivethru/internal/catalog"
	"drivethru/internal/domain"
)

// Clear-winner thresholds. Empirically tuned; treat as configuration. The
// rule order in clearWinner is load-bearing: later rules apply only when
// earlier ones fail.
const (
	HighScoreThreshold = 90.0
	ScoreGapThreshold  = 15.0
	FloorThreshold     = 70.0
)

const (
	candidateLimit  = 5
	suggestionLimit = 3
)

// MenuCatalog is the slice of the catalog accessor the resolver needs.
type MenuCatalog interface {
	FuzzySearchMenuItems(ctx context.Context, restaurantID int, term string, limit int) ([]domain.MenuMatch, error)
	FuzzySearchIngredients(ctx context.Context, restaurantID int, term string, limit int) ([]domain.IngredientMatch, error)
}

var _ MenuCatalog = (*catalog.Service)(nil)

// Engine resolves extracted items against a restaurant's menu.
type Engine struct {
	catalog MenuCatalog
}

func NewEngine(catalog MenuCatalog) *Engine {
	return &Engine{catalog: catalog}
}

// Resolve maps each extracted item to a menu item, or to a clarification
// when the match is ambiguous or missing. A catalog failure fails the whole
// call closed; there are no partial resolutions.
func (e *Engine) Resolve(ctx context.Context, items []domain.ExtractedItem, restaurantID int) domain.ResolveResponse {
	if len(items) == 0 {
		return domain.ResolveResponse{
			Success:                false,
			NeedsClarification:     true,
			ResolvedItems:          []domain.ResolvedItem{},
			ClarificationQuestions: []string{"No items were extracted from your request."},
		}
	}

	resolved := make([]domain.ResolvedItem, 0, len(items))
	questions := []string{}
	needsClarification := false

	for _, item := range items {
		r, err := e.resolveItem(ctx, item, restaurantID)
		if err != nil {
			log.Printf("[resolution] catalog unavailable resolving %q: %v", item.ItemName, err)
			return catalogUnavailableResponse()
		}
		resolved = append(resolved, r)

		if r.IsAmbiguous || r.IsUnavailable {
			needsClarification = true
			if r.ClarificationQuestion != "" {
				questions = append(questions, r.ClarificationQuestion)
			}
		}
	}

	confidence := resolved[0].Confidence
	for _, r := range resolved[1:] {
		if r.Confidence < confidence {
			confidence = r.Confidence
		}
	}

	return domain.ResolveResponse{
		Success:                true,
		Confidence:             confidence,
		ResolvedItems:          resolved,
		NeedsClarification:     needsClarification,
		ClarificationQuestions: questions,
		ResolutionNotes:        fmt.Sprintf("Resolved %d items using fuzzy matching", len(resolved)),
	}
}

func catalogUnavailableResponse() domain.ResolveResponse {
	return domain.ResolveResponse{
		Success:                false,
		NeedsClarification:     true,
		ResolvedItems:          []domain.ResolvedItem{},
		ClarificationQuestions: []string{"The menu is temporarily unavailable. Please try again in a moment."},
	}
}

func (e *Engine) resolveItem(ctx context.Context, item domain.ExtractedItem, restaurantID int) (domain.ResolvedItem, error) {
	matches, err := e.catalog.FuzzySearchMenuItems(ctx, restaurantID, item.ItemName, candidateLimit)
	if err != nil {
		return domain.ResolvedItem{}, err
	}

	if len(matches) == 0 {
		return e.unavailableItem(ctx, item, restaurantID)
	}

	best := matches[0]
	modifiers, details, err := e.normalizeModifiers(ctx, item.Modifiers, restaurantID)
	if err != nil {
		return domain.ResolvedItem{}, err
	}

	if clearWinner(matches) {
		return domain.ResolvedItem{
			ItemName:             item.ItemName,
			Quantity:             item.Quantity,
			Size:                 item.Size,
			Modifiers:            modifiers,
			SpecialInstructions:  item.SpecialInstructions,
			NormalizationDetails: details,
			ResolvedMenuItemID:   best.ID,
			ResolvedMenuItemName: best.Name,
			Confidence:           best.Score / 100.0,
			SuggestedOptions:     []string{},
		}, nil
	}

	options := make([]string, 0, suggestionLimit)
	for _, m := range matches {
		options = append(options, m.Name)
		if len(options) == suggestionLimit {
			break
		}
	}

	return domain.ResolvedItem{
		ItemName:             item.ItemName,
		Quantity:             item.Quantity,
		Size:                 item.Size,
		Modifiers:            modifiers,
		SpecialInstructions:  item.SpecialInstructions,
		NormalizationDetails: details,
		Confidence:           0.8,
		IsAmbiguous:          true,
		SuggestedOptions:     options,
		ClarificationQuestion: fmt.Sprintf("Which %s would you like? We have %s.",
			item.ItemName, strings.Join(options, ", ")),
	}, nil
}

// unavailableItem retries with the first token of the item name to offer
// nearby alternatives.
func (e *Engine) unavailableItem(ctx context.Context, item domain.ExtractedItem, restaurantID int) (domain.ResolvedItem, error) {
	firstToken := item.ItemName
	if fields := strings.Fields(item.ItemName); len(fields) > 0 {
		firstToken = fields[0]
	}

	similar, err := e.catalog.FuzzySearchMenuItems(ctx, restaurantID, firstToken, suggestionLimit)
	if err != nil {
		return domain.ResolvedItem{}, err
	}

	options := make([]string, 0, len(similar))
	for _, m := range similar {
		options = append(options, m.Name)
	}

	clarification := fmt.Sprintf("Sorry, we don't have %s on our menu.", item.ItemName)
	if len(options) > 0 {
		clarification = fmt.Sprintf("Sorry, we don't have %s. But we do have %s. Would you like one of those?",
			item.ItemName, strings.Join(options, ", "))
	}

	return domain.ResolvedItem{
		ItemName:              item.ItemName,
		Quantity:              item.Quantity,
		Size:                  item.Size,
		Modifiers:             []domain.Modification{},
		SpecialInstructions:   item.SpecialInstructions,
		IsUnavailable:         true,
		SuggestedOptions:      options,
		ClarificationQuestion: clarification,
	}, nil
}

// clearWinner decides whether the best candidate resolves without asking
// the customer. Rules are evaluated in order; the first that holds wins.
func clearWinner(matches []domain.MenuMatch) bool {
	if len(matches) == 1 {
		return true
	}

	best := matches[0].Score
	if best >= HighScoreThreshold {
		return true
	}

	if best-matches[1].Score >= ScoreGapThreshold {
		return true
	}

	// Weaker heuristic: favors precision over excessive clarification.
	return best >= FloorThreshold
}

// normalizeModifiers turns raw modifier strings into catalog-bound
// (ingredient, action) pairs. Unresolved ingredients are retained in the
// details for diagnostics but never priced or applied.
func (e *Engine) normalizeModifiers(ctx context.Context, raw []string, restaurantID int) ([]domain.Modification, []domain.NormalizedModifier, error) {
	modifiers := []domain.Modification{}
	details := []domain.NormalizedModifier{}

	for _, r := range raw {
		action, term := domain.ParseModifier(r)

		matches, err := e.catalog.FuzzySearchIngredients(ctx, restaurantID, term, 1)
		if err != nil {
			return nil, nil, err
		}

		if len(matches) == 0 {
			log.Printf("[resolution] ingredient not found for modifier %q", r)
			details = append(details, domain.NormalizedModifier{
				Original:       r,
				Action:         action,
				IngredientTerm: term,
			})
			continue
		}

		best := matches[0]
		modifiers = append(modifiers, domain.Modification{IngredientID: best.ID, Action: action})
		details = append(details, domain.NormalizedModifier{
			Original:       r,
			Action:         action,
			IngredientTerm: term,
			IngredientID:   best.ID,
			IngredientName: best.Name,
			Confidence:     best.Score / 100.0,
			IsResolved:     true,
			IsAllergen:     best.IsAllergen,
			AllergenType:   best.AllergenType,
		})
		if best.IsAllergen {
			log.Printf("[resolution] modifier %q binds allergen %s (%s)", r, best.Name, best.AllergenType)
		}
	}

	return modifiers, details, nil
}
