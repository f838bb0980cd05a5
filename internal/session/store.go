package session

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"drivethru/internal/archive"
	"drivethru/internal/catalog"
	"drivethru/internal/domain"
)

// Default TTLs for ephemeral records. Expiry is the only garbage collection
// mechanism; there is no explicit cancellation for an in-flight order.
const (
	DefaultOrderTTL   = 30 * time.Minute
	DefaultSessionTTL = 15 * time.Minute
)

// MenuPricer is the slice of the catalog accessor the store needs for
// pricing lines.
type MenuPricer interface {
	GetMenuItem(ctx context.Context, restaurantID, menuItemID int) (*domain.MenuItem, error)
	GetIngredientLink(ctx context.Context, restaurantID, menuItemID, ingredientID int) (*domain.IngredientLink, error)
}

// ArchivePublisher emits the archival intent when an order finalizes.
// Publishing is best effort and at least once; consumers de-duplicate.
type ArchivePublisher interface {
	PublishFinalized(ctx context.Context, order *domain.OrderSession) error
}

// Archiver writes an ephemeral order into durable storage synchronously.
type Archiver interface {
	ArchiveOrder(ctx context.Context, order *domain.OrderSession) error
}

var (
	_ MenuPricer       = (*catalog.Service)(nil)
	_ ArchivePublisher = (*archive.KafkaPublisher)(nil)
	_ Archiver         = (*archive.PostgresStore)(nil)
)

// Store manages in-flight orders in redis. Every operation fails closed:
// a store outage looks like "no active order", never a crash. Mutations
// refresh the record's TTL. Within a session the store is last-write-wins;
// concurrent mutations to the same order can lose an update.
type Store struct {
	kv        *KV
	catalog   MenuPricer
	publisher ArchivePublisher
	archiver  Archiver

	orderTTL   time.Duration
	sessionTTL time.Duration
}

func NewStore(kv *KV, catalog MenuPricer, publisher ArchivePublisher, archiver Archiver) *Store {
	return &Store{
		kv:         kv,
		catalog:    catalog,
		publisher:  publisher,
		archiver:   archiver,
		orderTTL:   DefaultOrderTTL,
		sessionTTL: DefaultSessionTTL,
	}
}

func orderKey(orderID string) string {
	return "order:" + orderID
}

func currentOrderKey(sessionID string) string {
	return "session:" + sessionID + ":current_order"
}

// CreateOrder starts a fresh active order for a session and points the
// session's current_order at it. Returns the order ID, or "" when the
// store is unavailable.
func (s *Store) CreateOrder(ctx context.Context, sessionID string, restaurantID int, ttl time.Duration) (string, bool) {
	if ttl <= 0 {
		ttl = s.orderTTL
	}

	now := time.Now().UTC()
	order := domain.OrderSession{
		ID:           fmt.Sprintf("order_%d", now.UnixMilli()),
		SessionID:    sessionID,
		RestaurantID: restaurantID,
		Status:       domain.OrderStatusActive,
		Items:        []domain.OrderLine{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.kv.SetJSON(ctx, orderKey(order.ID), &order, ttl); err != nil {
		log.Printf("[session] create order failed: %v", err)
		return "", false
	}
	if err := s.kv.Set(ctx, currentOrderKey(sessionID), order.ID, ttl); err != nil {
		log.Printf("[session] set current order pointer failed: %v", err)
	}

	log.Printf("[session] created order %s for session %s", order.ID, sessionID)
	return order.ID, true
}

// getOrderRaw reads the order record without consolidating. Internal
// mutations work on raw lines so duplicates stay distinct until read time.
func (s *Store) getOrderRaw(ctx context.Context, orderID string) *domain.OrderSession {
	var order domain.OrderSession
	ok, err := s.kv.GetJSON(ctx, orderKey(orderID), &order)
	if err != nil {
		log.Printf("[session] get order %s failed: %v", orderID, err)
		return nil
	}
	if !ok {
		return nil
	}
	return &order
}

// GetOrder returns a consolidated snapshot of the order, or nil when it
// does not exist or the store is unavailable.
func (s *Store) GetOrder(ctx context.Context, orderID string) *domain.OrderSession {
	order := s.getOrderRaw(ctx, orderID)
	if order == nil {
		return nil
	}
	order.Items = ConsolidateLines(order.Items)
	return order
}

// GetSessionOrder resolves the session's current_order pointer. A stale
// pointer to an expired order means "no active order", not an error.
func (s *Store) GetSessionOrder(ctx context.Context, sessionID string) *domain.OrderSession {
	orderID, ok, err := s.kv.Get(ctx, currentOrderKey(sessionID))
	if err != nil {
		log.Printf("[session] get current order for %s failed: %v", sessionID, err)
		return nil
	}
	if !ok {
		return nil
	}
	return s.GetOrder(ctx, orderID)
}

// AddItem appends a new line for the menu item and recomputes totals.
// Consolidation happens at read time, so adding the same item twice is fine.
func (s *Store) AddItem(ctx context.Context, orderID string, menuItemID, quantity int, mods domain.LineModifications) bool {
	order := s.getOrderRaw(ctx, orderID)
	if order == nil {
		return false
	}

	item, err := s.catalog.GetMenuItem(ctx, order.RestaurantID, menuItemID)
	if err != nil {
		log.Printf("[session] menu item lookup failed for %d: %v", menuItemID, err)
		return false
	}
	if item == nil || !item.IsAvailable {
		log.Printf("[session] menu item %d not available for restaurant %d", menuItemID, order.RestaurantID)
		return false
	}

	if quantity < domain.MinItemQuantity {
		quantity = domain.DefaultQuantity
	}
	maxQty := item.MaxQuantity
	if maxQty <= 0 || maxQty > domain.MaxItemQuantity {
		maxQty = domain.MaxItemQuantity
	}
	if quantity > maxQty {
		log.Printf("[session] quantity %d exceeds max %d for menu item %d", quantity, maxQty, menuItemID)
		return false
	}

	total := quantity
	for _, line := range order.Items {
		total += line.Quantity
	}
	if total > domain.MaxTotalItems || len(order.Items)+1 > domain.MaxUniqueItems {
		log.Printf("[session] order %s over item limits", orderID)
		return false
	}

	if mods.Name == "" {
		mods.Name = item.Name
	}

	line := domain.OrderLine{
		ID:            fmt.Sprintf("item_%d", time.Now().UnixNano()),
		MenuItemID:    menuItemID,
		Quantity:      quantity,
		Modifications: mods,
		UnitPrice:     item.Price,
		AddedAt:       time.Now().UTC(),
	}
	order.Items = append(order.Items, line)

	if !s.recomputeTotals(ctx, order) {
		return false
	}
	return s.writeOrder(ctx, order)
}

// RemoveItem drops the line with the given ID. Callers only ever see
// consolidated snapshots, so the filter runs over the consolidated view and
// the merged list is what gets persisted; removing a merged line removes
// every raw duplicate behind it.
func (s *Store) RemoveItem(ctx context.Context, orderID, lineID string) bool {
	order := s.getOrderRaw(ctx, orderID)
	if order == nil {
		return false
	}
	order.Items = ConsolidateLines(order.Items)

	kept := order.Items[:0]
	for _, line := range order.Items {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	order.Items = kept

	if !s.recomputeTotals(ctx, order) {
		return false
	}
	return s.writeOrder(ctx, order)
}

// ClearOrder removes every line but keeps the order alive.
func (s *Store) ClearOrder(ctx context.Context, orderID string) bool {
	order := s.getOrderRaw(ctx, orderID)
	if order == nil {
		return false
	}
	order.Items = []domain.OrderLine{}
	if !s.recomputeTotals(ctx, order) {
		return false
	}
	return s.writeOrder(ctx, order)
}

// SaveOrder persists a caller-mutated order in a single write, recomputing
// totals first. This is the atomic replacement path the split engine uses.
func (s *Store) SaveOrder(ctx context.Context, order *domain.OrderSession) bool {
	if order == nil {
		return false
	}
	if !s.recomputeTotals(ctx, order) {
		return false
	}
	return s.writeOrder(ctx, order)
}

// FinalizeOrder marks the order completed and publishes the archival
// intent. Archival is best effort: a publish failure is logged and never
// rolls back the finalize.
func (s *Store) FinalizeOrder(ctx context.Context, orderID string) bool {
	order := s.getOrderRaw(ctx, orderID)
	if order == nil {
		return false
	}

	order.Status = domain.OrderStatusCompleted
	if !s.writeOrder(ctx, order) {
		return false
	}

	if s.publisher != nil {
		if err := s.publisher.PublishFinalized(ctx, order); err != nil {
			log.Printf("[session] archival publish failed for %s: %v", orderID, err)
		}
	}
	return true
}

// ArchiveOrder copies the order into durable storage synchronously.
func (s *Store) ArchiveOrder(ctx context.Context, orderID string) bool {
	if s.archiver == nil {
		return false
	}
	order := s.getOrderRaw(ctx, orderID)
	if order == nil {
		return false
	}
	if err := s.archiver.ArchiveOrder(ctx, order); err != nil {
		log.Printf("[session] archive failed for %s: %v", orderID, err)
		return false
	}
	return true
}

// DeleteOrder removes the order record.
func (s *Store) DeleteOrder(ctx context.Context, orderID string) bool {
	ok, err := s.kv.Delete(ctx, orderKey(orderID))
	if err != nil {
		log.Printf("[session] delete order %s failed: %v", orderID, err)
		return false
	}
	return ok
}

// recomputeTotals reprices every line and the order totals. A line's total
// is quantity times unit price plus addon cost, where addons apply per unit
// and only for extra-class modifiers with a priced ingredient link.
func (s *Store) recomputeTotals(ctx context.Context, order *domain.OrderSession) bool {
	subtotal := 0.0

	for i := range order.Items {
		line := &order.Items[i]

		addonPerUnit := 0.0
		costs := []domain.ModifierCost{}
		for _, mod := range line.Modifications.Modifiers {
			if !mod.Action.ChargesAddon() {
				continue
			}
			link, err := s.catalog.GetIngredientLink(ctx, order.RestaurantID, line.MenuItemID, mod.IngredientID)
			if err != nil {
				log.Printf("[session] ingredient link lookup failed (%d,%d): %v",
					line.MenuItemID, mod.IngredientID, err)
				return false
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
		subtotal += line.TotalPrice
	}

	order.Subtotal = round2(subtotal)
	order.TaxAmount = 0 // tax is an external collaborator's job
	order.TotalAmount = order.Subtotal
	return true
}

// writeOrder persists the order and refreshes both the order record's TTL
// and the session's current_order pointer.
func (s *Store) writeOrder(ctx context.Context, order *domain.OrderSession) bool {
	order.UpdatedAt = time.Now().UTC()

	if err := s.kv.SetJSON(ctx, orderKey(order.ID), order, s.orderTTL); err != nil {
		log.Printf("[session] write order %s failed: %v", order.ID, err)
		return false
	}
	if order.SessionID != "" {
		if err := s.kv.Set(ctx, currentOrderKey(order.SessionID), order.ID, s.orderTTL); err != nil {
			log.Printf("[session] refresh current order pointer failed: %v", err)
		}
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
