package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"drivethru/internal/catalog"
	"drivethru/internal/domain"
	"drivethru/internal/resolution"
	"drivethru/internal/session"
	"drivethru/internal/split"

	"github.com/gorilla/mux"
)

// ResolverInterface is the resolution engine surface the handlers use.
type ResolverInterface interface {
	Resolve(ctx context.Context, items []domain.ExtractedItem, restaurantID int) domain.ResolveResponse
}

// OrderStoreInterface is the session store surface the handlers use.
type OrderStoreInterface interface {
	CreateOrder(ctx context.Context, sessionID string, restaurantID int, ttl time.Duration) (string, bool)
	GetOrder(ctx context.Context, orderID string) *domain.OrderSession
	GetSessionOrder(ctx context.Context, sessionID string) *domain.OrderSession
	AddItem(ctx context.Context, orderID string, menuItemID, quantity int, mods domain.LineModifications) bool
	RemoveItem(ctx context.Context, orderID, lineID string) bool
	ClearOrder(ctx context.Context, orderID string) bool
	SaveOrder(ctx context.Context, order *domain.OrderSession) bool
	FinalizeOrder(ctx context.Context, orderID string) bool
	DeleteOrder(ctx context.Context, orderID string) bool
}

// SplitterInterface is the modify-item engine surface the handlers use.
type SplitterInterface interface {
	Split(ctx context.Context, order *domain.OrderSession, targetLineID string, unitsAffected int, newMod split.Modification) (*split.Result, error)
}

// MenuAdminInterface covers menu cache maintenance.
type MenuAdminInterface interface {
	PreloadMenu(ctx context.Context, restaurantID int) error
	InvalidateMenu(ctx context.Context, restaurantID int) error
}

var (
	_ ResolverInterface   = (*resolution.Engine)(nil)
	_ OrderStoreInterface = (*session.Store)(nil)
	_ SplitterInterface   = (*split.Engine)(nil)
	_ MenuAdminInterface  = (*catalog.Service)(nil)
)

type Handler struct {
	Resolver ResolverInterface
	Orders   OrderStoreInterface
	Splitter SplitterInterface
	Menu     MenuAdminInterface
}

func NewHandler(resolver ResolverInterface, orders OrderStoreInterface, splitter SplitterInterface, menu MenuAdminInterface) *Handler {
	return &Handler{
		Resolver: resolver,
		Orders:   orders,
		Splitter: splitter,
		Menu:     menu,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/resolve", h.resolve).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}/order", h.getSessionOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{orderId}/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/items", h.clearOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{orderId}/items/{lineId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/orders/{orderId}/items/{lineId}/modify", h.modifyItem).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/finalize", h.finalizeOrder).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/preload", h.preloadMenu).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/invalidate", h.invalidateMenu).Methods("POST")
	r.HandleFunc("/health", h.health).Methods("GET")
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int                    `json:"restaurant_id"`
		Items        []domain.ExtractedItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.RestaurantID == 0 {
		http.Error(w, "Missing restaurant_id", http.StatusBadRequest)
		return
	}

	resp := h.Resolver.Resolve(r.Context(), payload.Items, payload.RestaurantID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var payload struct {
		RestaurantID int `json:"restaurant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.RestaurantID == 0 {
		http.Error(w, "Missing restaurant_id", http.StatusBadRequest)
		return
	}

	orderID, ok := h.Orders.CreateOrder(r.Context(), sessionID, payload.RestaurantID, 0)
	if !ok {
		http.Error(w, "Failed to create order", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"order_id": orderID})
}

func (h *Handler) getSessionOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	order := h.Orders.GetSessionOrder(r.Context(), sessionID)
	if order == nil {
		http.Error(w, "No active order for session", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order := h.Orders.GetOrder(r.Context(), orderID)
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var payload struct {
		MenuItemID    int                      `json:"menu_item_id"`
		Quantity      int                      `json:"quantity"`
		Modifications domain.LineModifications `json:"modifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.MenuItemID == 0 {
		http.Error(w, "Missing menu_item_id", http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = domain.DefaultQuantity
	}

	if ok := h.Orders.AddItem(r.Context(), orderID, payload.MenuItemID, payload.Quantity, payload.Modifications); !ok {
		// A rejected item leaves the order readable. When it is not, the
		// store is unreachable or the order expired, not a bad request.
		if h.Orders.GetOrder(r.Context(), orderID) == nil {
			http.Error(w, "Order not available", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "Failed to add item to order", http.StatusBadRequest)
		return
	}

	order := h.Orders.GetOrder(r.Context(), orderID)
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if ok := h.Orders.RemoveItem(r.Context(), vars["orderId"], vars["lineId"]); !ok {
		http.Error(w, "Item not found in order", http.StatusNotFound)
		return
	}

	order := h.Orders.GetOrder(r.Context(), vars["orderId"])

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) clearOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if ok := h.Orders.ClearOrder(r.Context(), orderID); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}

func (h *Handler) modifyItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]

	var payload struct {
		UnitsAffected       int      `json:"units_affected"`
		ItemName            string   `json:"item_name"`
		Modifiers           []string `json:"modifiers"`
		Size                string   `json:"size"`
		Quantity            int      `json:"quantity"`
		SpecialInstructions string   `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order := h.Orders.GetOrder(r.Context(), orderID)
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	result, err := h.Splitter.Split(r.Context(), order, vars["lineId"], payload.UnitsAffected, split.Modification{
		ItemName:            payload.ItemName,
		Modifiers:           payload.Modifiers,
		Size:                payload.Size,
		Quantity:            payload.Quantity,
		SpecialInstructions: payload.SpecialInstructions,
	})
	if err != nil {
		var vErr *split.ValidationError
		var nErr *split.NotInOrderError
		switch {
		case errors.As(err, &vErr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"error":   vErr.Message,
				"field":   vErr.Field,
				"allowed": vErr.Allowed,
			})
		case errors.As(err, &nErr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": nErr.Error()})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if ok := h.Orders.SaveOrder(r.Context(), order); !ok {
		http.Error(w, "Failed to save order", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order":           order,
		"modified_lines":  result.Lines,
		"additional_cost": result.AdditionalCost,
		"modified_fields": result.ModifiedFields,
	})
}

func (h *Handler) finalizeOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if ok := h.Orders.FinalizeOrder(r.Context(), orderID); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	order := h.Orders.GetOrder(r.Context(), orderID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if ok := h.Orders.DeleteOrder(r.Context(), orderID); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) preloadMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	if err := h.Menu.PreloadMenu(r.Context(), restaurantID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "preloaded"})
}

func (h *Handler) invalidateMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	if err := h.Menu.InvalidateMenu(r.Context(), restaurantID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "invalidated"})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
