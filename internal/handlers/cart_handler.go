package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/foodtuck/storefront/internal/cart"
	"github.com/foodtuck/storefront/internal/coupon"
	"github.com/foodtuck/storefront/internal/middleware"
	"github.com/foodtuck/storefront/internal/models"
	"github.com/foodtuck/storefront/internal/pricing"
	"github.com/go-chi/chi/v5"
)

// CartHandler serves the per-user shopping cart endpoints. The header
// badge count is fed by cart-change notifications rather than by
// reading the store directly, so the two stay decoupled.
type CartHandler struct {
	carts   *cart.Manager
	coupons *coupon.Validator
	log     *slog.Logger

	badgeMu sync.RWMutex
	badges  map[string]int // user id -> line entry count
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, coupons *coupon.Validator, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		coupons: coupons,
		log:     log,
		badges:  make(map[string]int),
	}
}

// cartResponse is the cart payload returned by mutating and read endpoints.
type cartResponse struct {
	Items   []models.CartItem `json:"items"`
	Summary pricing.Quote     `json:"summary"`
}

// addItemRequest is the body for POST /api/cart/items.
type addItemRequest struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// quantityRequest is the body for POST /api/cart/items/{itemId}/quantity.
type quantityRequest struct {
	Action string `json:"action"` // "increment" or "decrement"
}

// couponRequest is the body for POST /api/cart/coupon.
type couponRequest struct {
	Code string `json:"code"`
}

// storeFor resolves the caller's cart store, wiring the badge-count
// subscription the first time a user's store is opened.
func (h *CartHandler) storeFor(r *http.Request) (*cart.Store, string, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return nil, "", errors.New("missing user identity")
	}

	store, err := h.carts.StoreFor(userID)
	if err != nil {
		return nil, "", err
	}

	h.badgeMu.Lock()
	if _, subscribed := h.badges[userID]; !subscribed {
		h.badges[userID] = store.ItemCount()
		store.Subscribe(func(snapshot cart.Snapshot) {
			h.badgeMu.Lock()
			h.badges[userID] = snapshot.ItemCount()
			h.badgeMu.Unlock()
		})
	}
	h.badgeMu.Unlock()

	return store, userID, nil
}

func (h *CartHandler) writeCart(w http.ResponseWriter, store *cart.Store) {
	items := store.Items()
	WriteJSON(w, http.StatusOK, cartResponse{
		Items:   items,
		Summary: pricing.Calculate(items, store.Discount()),
	}, h.log)
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, _, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	h.writeCart(w, store)
}

// AddItem handles POST /api/cart/items
// Adding an item that is already in the cart increments its quantity by one.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if req.ID == "" || req.Name == "" || req.Price < 0 {
		WriteError(w, http.StatusBadRequest, "Item id, name and a non-negative price are required", h.log)
		return
	}

	store, userID, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if err := store.AddItem(models.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}); err != nil {
		h.log.Error("failed to add cart item", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.writeCart(w, store)
}

// ChangeQuantity handles POST /api/cart/items/{itemId}/quantity
// Decrementing a quantity of one leaves it at one; it never removes the item.
func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	var direction cart.Direction
	switch req.Action {
	case "increment":
		direction = cart.Increment
	case "decrement":
		direction = cart.Decrement
	default:
		WriteError(w, http.StatusBadRequest, "Action must be increment or decrement", h.log)
		return
	}

	store, userID, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if err := store.ChangeQuantity(itemID, direction); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Cart item not found", h.log)
			return
		}
		h.log.Error("failed to change quantity", "user_id", userID, "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.writeCart(w, store)
}

// RemoveItem handles DELETE /api/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	store, userID, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if err := store.RemoveItem(itemID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Cart item not found", h.log)
			return
		}
		h.log.Error("failed to remove cart item", "user_id", userID, "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.writeCart(w, store)
}

// ApplyCoupon handles POST /api/cart/coupon
// An unknown code is not an error: the response reports valid=false and
// any previously applied discount is cleared.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	store, userID, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	discount, valid := h.coupons.Discount(req.Code)
	if err := store.SetDiscount(discount); err != nil {
		h.log.Error("failed to persist discount", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("coupon applied", "user_id", userID, "valid", valid, "discount", discount)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"valid":    valid,
		"discount": discount,
	}, h.log)
}

// ClearCart handles DELETE /api/cart
// The storefront calls this after a successful order submission; it
// empties the cart and removes the applied discount in one step.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store, userID, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if err := store.Clear(); err != nil {
		h.log.Error("failed to clear cart", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("cart cleared", "user_id", userID)
	h.writeCart(w, store)
}

// Count handles GET /api/cart/count, serving the header badge indicator
// from the subscription-fed counter. storeFor seeds the counter before
// returning, so the badge map always has an entry for the caller.
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	_, userID, err := h.storeFor(r)
	if err != nil {
		h.log.Error("failed to open cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.badgeMu.RLock()
	count := h.badges[userID]
	h.badgeMu.RUnlock()

	WriteJSON(w, http.StatusOK, map[string]int{"count": count}, h.log)
}
