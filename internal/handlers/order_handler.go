package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/foodtuck/storefront/internal/models"
	"github.com/foodtuck/storefront/internal/service"
)

// OrderHandler handles order placement HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// PlaceOrder handles POST /api/placeOrder
// Responses:
//   - 201 {message, orderId} on success
//   - 400 {error, details} listing every missing field
//   - 500 {error, details} with the underlying repository message
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteErrorDetails(w, http.StatusBadRequest, "Invalid request body", []string{err.Error()}, h.log)
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.log.Warn("order validation failed", "details", validationErr.Details)
			WriteErrorDetails(w, http.StatusBadRequest, "Validation Failed", validationErr.Details, h.log)
			return
		}

		h.log.Error("failed to create order", "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to create order", err.Error(), h.log)
		return
	}

	h.log.Info("order created successfully", "order_id", order.ID, "items_count", len(order.Items))
	WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Order placed successfully",
		"orderId": order.ID,
	}, h.log)
}
