package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/foodtuck/storefront/internal/models"
	"github.com/foodtuck/storefront/internal/repository"
	"github.com/go-playground/validator/v10"
)

// ValidationError reports every missing required field of an order
// request at once. Validation is exhaustive, not fail-fast: the client
// renders the full list, so a partial report would hide problems.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// validationMessages maps OrderRequest struct fields to the messages the
// storefront displays.
var validationMessages = map[string]string{
	"ClerkID":         "Missing Clerk User ID",
	"FullName":        "Missing Full Name",
	"Email":           "Missing Email",
	"CartItems":       "Cart is empty",
	"Subtotal":        "Missing Subtotal",
	"Total":           "Missing Total",
	"ShippingDetails": "Missing Shipping Details",
}

// OrderService handles order placement: validation, user resolution and
// order creation in the content repository.
type OrderService struct {
	users    repository.UserRepository
	orders   repository.OrderRepository
	validate *validator.Validate
	nowFunc  func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(users repository.UserRepository, orders repository.OrderRepository) *OrderService {
	return &OrderService{
		users:    users,
		orders:   orders,
		validate: validator.New(),
		nowFunc:  time.Now,
	}
}

// PlaceOrder validates the request, resolves or creates the user, then
// creates the order document. The service trusts the client-submitted
// totals; pricing is not recomputed here.
//
// The user lookup-then-create sequence is not atomic: two concurrent
// first orders for the same clerk id can create duplicate user
// documents. See DESIGN.md.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByClerkID(ctx, req.ClerkID)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	if user == nil {
		created, err := s.users.Create(ctx, models.User{
			ClerkID: req.ClerkID,
			Name:    req.FullName,
			Email:   req.Email,
			Phone:   req.Phone,
		})
		if err != nil {
			return nil, fmt.Errorf("user creation failed: %w", err)
		}
		user = created
	}

	// No compensating delete if the order write fails past this point:
	// the user record stays, and creation is idempotent-by-lookup on retry.
	order := models.Order{
		UserID:          user.ID,
		Items:           req.CartItems,
		Subtotal:        req.Subtotal,
		Discount:        req.Discount,
		Shipping:        req.Shipping,
		Total:           req.Total,
		ShippingDetails: *req.ShippingDetails,
		CreatedAt:       s.nowFunc().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order creation failed: %w", err)
	}

	return created, nil
}

// validateRequest collects every violation before returning, so the 400
// response enumerates all missing fields together.
func (s *OrderService) validateRequest(req models.OrderRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation failed: %w", err)
	}

	details := make([]string, 0, len(validationErrors))
	seen := make(map[string]bool)
	for _, fieldErr := range validationErrors {
		field := fieldErr.StructField()
		if seen[field] {
			continue
		}
		seen[field] = true

		if msg, exists := validationMessages[field]; exists {
			details = append(details, msg)
		} else {
			details = append(details, fmt.Sprintf("Invalid field: %s", field))
		}
	}

	return &ValidationError{Details: details}
}
