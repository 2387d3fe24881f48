package models

import "time"

// OrderRequest represents an incoming order placement request.
// Required fields mirror the storefront checkout payload; zero values
// count as missing, so a zero subtotal or total is rejected.
type OrderRequest struct {
	ClerkID         string           `json:"clerkId" validate:"required"`
	FullName        string           `json:"fullName" validate:"required"`
	Email           string           `json:"email" validate:"required"`
	Phone           string           `json:"phone,omitempty"`
	CartItems       []OrderItem      `json:"cartItems" validate:"required,min=1"`
	Subtotal        float64          `json:"subtotal" validate:"required"`
	Discount        int              `json:"discount,omitempty"`
	Shipping        float64          `json:"shipping"`
	Total           float64          `json:"total" validate:"required"`
	ShippingDetails *ShippingDetails `json:"shippingDetails" validate:"required"`
}

// OrderItem is a price/quantity snapshot of a cart line at order time,
// decoupled from the live catalog document.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ShippingDetails holds the delivery address collected at checkout.
// Phone, country, city, address and zip code are the required subset;
// the checkout form enforces that before submission.
type ShippingDetails struct {
	Phone      string `json:"phone"`
	Company    string `json:"company,omitempty"`
	Country    string `json:"country"`
	City       string `json:"city"`
	Address    string `json:"address"`
	ZipCode    string `json:"zipCode"`
	PostalCode string `json:"postalCode,omitempty"`
	State      string `json:"state,omitempty"`
}

// Order is the persisted order document in the content repository.
type Order struct {
	ID              string          `json:"_id,omitempty"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Discount        int             `json:"discount"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	ShippingDetails ShippingDetails `json:"shippingDetails"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// User is the persisted user document, keyed by the external
// authentication provider's id.
type User struct {
	ID      string `json:"_id,omitempty"`
	ClerkID string `json:"clerkId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
