// Package pricing computes cart totals. All math is pure float arithmetic
// with no intermediate rounding; two-decimal formatting is a display
// concern and never applied to stored values.
package pricing

import "github.com/foodtuck/storefront/internal/models"

// FlatShippingFee is charged on every non-empty cart. Shipping never
// varies by destination or order size.
const FlatShippingFee = 5.0

// Quote is the computed price breakdown for a cart.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount int     `json:"discount"`
	Total    float64 `json:"total"`
}

// Calculate computes the quote for the given items and discount
// percentage. Discount is clamped to [0, 100].
func Calculate(items []models.CartItem, discount int) Quote {
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	var shipping float64
	if len(items) > 0 {
		shipping = FlatShippingFee
	}

	total := (subtotal + shipping) * (1 - float64(discount)/100)

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
