package pricing

import (
	"math"
	"testing"

	"github.com/foodtuck/storefront/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.CartItem
		discount     int
		wantSubtotal float64
		wantShipping float64
		wantTotal    float64
	}{
		{
			name:         "empty cart has no shipping and zero total",
			items:        nil,
			discount:     0,
			wantSubtotal: 0,
			wantShipping: 0,
			wantTotal:    0,
		},
		{
			name:         "empty cart stays zero regardless of discount",
			items:        nil,
			discount:     15,
			wantSubtotal: 0,
			wantShipping: 0,
			wantTotal:    0,
		},
		{
			name: "single item with flat shipping",
			items: []models.CartItem{
				{ID: "1", Price: 10, Quantity: 1},
			},
			discount:     0,
			wantSubtotal: 10,
			wantShipping: 5,
			wantTotal:    15,
		},
		{
			name: "coupon example from the cart page",
			items: []models.CartItem{
				{ID: "1", Price: 10, Quantity: 2},
				{ID: "2", Price: 5, Quantity: 1},
			},
			discount:     15,
			wantSubtotal: 25,
			wantShipping: 5,
			wantTotal:    25.50,
		},
		{
			name: "full discount",
			items: []models.CartItem{
				{ID: "1", Price: 12.99, Quantity: 3},
			},
			discount:     100,
			wantSubtotal: 38.97,
			wantShipping: 5,
			wantTotal:    0,
		},
		{
			name: "discount above 100 clamps to 100",
			items: []models.CartItem{
				{ID: "1", Price: 20, Quantity: 1},
			},
			discount:     150,
			wantSubtotal: 20,
			wantShipping: 5,
			wantTotal:    0,
		},
		{
			name: "negative discount clamps to 0",
			items: []models.CartItem{
				{ID: "1", Price: 20, Quantity: 1},
			},
			discount:     -10,
			wantSubtotal: 20,
			wantShipping: 5,
			wantTotal:    25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := Calculate(tt.items, tt.discount)

			if !almostEqual(quote.Subtotal, tt.wantSubtotal) {
				t.Errorf("Subtotal = %v, want %v", quote.Subtotal, tt.wantSubtotal)
			}
			if !almostEqual(quote.Shipping, tt.wantShipping) {
				t.Errorf("Shipping = %v, want %v", quote.Shipping, tt.wantShipping)
			}
			if !almostEqual(quote.Total, tt.wantTotal) {
				t.Errorf("Total = %v, want %v", quote.Total, tt.wantTotal)
			}
		})
	}
}

func TestCalculate_SubtotalIsOrderIndependent(t *testing.T) {
	forward := []models.CartItem{
		{ID: "1", Price: 12.99, Quantity: 2},
		{ID: "2", Price: 7.49, Quantity: 1},
		{ID: "3", Price: 3.25, Quantity: 4},
	}
	reversed := []models.CartItem{forward[2], forward[1], forward[0]}

	if got, want := Calculate(forward, 0).Subtotal, Calculate(reversed, 0).Subtotal; !almostEqual(got, want) {
		t.Errorf("subtotal depends on item order: %v vs %v", got, want)
	}
}

func TestCalculate_ShippingFlatForAnyNonEmptyCart(t *testing.T) {
	items := []models.CartItem{{ID: "1", Price: 1, Quantity: 1}}
	for i := 0; i < 5; i++ {
		quote := Calculate(items, 0)
		if quote.Shipping != FlatShippingFee {
			t.Fatalf("shipping = %v, want flat fee %v for %d items", quote.Shipping, FlatShippingFee, len(items))
		}
		items = append(items, models.CartItem{ID: "x", Price: float64(i), Quantity: i + 1})
	}
}

func TestCalculate_TotalFormulaHolds(t *testing.T) {
	items := []models.CartItem{
		{ID: "1", Price: 9.99, Quantity: 3},
		{ID: "2", Price: 4.5, Quantity: 2},
	}

	for discount := 0; discount <= 100; discount += 5 {
		quote := Calculate(items, discount)
		want := (quote.Subtotal + quote.Shipping) * (1 - float64(discount)/100)
		if !almostEqual(quote.Total, want) {
			t.Errorf("discount %d: total = %v, want %v", discount, quote.Total, want)
		}
	}
}
