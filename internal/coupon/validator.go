package coupon

import "github.com/foodtuck/storefront/internal/config"

// Validator checks submitted coupon codes against the single-entry
// allow-list: exactly one valid code granting a fixed percentage off.
// Comparison is case-sensitive.
type Validator struct {
	validCode       string
	discountPercent int
}

// NewValidator creates a validator from the coupon configuration.
func NewValidator(cfg config.CouponConfig) *Validator {
	return &Validator{
		validCode:       cfg.ValidCode,
		discountPercent: cfg.DiscountPercent,
	}
}

// Discount returns the discount percentage for a code and whether the
// code is valid. Unknown codes yield 0 so any previously applied
// discount is cleared by the caller.
func (v *Validator) Discount(code string) (int, bool) {
	if code == v.validCode {
		return v.discountPercent, true
	}
	return 0, false
}
