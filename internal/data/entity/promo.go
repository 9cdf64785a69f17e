package entity

import (
	"github.com/google/uuid"
)

type PromoCode struct {
	Base
	Code            string    `db:"code"`
	HostID          uuid.UUID `db:"host_id"`
	DiscountPercent float64   `db:"discount_percent"`
	IsActive        bool      `db:"is_active"`
}

// Apply returns the amount after the promo discount.
func (p *PromoCode) Apply(amount float64) float64 {
	if !p.IsActive || p.DiscountPercent <= 0 {
		return amount
	}
	discounted := amount * (100 - p.DiscountPercent) / 100
	if discounted < 0 {
		return 0
	}
	return discounted
}
