package response

import (
	"time"

	"stackbnb/internal/data/entity"
)

type PromoResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discount_percent"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func PromoToResponse(promo *entity.PromoCode) PromoResponse {
	return PromoResponse{
		ID:              promo.ID.String(),
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		IsActive:        promo.IsActive,
		CreatedAt:       promo.CreatedAt,
	}
}
