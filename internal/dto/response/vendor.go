package response

import (
	"time"

	"stackbnb/internal/data/entity"
)

type VendorResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ContactEmail      string    `json:"contact_email"`
	Description       *string   `json:"description,omitempty"`
	CommissionRate    float64   `json:"commission_rate"`
	CancellationHours int       `json:"cancellation_hours"`
	Published         bool      `json:"published"`
	CreatedAt         time.Time `json:"created_at"`
}

func VendorToResponse(vendor *entity.VendorProfile) VendorResponse {
	return VendorResponse{
		ID:                vendor.ID.String(),
		Name:              vendor.Name,
		ContactEmail:      vendor.ContactEmail,
		Description:       vendor.Description,
		CommissionRate:    vendor.CommissionRate,
		CancellationHours: vendor.EffectiveCancellationHours(),
		Published:         vendor.Published,
		CreatedAt:         vendor.CreatedAt,
	}
}
