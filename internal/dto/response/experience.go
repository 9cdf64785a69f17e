package response

import (
	"time"

	"stackbnb/internal/data/entity"
)

type ExperienceResponse struct {
	ID              string    `json:"id"`
	VendorID        string    `json:"vendor_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	DurationMinutes int       `json:"duration_minutes"`
	MaxGuests       int       `json:"max_guests"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func ExperienceToResponse(exp *entity.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:              exp.ID.String(),
		VendorID:        exp.VendorID.String(),
		Name:            exp.Name,
		Description:     exp.Description,
		Price:           exp.Price,
		Currency:        exp.Currency,
		DurationMinutes: exp.DurationMinutes,
		MaxGuests:       exp.MaxGuests,
		IsActive:        exp.IsActive,
		CreatedAt:       exp.CreatedAt,
	}
}
