package entity

import (
	"github.com/google/uuid"
)

type Experience struct {
	Base
	VendorID        uuid.UUID `db:"vendor_id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	Price           float64   `db:"price"`
	Currency        string    `db:"currency"`
	DurationMinutes int       `db:"duration_minutes"`
	MaxGuests       int       `db:"max_guests"`
	IsActive        bool      `db:"is_active"`
}
