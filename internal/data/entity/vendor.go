package entity

import (
	"github.com/google/uuid"
)

// DefaultCancellationHours is applied when a vendor profile has no explicit
// cancellation window.
const DefaultCancellationHours = 24

type VendorProfile struct {
	Base
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	ContactEmail      string    `db:"contact_email"`
	Description       *string   `db:"description"`
	CommissionRate    float64   `db:"commission_rate"`
	CancellationHours int       `db:"cancellation_hours"`
	Published         bool      `db:"published"`
}

// EffectiveCancellationHours returns the vendor's cancellation window,
// falling back to the 24h default when unset.
func (v *VendorProfile) EffectiveCancellationHours() int {
	if v.CancellationHours <= 0 {
		return DefaultCancellationHours
	}
	return v.CancellationHours
}
