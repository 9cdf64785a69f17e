package request

// NotifyRequest carries one notification dispatch. Which fields are required
// depends on the type; the dispatcher validates the per-type field set before
// rendering anything.
type NotifyRequest struct {
	Type string `json:"type" validate:"required"`

	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty" validate:"omitempty,email"`

	VendorName  string `json:"vendor_name,omitempty"`
	VendorEmail string `json:"vendor_email,omitempty" validate:"omitempty,email"`

	HostName  string `json:"host_name,omitempty"`
	HostEmail string `json:"host_email,omitempty" validate:"omitempty,email"`

	ExperienceName string  `json:"experience_name,omitempty"`
	OrderID        string  `json:"order_id,omitempty"`
	BookingDate    string  `json:"booking_date,omitempty"`
	BookingTime    string  `json:"booking_time,omitempty"`
	Guests         int     `json:"guests,omitempty"`
	TotalAmount    float64 `json:"total_amount,omitempty"`
	Currency       string  `json:"currency,omitempty"`

	CommissionAmount float64 `json:"commission_amount,omitempty"`
	PromoCode        string  `json:"promo_code,omitempty"`
	Reason           string  `json:"reason,omitempty"`

	// GuestCancellation distinguishes guest- from vendor-initiated
	// cancellations so both cancellation emails name the right party.
	GuestCancellation bool `json:"guest_cancellation,omitempty"`
}
