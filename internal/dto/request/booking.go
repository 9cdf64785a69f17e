package request

type CreateBookingRequest struct {
	ExperienceID    string  `json:"experience_id" validate:"required,uuid4"`
	GuestName       string  `json:"guest_name" validate:"required,min=2,max=100"`
	GuestEmail      string  `json:"guest_email" validate:"required,email"`
	GuestPhone      *string `json:"guest_phone,omitempty" validate:"omitempty,min=10,max=15"`
	BookingDate     string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime     string  `json:"booking_time" validate:"required,datetime=15:04"`
	Guests          int     `json:"guests" validate:"required,min=1,max=100"`
	StripeSessionID *string `json:"stripe_session_id,omitempty"`
	PromoCode       *string `json:"promo_code,omitempty" validate:"omitempty,min=3,max=30"`
	HostID          *string `json:"host_id,omitempty" validate:"omitempty,uuid4"`
}

type CancelBookingRequest struct {
	Reason            *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	GuestCancellation bool    `json:"guest_cancellation"`
}
