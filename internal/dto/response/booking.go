package response

import (
	"time"

	"stackbnb/internal/data/entity"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	OrderID            string               `json:"order_id"`
	ExperienceID       string               `json:"experience_id"`
	ExperienceName     string               `json:"experience_name"`
	VendorID           string               `json:"vendor_id"`
	HostID             *string              `json:"host_id,omitempty"`
	GuestName          string               `json:"guest_name"`
	GuestEmail         string               `json:"guest_email"`
	BookingDate        string               `json:"booking_date"`
	BookingTime        string               `json:"booking_time"`
	Guests             int                  `json:"guests"`
	TotalAmount        float64              `json:"total_amount"`
	Currency           string               `json:"currency"`
	Status             entity.BookingStatus `json:"status"`
	CancellationHours  int                  `json:"cancellation_hours"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

// CancelBookingResponse is the soft result envelope for the cancellation
// action: business-rule rejections come back as success=false with a
// human-readable message instead of an HTTP error.
type CancelBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// EligibilityResponse is the advisory eligibility check the client uses to
// enable or disable the cancel button. It is always re-asserted server-side
// when the cancellation executes.
type EligibilityResponse struct {
	Eligible          bool    `json:"eligible"`
	HoursUntilBooking float64 `json:"hours_until_booking"`
	CancellationHours int     `json:"cancellation_hours"`
}

// CommissionSummaryResponse is the host dashboard rollup.
type CommissionSummaryResponse struct {
	HostID          string  `json:"host_id"`
	TotalCommission float64 `json:"total_commission"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 booking.ID.String(),
		OrderID:            booking.OrderID,
		ExperienceID:       booking.ExperienceID.String(),
		ExperienceName:     booking.ExperienceName,
		VendorID:           booking.VendorID.String(),
		GuestName:          booking.GuestName,
		GuestEmail:         booking.GuestEmail,
		BookingDate:        booking.BookingDate.Format(entity.BookingDateFormat),
		BookingTime:        booking.BookingTime,
		Guests:             booking.Guests,
		TotalAmount:        booking.TotalAmount,
		Currency:           booking.Currency,
		Status:             booking.Status,
		CancellationHours:  booking.EffectiveCancellationHours(),
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
	}

	if booking.HostID != nil {
		hostID := booking.HostID.String()
		resp.HostID = &hostID
	}

	return resp
}
