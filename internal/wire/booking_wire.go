package wire

import (
	"stackbnb/internal/adaptor"
	"stackbnb/internal/data/repository"
	"stackbnb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Booking endpoints are public: guests book and cancel with an email address
// and a booking reference, no account required. Cancellation is still gated
// server-side by the vendor's cancellation window.
func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.GuestBookings)
		r.Get("/order/{orderID}", bookingHandler.GetBookingByOrderID)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Post("/{id}/confirm", bookingHandler.ConfirmBooking)
		r.Get("/{id}/cancellation-eligibility", bookingHandler.CheckEligibility)
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
