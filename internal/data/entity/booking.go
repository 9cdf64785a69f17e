package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Time formats for booking date/time fields
const (
	BookingDateFormat = "2006-01-02"
	BookingTimeFormat = "15:04"
)

type Booking struct {
	Base
	OrderID        string        `db:"order_id"`
	ExperienceID   uuid.UUID     `db:"experience_id"`
	ExperienceName string        `db:"experience_name"`
	VendorID       uuid.UUID     `db:"vendor_id"`
	HostID         *uuid.UUID    `db:"host_id"`
	GuestName      string        `db:"guest_name"`
	GuestEmail     string        `db:"guest_email"`
	GuestPhone     *string       `db:"guest_phone"`
	BookingDate    time.Time     `db:"booking_date"`
	BookingTime    string        `db:"booking_time"`
	Guests         int           `db:"guests"`
	TotalAmount    float64       `db:"total_amount"`
	Currency       string        `db:"currency"`
	Status         BookingStatus `db:"status"`
	// Policy snapshot taken at creation so later vendor edits don't change
	// the terms of an existing booking.
	CancellationHours int     `db:"cancellation_hours"`
	CommissionRate    float64 `db:"commission_rate"`
	StripeSessionID   *string `db:"stripe_session_id"`

	CancellationReason *string    `db:"cancellation_reason"`
	CancelledAt        *time.Time `db:"cancelled_at"`
}

// StartAt combines the booking date and time into a single timestamp.
func (b *Booking) StartAt() (time.Time, error) {
	t, err := time.Parse(BookingTimeFormat, b.BookingTime)
	if err != nil {
		return time.Time{}, err
	}
	d := b.BookingDate
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location()), nil
}

// HoursUntilStart returns the number of hours between now and the booking
// start. Negative when the booking is already in the past.
func (b *Booking) HoursUntilStart(now time.Time) (float64, error) {
	start, err := b.StartAt()
	if err != nil {
		return 0, err
	}
	return start.Sub(now).Hours(), nil
}

// CanBeCancelled reports whether the status still permits cancellation.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsCancelled reports whether the booking reached the cancelled terminal state.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// EffectiveCancellationHours returns the snapshotted cancellation window,
// falling back to the 24h default when the snapshot is unset.
func (b *Booking) EffectiveCancellationHours() int {
	if b.CancellationHours <= 0 {
		return DefaultCancellationHours
	}
	return b.CancellationHours
}

// CancellationEligible applies the vendor's cancellation window: a booking
// may be cancelled iff the remaining lead time is at least the window.
// An exact boundary (remaining == window) is still eligible. Past bookings
// and bookings with an unparseable time are not.
func (b *Booking) CancellationEligible(now time.Time) bool {
	if !b.CanBeCancelled() {
		return false
	}
	if b.BookingTime == "" || b.BookingDate.IsZero() {
		return false
	}
	hours, err := b.HoursUntilStart(now)
	if err != nil {
		return false
	}
	return hours >= float64(b.EffectiveCancellationHours())
}

// CommissionAmount is the payout owed to the referring host.
func (b *Booking) CommissionAmount() float64 {
	if b.HostID == nil {
		return 0
	}
	return b.TotalAmount * b.CommissionRate / 100
}
