package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingAt(date, clock string, status BookingStatus, windowHours int) *Booking {
	d, _ := time.Parse(BookingDateFormat, date)
	return &Booking{
		Base:              Base{ID: uuid.New()},
		BookingDate:       d,
		BookingTime:       clock,
		Status:            status,
		CancellationHours: windowHours,
	}
}

func TestCancellationEligible(t *testing.T) {
	now := time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		booking  *Booking
		eligible bool
	}{
		{
			name:     "well outside the window",
			booking:  bookingAt("2025-01-12", "18:00", BookingStatusConfirmed, 24),
			eligible: true,
		},
		{
			name: "exactly on the boundary",
			// 24h window, starts exactly 24h from now: still allowed
			booking:  bookingAt("2025-01-10", "18:00", BookingStatusConfirmed, 24),
			eligible: true,
		},
		{
			name:     "one minute inside the window",
			booking:  bookingAt("2025-01-10", "17:59", BookingStatusConfirmed, 24),
			eligible: false,
		},
		{
			name:     "booking already started",
			booking:  bookingAt("2025-01-09", "10:00", BookingStatusConfirmed, 24),
			eligible: false,
		},
		{
			name:     "wider vendor window",
			booking:  bookingAt("2025-01-11", "18:00", BookingStatusConfirmed, 72),
			eligible: false,
		},
		{
			name:     "pending bookings can cancel too",
			booking:  bookingAt("2025-01-12", "18:00", BookingStatusPending, 24),
			eligible: true,
		},
		{
			name:     "already cancelled",
			booking:  bookingAt("2025-01-12", "18:00", BookingStatusCancelled, 24),
			eligible: false,
		},
		{
			name:     "completed booking",
			booking:  bookingAt("2025-01-12", "18:00", BookingStatusCompleted, 24),
			eligible: false,
		},
		{
			name:     "missing time",
			booking:  bookingAt("2025-01-12", "", BookingStatusConfirmed, 24),
			eligible: false,
		},
		{
			name:     "unparseable time",
			booking:  bookingAt("2025-01-12", "6pm", BookingStatusConfirmed, 24),
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eligible, tt.booking.CancellationEligible(now))
		})
	}
}

func TestCancellationEligible_MissingDate(t *testing.T) {
	now := time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)

	b := &Booking{
		Base:        Base{ID: uuid.New()},
		BookingTime: "18:00",
		Status:      BookingStatusConfirmed,
	}

	assert.False(t, b.CancellationEligible(now))
}

func TestEffectiveCancellationHours_Default(t *testing.T) {
	b := bookingAt("2025-01-12", "18:00", BookingStatusConfirmed, 0)
	assert.Equal(t, DefaultCancellationHours, b.EffectiveCancellationHours())

	b.CancellationHours = 48
	assert.Equal(t, 48, b.EffectiveCancellationHours())
}

func TestHoursUntilStart(t *testing.T) {
	now := time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)

	b := bookingAt("2025-01-10", "06:00", BookingStatusConfirmed, 24)
	hours, err := b.HoursUntilStart(now)
	require.NoError(t, err)
	assert.InDelta(t, 12, hours, 0.001)

	past := bookingAt("2025-01-09", "06:00", BookingStatusConfirmed, 24)
	hours, err = past.HoursUntilStart(now)
	require.NoError(t, err)
	assert.InDelta(t, -12, hours, 0.001)
}

func TestCommissionAmount(t *testing.T) {
	hostID := uuid.New()

	b := bookingAt("2025-01-12", "18:00", BookingStatusConfirmed, 24)
	b.TotalAmount = 200
	b.CommissionRate = 12.5

	// No referring host, no commission
	assert.Equal(t, 0.0, b.CommissionAmount())

	b.HostID = &hostID
	assert.Equal(t, 25.0, b.CommissionAmount())
}

func TestPromoApply(t *testing.T) {
	promo := &PromoCode{
		Code:            "SUMMER10",
		HostID:          uuid.New(),
		DiscountPercent: 10,
		IsActive:        true,
	}

	assert.Equal(t, 90.0, promo.Apply(100))

	promo.IsActive = false
	assert.Equal(t, 100.0, promo.Apply(100))
}
