package usecase

import (
	"context"
	"testing"
	"time"

	"stackbnb/internal/data/entity"
	"stackbnb/internal/data/repository"
	"stackbnb/internal/dto/request"
	"stackbnb/internal/integrations/payments"
	"stackbnb/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixedNow keeps the window math deterministic: all bookings in these tests
// are measured against this instant.
var fixedNow = time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)

type bookingTestDeps struct {
	bookings *mockBookingRepo
	vendors  *mockVendorRepo
	exps     *mockExperienceRepo
	users    *mockUserRepo
	promos   *mockPromoRepo
	notify   *recordingNotify
	refunder *mockRefunder
}

func newBookingServiceForTest(t *testing.T) (*bookingService, *bookingTestDeps) {
	t.Helper()

	deps := &bookingTestDeps{
		bookings: new(mockBookingRepo),
		vendors:  new(mockVendorRepo),
		exps:     new(mockExperienceRepo),
		users:    new(mockUserRepo),
		promos:   new(mockPromoRepo),
		notify:   new(recordingNotify),
		refunder: new(mockRefunder),
	}

	repo := &repository.Repository{
		Booking:    deps.bookings,
		Vendor:     deps.vendors,
		Experience: deps.exps,
		User:       deps.users,
		Promo:      deps.promos,
	}

	config := &utils.Config{
		Booking: utils.BookingConfig{DefaultCancellationHours: 24},
	}

	svc := NewBookingService(repo, deps.notify, deps.refunder, config, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return fixedNow }

	return svc, deps
}

func testBooking(startDate string, status entity.BookingStatus) *entity.Booking {
	date, _ := time.Parse(entity.BookingDateFormat, startDate)
	sessionID := "cs_test_123"

	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: fixedNow.Add(-48 * time.Hour),
			UpdatedAt: fixedNow.Add(-48 * time.Hour),
		},
		OrderID:           "STAY-20250107-120000-0001",
		ExperienceID:      uuid.New(),
		ExperienceName:    "Sunset Kayak Tour",
		VendorID:          uuid.New(),
		GuestName:         "Dana",
		GuestEmail:        "dana@example.com",
		BookingDate:       date,
		BookingTime:       "18:00",
		Guests:            2,
		TotalAmount:       150,
		Currency:          "USD",
		Status:            status,
		CancellationHours: 24,
		CommissionRate:    10,
		StripeSessionID:   &sessionID,
	}
}

func TestCancelBooking_Success(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	// 72 hours of lead time, well outside the 24h window
	booking := testBooking("2025-01-12", entity.BookingStatusConfirmed)
	vendor := &entity.VendorProfile{
		Base:         entity.Base{ID: booking.VendorID},
		Name:         "Bay Adventures",
		ContactEmail: "ops@bayadventures.example",
	}

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	deps.bookings.On("Cancel", mock.Anything, booking.ID, mock.Anything).Return(int64(1), nil)
	deps.vendors.On("FindByID", mock.Anything, booking.VendorID).Return(vendor, nil)
	deps.refunder.On("RefundSession", mock.Anything, "cs_test_123", mock.Anything).
		Return(&payments.RefundResult{RefundID: "re_1", Status: "succeeded"}, nil)

	reason := "change of plans"
	result, err := svc.CancelBooking(context.Background(), booking.ID.String(), &request.CancelBookingRequest{
		Reason:            &reason,
		GuestCancellation: true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Message)

	deps.bookings.AssertExpectations(t)
	deps.refunder.AssertExpectations(t)

	// Guest and vendor both get a cancellation email, asynchronously
	require.Eventually(t, func() bool {
		return len(deps.notify.sent()) == 2
	}, time.Second, 10*time.Millisecond)

	assert.ElementsMatch(t,
		[]string{"guest_cancellation", "vendor_cancellation"},
		deps.notify.sentTypes())

	for _, sent := range deps.notify.sent() {
		assert.Equal(t, booking.OrderID, sent.OrderID)
		assert.Equal(t, "change of plans", sent.Reason)
		assert.True(t, sent.GuestCancellation)
	}
}

func TestCancelBooking_VendorInitiated(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	booking := testBooking("2025-01-12", entity.BookingStatusConfirmed)
	vendor := &entity.VendorProfile{
		Base:         entity.Base{ID: booking.VendorID},
		Name:         "Bay Adventures",
		ContactEmail: "ops@bayadventures.example",
	}

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	deps.bookings.On("Cancel", mock.Anything, booking.ID, mock.Anything).Return(int64(1), nil)
	deps.vendors.On("FindByID", mock.Anything, booking.VendorID).Return(vendor, nil)
	deps.refunder.On("RefundSession", mock.Anything, "cs_test_123", mock.Anything).
		Return(&payments.RefundResult{RefundID: "re_2", Status: "succeeded"}, nil)

	result, err := svc.CancelBooking(context.Background(), booking.ID.String(), &request.CancelBookingRequest{
		GuestCancellation: false,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Eventually(t, func() bool {
		return len(deps.notify.sent()) == 2
	}, time.Second, 10*time.Millisecond)

	// Both emails must carry the initiator so the wording names the right party
	for _, sent := range deps.notify.sent() {
		assert.False(t, sent.GuestCancellation)
		assert.Equal(t, booking.TotalAmount, sent.TotalAmount)
	}
}

func TestCancelBooking_MissingID(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	result, err := svc.CancelBooking(context.Background(), "", &request.CancelBookingRequest{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "missing booking id", result.Message)

	// Nothing should be looked up or mutated
	deps.bookings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	deps.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	booking := testBooking("2025-01-12", entity.BookingStatusCancelled)
	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	result, err := svc.CancelBooking(context.Background(), booking.ID.String(), &request.CancelBookingRequest{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already cancelled")

	deps.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, deps.notify.sent())
}

func TestCancelBooking_InsideWindow(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	// Starts in 16 hours, inside the 24h window
	booking := testBooking("2025-01-10", entity.BookingStatusConfirmed)
	booking.BookingTime = "10:00"

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	result, err := svc.CancelBooking(context.Background(), booking.ID.String(), &request.CancelBookingRequest{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "24 hours")

	deps.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	deps.refunder.AssertNotCalled(t, "RefundSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_ConcurrentLoser(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	booking := testBooking("2025-01-12", entity.BookingStatusConfirmed)

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	// Another request already flipped the row
	deps.bookings.On("Cancel", mock.Anything, booking.ID, mock.Anything).Return(int64(0), nil)

	result, err := svc.CancelBooking(context.Background(), booking.ID.String(), &request.CancelBookingRequest{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "already cancelled")

	// The loser must not refund or email
	deps.refunder.AssertNotCalled(t, "RefundSession", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, deps.notify.sent())
}

func TestCheckCancellationEligibility_ExactBoundary(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	// Starts exactly 24 hours from fixedNow: still eligible
	booking := testBooking("2025-01-10", entity.BookingStatusConfirmed)

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	eligibility, err := svc.CheckCancellationEligibility(context.Background(), booking.ID.String())

	require.NoError(t, err)
	assert.True(t, eligibility.Eligible)
	assert.InDelta(t, 24, eligibility.HoursUntilBooking, 0.01)
	assert.Equal(t, 24, eligibility.CancellationHours)
}

func TestCheckCancellationEligibility_PastBooking(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	booking := testBooking("2025-01-08", entity.BookingStatusConfirmed)

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	eligibility, err := svc.CheckCancellationEligibility(context.Background(), booking.ID.String())

	require.NoError(t, err)
	assert.False(t, eligibility.Eligible)
	assert.Less(t, eligibility.HoursUntilBooking, 0.0)
}

func TestCreateBooking_SnapshotsVendorPolicy(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	vendorID := uuid.New()
	expID := uuid.New()

	exp := &entity.Experience{
		Base:      entity.Base{ID: expID},
		VendorID:  vendorID,
		Name:      "Sunset Kayak Tour",
		Price:     75,
		Currency:  "USD",
		MaxGuests: 8,
		IsActive:  true,
	}
	vendor := &entity.VendorProfile{
		Base:              entity.Base{ID: vendorID},
		Name:              "Bay Adventures",
		ContactEmail:      "ops@bayadventures.example",
		CommissionRate:    12.5,
		CancellationHours: 48,
		Published:         true,
	}

	deps.exps.On("FindByID", mock.Anything, expID).Return(exp, nil)
	deps.vendors.On("FindByID", mock.Anything, vendorID).Return(vendor, nil)

	var created *entity.Booking
	deps.bookings.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).
		Return(nil)

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		ExperienceID: expID.String(),
		GuestName:    "Dana",
		GuestEmail:   "dana@example.com",
		BookingDate:  "2025-02-01",
		BookingTime:  "10:00",
		Guests:       2,
	})

	require.NoError(t, err)
	require.NotNil(t, created)

	// Vendor terms are frozen on the booking row
	assert.Equal(t, 48, created.CancellationHours)
	assert.Equal(t, 12.5, created.CommissionRate)
	assert.Equal(t, 150.0, created.TotalAmount)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, "Sunset Kayak Tour", created.ExperienceName)

	assert.Equal(t, 48, resp.CancellationHours)

	// Operations inbox is notified of every new booking
	require.Eventually(t, func() bool {
		return len(deps.notify.sent()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "booking", deps.notify.sent()[0].Type)
}

func TestCreateBooking_PromoAttributesHost(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	vendorID := uuid.New()
	expID := uuid.New()
	hostID := uuid.New()

	exp := &entity.Experience{
		Base:      entity.Base{ID: expID},
		VendorID:  vendorID,
		Name:      "Sunset Kayak Tour",
		Price:     100,
		Currency:  "USD",
		MaxGuests: 8,
		IsActive:  true,
	}
	vendor := &entity.VendorProfile{
		Base:           entity.Base{ID: vendorID},
		Name:           "Bay Adventures",
		ContactEmail:   "ops@bayadventures.example",
		CommissionRate: 10,
		Published:      true,
	}
	promo := &entity.PromoCode{
		Base:            entity.Base{ID: uuid.New()},
		Code:            "SUMMER10",
		HostID:          hostID,
		DiscountPercent: 10,
		IsActive:        true,
	}
	host := &entity.User{
		Base:     entity.Base{ID: hostID},
		Username: "harper",
		Email:    "harper@example.com",
		Role:     entity.RoleHost,
	}

	deps.exps.On("FindByID", mock.Anything, expID).Return(exp, nil)
	deps.vendors.On("FindByID", mock.Anything, vendorID).Return(vendor, nil)
	deps.promos.On("FindByCode", mock.Anything, "SUMMER10").Return(promo, nil)
	deps.users.On("FindByID", mock.Anything, hostID).Return(host, nil)

	var created *entity.Booking
	deps.bookings.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).
		Return(nil)

	code := "summer10"
	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		ExperienceID: expID.String(),
		GuestName:    "Dana",
		GuestEmail:   "dana@example.com",
		BookingDate:  "2025-02-01",
		BookingTime:  "10:00",
		Guests:       1,
		PromoCode:    &code,
	})

	require.NoError(t, err)
	require.NotNil(t, created)

	// 10% off and the booking is attributed to the code's owner
	assert.Equal(t, 90.0, created.TotalAmount)
	require.NotNil(t, created.HostID)
	assert.Equal(t, hostID, *created.HostID)
	assert.Equal(t, 9.0, created.CommissionAmount())

	require.Eventually(t, func() bool {
		return len(deps.notify.sent()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"booking", "promo_used"}, deps.notify.sentTypes())
}

func TestConfirmBooking_FansOut(t *testing.T) {
	svc, deps := newBookingServiceForTest(t)

	hostID := uuid.New()
	booking := testBooking("2025-01-12", entity.BookingStatusPending)
	booking.HostID = &hostID

	vendor := &entity.VendorProfile{
		Base:         entity.Base{ID: booking.VendorID},
		Name:         "Bay Adventures",
		ContactEmail: "ops@bayadventures.example",
	}
	host := &entity.User{
		Base:     entity.Base{ID: hostID},
		Username: "harper",
		Email:    "harper@example.com",
		Role:     entity.RoleHost,
	}

	deps.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	deps.bookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusConfirmed).Return(nil)
	deps.vendors.On("FindByID", mock.Anything, booking.VendorID).Return(vendor, nil)
	deps.users.On("FindByID", mock.Anything, hostID).Return(host, nil)

	resp, err := svc.ConfirmBooking(context.Background(), booking.ID.String())

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

	require.Eventually(t, func() bool {
		return len(deps.notify.sent()) == 3
	}, time.Second, 10*time.Millisecond)

	assert.ElementsMatch(t,
		[]string{"guest_confirmation", "vendor_booking", "host_commission"},
		deps.notify.sentTypes())

	for _, sent := range deps.notify.sent() {
		if sent.Type == "host_commission" {
			// 10% of 150
			assert.Equal(t, 15.0, sent.CommissionAmount)
		}
	}
}
