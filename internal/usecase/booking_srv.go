package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stackbnb/internal/data/entity"
	"stackbnb/internal/data/repository"
	"stackbnb/internal/dto/request"
	"stackbnb/internal/dto/response"
	"stackbnb/internal/integrations/payments"
	"stackbnb/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Refunder is the slice of the payment provider client the booking flow needs.
type Refunder interface {
	RefundSession(ctx context.Context, sessionID, reason string) (*payments.RefundResult, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingByOrderID(ctx context.Context, orderID string) (*response.BookingResponse, error)
	GuestBookings(ctx context.Context, email string, req *request.PaginatedRequest) ([]response.BookingResponse, error)

	CheckCancellationEligibility(ctx context.Context, bookingID string) (*response.EligibilityResponse, error)
	CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notify   NotifyService
	payments Refunder
	config   *utils.Config
	log      *zap.Logger

	// now is swappable so time-window logic can be pinned in tests
	now func() time.Time
}

func NewBookingService(
	repo *repository.Repository,
	notify NotifyService,
	refunder Refunder,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		notify:   notify,
		payments: refunder,
		config:   config,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	experienceID, err := uuid.Parse(req.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("invalid experience ID format %s: %w", req.ExperienceID, err)
	}

	exp, err := s.repo.Experience.FindByID(ctx, experienceID)
	if err != nil || exp == nil {
		return nil, fmt.Errorf("experience %s not found", req.ExperienceID)
	}
	if !exp.IsActive {
		return nil, fmt.Errorf("experience %s is not available", req.ExperienceID)
	}
	if req.Guests > exp.MaxGuests {
		return nil, fmt.Errorf("experience allows at most %d guests", exp.MaxGuests)
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, exp.VendorID)
	if err != nil || vendor == nil {
		return nil, fmt.Errorf("vendor not found for experience")
	}
	if !vendor.Published {
		return nil, fmt.Errorf("experience %s is not available", req.ExperienceID)
	}

	bookingDate, err := time.Parse(entity.BookingDateFormat, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %s: %w", req.BookingDate, err)
	}

	totalAmount := exp.Price * float64(req.Guests)

	// Resolve the referral chain: an explicit host wins, otherwise a valid
	// promo code attributes the booking to the code's owner.
	var hostID *uuid.UUID
	if req.HostID != nil {
		id, err := uuid.Parse(*req.HostID)
		if err != nil {
			return nil, fmt.Errorf("invalid host ID format %s: %w", *req.HostID, err)
		}
		hostID = &id
	}

	var promo *entity.PromoCode
	if req.PromoCode != nil && *req.PromoCode != "" {
		promo, err = s.repo.Promo.FindByCode(ctx, strings.ToUpper(*req.PromoCode))
		if err != nil {
			s.log.Error("Failed to look up promo code", zap.Error(err), zap.String("code", *req.PromoCode))
			return nil, fmt.Errorf("failed to look up promo code")
		}
		if promo == nil || !promo.IsActive {
			return nil, fmt.Errorf("promo code %s is not valid", *req.PromoCode)
		}

		totalAmount = promo.Apply(totalAmount)
		if hostID == nil {
			hostID = &promo.HostID
		}
	}

	cancellationHours := vendor.CancellationHours
	if cancellationHours <= 0 {
		cancellationHours = s.config.Booking.DefaultCancellationHours
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:           utils.GenerateOrderID(),
		ExperienceID:      exp.ID,
		ExperienceName:    exp.Name,
		VendorID:          vendor.ID,
		HostID:            hostID,
		GuestName:         req.GuestName,
		GuestEmail:        req.GuestEmail,
		GuestPhone:        req.GuestPhone,
		BookingDate:       bookingDate,
		BookingTime:       req.BookingTime,
		Guests:            req.Guests,
		TotalAmount:       totalAmount,
		Currency:          exp.Currency,
		Status:            entity.BookingStatusPending,
		CancellationHours: cancellationHours,
		CommissionRate:    vendor.CommissionRate,
		StripeSessionID:   req.StripeSessionID,
	}

	start, err := booking.StartAt()
	if err != nil {
		return nil, fmt.Errorf("invalid booking time %s: %w", req.BookingTime, err)
	}
	if start.Before(now) {
		return nil, fmt.Errorf("cannot book a past date")
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("experience_id", req.ExperienceID),
			zap.String("guest_email", req.GuestEmail),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("experience_id", exp.ID.String()),
		zap.Int("guests", req.Guests),
		zap.Float64("total_amount", totalAmount),
	)

	// Operations gets a copy of every new booking
	s.dispatchAsync(&request.NotifyRequest{
		Type:           string(NotificationBooking),
		GuestName:      booking.GuestName,
		GuestEmail:     booking.GuestEmail,
		ExperienceName: booking.ExperienceName,
		OrderID:        booking.OrderID,
		BookingDate:    req.BookingDate,
		BookingTime:    req.BookingTime,
		Guests:         booking.Guests,
		TotalAmount:    booking.TotalAmount,
		Currency:       booking.Currency,
	})

	if promo != nil {
		s.notifyPromoUsed(ctx, promo, booking)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking status is %s, cannot confirm", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}
	booking.Status = entity.BookingStatusConfirmed

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID),
	)

	s.fanOutConfirmation(ctx, booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByOrderID(ctx context.Context, orderID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByOrderID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", orderID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GuestBookings(ctx context.Context, email string, req *request.PaginatedRequest) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByGuestEmail(ctx, email, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get guest bookings", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("get guest bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

// CheckCancellationEligibility is advisory: the frontend uses it to decide
// whether to show the cancel button. The same window math runs again inside
// CancelBooking, so a stale answer here can never force a cancellation
// through.
func (s *bookingService) CheckCancellationEligibility(ctx context.Context, bookingID string) (*response.EligibilityResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	now := s.now()
	hours, err := booking.HoursUntilStart(now)
	if err != nil {
		hours = 0
	}

	return &response.EligibilityResponse{
		Eligible:          booking.CancellationEligible(now),
		HoursUntilBooking: hours,
		CancellationHours: booking.EffectiveCancellationHours(),
	}, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error) {
	// A missing ID short-circuits before any lookup
	if bookingID == "" {
		return &response.CancelBookingResponse{
			Success: false,
			Message: "missing booking id",
		}, nil
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cancel booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return &response.CancelBookingResponse{
			Success: false,
			Message: "invalid booking id",
		}, nil
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.IsCancelled() {
		return &response.CancelBookingResponse{
			Success: false,
			Message: "booking is already cancelled",
		}, nil
	}
	if !booking.CanBeCancelled() {
		return &response.CancelBookingResponse{
			Success: false,
			Message: fmt.Sprintf("booking status is %s, cannot cancel", booking.Status),
		}, nil
	}

	now := s.now()
	if !booking.CancellationEligible(now) {
		window := booking.EffectiveCancellationHours()
		s.log.Info("Cancellation rejected by window",
			zap.String("booking_id", bookingID),
			zap.Int("cancellation_hours", window),
		)
		return &response.CancelBookingResponse{
			Success: false,
			Message: fmt.Sprintf("bookings can only be cancelled at least %d hours in advance", window),
		}, nil
	}

	// Conditional UPDATE: only one of any concurrent cancel attempts
	// observes a row change, the rest land here with affected == 0.
	affected, err := s.repo.Booking.Cancel(ctx, booking.ID, req.Reason)
	if err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}
	if affected == 0 {
		return &response.CancelBookingResponse{
			Success: false,
			Message: "booking is already cancelled",
		}, nil
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID),
		zap.Bool("guest_cancellation", req.GuestCancellation),
	)

	s.refundBooking(ctx, booking, req.Reason)
	s.fanOutCancellation(ctx, booking, req)

	return &response.CancelBookingResponse{Success: true}, nil
}

// refundBooking refunds the payment session when one exists. A provider
// failure is logged for manual follow-up, it does not unwind the
// cancellation.
func (s *bookingService) refundBooking(ctx context.Context, booking *entity.Booking, reason *string) {
	if booking.StripeSessionID == nil || *booking.StripeSessionID == "" {
		return
	}

	refundReason := "booking cancelled"
	if reason != nil && *reason != "" {
		refundReason = *reason
	}

	result, err := s.payments.RefundSession(ctx, *booking.StripeSessionID, refundReason)
	if err != nil {
		s.log.Error("Refund failed, needs manual follow-up",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("order_id", booking.OrderID),
			zap.String("session_id", *booking.StripeSessionID),
		)
		return
	}

	s.log.Info("Refund issued",
		zap.String("booking_id", booking.ID.String()),
		zap.String("refund_id", result.RefundID),
		zap.String("refund_status", result.Status),
	)
}

func (s *bookingService) fanOutCancellation(ctx context.Context, booking *entity.Booking, req *request.CancelBookingRequest) {
	base := request.NotifyRequest{
		GuestName:         booking.GuestName,
		GuestEmail:        booking.GuestEmail,
		ExperienceName:    booking.ExperienceName,
		OrderID:           booking.OrderID,
		BookingDate:       booking.BookingDate.Format(entity.BookingDateFormat),
		BookingTime:       booking.BookingTime,
		Guests:            booking.Guests,
		TotalAmount:       booking.TotalAmount,
		Currency:          booking.Currency,
		GuestCancellation: req.GuestCancellation,
	}
	if req.Reason != nil {
		base.Reason = *req.Reason
	}

	guestReq := base
	guestReq.Type = string(NotificationGuestCancellation)
	s.dispatchAsync(&guestReq)

	vendor, err := s.repo.Vendor.FindByID(ctx, booking.VendorID)
	if err != nil || vendor == nil {
		s.log.Error("Vendor lookup failed for cancellation email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("vendor_id", booking.VendorID.String()),
		)
		return
	}

	vendorReq := base
	vendorReq.Type = string(NotificationVendorCancellation)
	vendorReq.VendorName = vendor.Name
	vendorReq.VendorEmail = vendor.ContactEmail
	s.dispatchAsync(&vendorReq)
}

func (s *bookingService) fanOutConfirmation(ctx context.Context, booking *entity.Booking) {
	base := request.NotifyRequest{
		GuestName:      booking.GuestName,
		GuestEmail:     booking.GuestEmail,
		ExperienceName: booking.ExperienceName,
		OrderID:        booking.OrderID,
		BookingDate:    booking.BookingDate.Format(entity.BookingDateFormat),
		BookingTime:    booking.BookingTime,
		Guests:         booking.Guests,
		TotalAmount:    booking.TotalAmount,
		Currency:       booking.Currency,
	}

	guestReq := base
	guestReq.Type = string(NotificationGuestConfirmation)
	s.dispatchAsync(&guestReq)

	if vendor, err := s.repo.Vendor.FindByID(ctx, booking.VendorID); err == nil && vendor != nil {
		vendorReq := base
		vendorReq.Type = string(NotificationVendorBooking)
		vendorReq.VendorName = vendor.Name
		vendorReq.VendorEmail = vendor.ContactEmail
		s.dispatchAsync(&vendorReq)
	} else {
		s.log.Error("Vendor lookup failed for confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	if booking.HostID == nil {
		return
	}

	host, err := s.repo.User.FindByID(ctx, *booking.HostID)
	if err != nil || host == nil {
		s.log.Error("Host lookup failed for commission email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("host_id", booking.HostID.String()),
		)
		return
	}

	hostReq := base
	hostReq.Type = string(NotificationHostCommission)
	hostReq.HostName = host.Username
	hostReq.HostEmail = host.Email
	hostReq.CommissionAmount = booking.CommissionAmount()
	s.dispatchAsync(&hostReq)
}

func (s *bookingService) notifyPromoUsed(ctx context.Context, promo *entity.PromoCode, booking *entity.Booking) {
	host, err := s.repo.User.FindByID(ctx, promo.HostID)
	if err != nil || host == nil {
		s.log.Error("Host lookup failed for promo email",
			zap.Error(err),
			zap.String("promo_id", promo.ID.String()),
			zap.String("host_id", promo.HostID.String()),
		)
		return
	}

	s.dispatchAsync(&request.NotifyRequest{
		Type:           string(NotificationPromoUsed),
		HostName:       host.Username,
		HostEmail:      host.Email,
		PromoCode:      promo.Code,
		OrderID:        booking.OrderID,
		ExperienceName: booking.ExperienceName,
	})
}

// dispatchAsync sends a notification without blocking the request. Failures
// are logged inside the dispatcher; a lost email never fails the booking
// operation that triggered it.
func (s *bookingService) dispatchAsync(req *request.NotifyRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.notify.Dispatch(ctx, req); err != nil {
			s.log.Warn("Notification dispatch failed",
				zap.Error(err),
				zap.String("type", req.Type),
				zap.String("order_id", req.OrderID),
			)
		}
	}()
}
