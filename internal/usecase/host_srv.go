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
	"stackbnb/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HostService interface {
	CreatePromo(ctx context.Context, userID string, req *request.CreatePromoRequest) (*response.PromoResponse, error)
	ListPromos(ctx context.Context, userID string) ([]response.PromoResponse, error)
	DeactivatePromo(ctx context.Context, userID, promoID string) error
	CommissionSummary(ctx context.Context, userID string) (*response.CommissionSummaryResponse, error)
	MyBookings(ctx context.Context, userID string, req *request.PaginatedRequest) ([]response.BookingResponse, error)
}

type hostService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHostService(repo *repository.Repository, log *zap.Logger) HostService {
	return &hostService{
		repo: repo,
		log:  log.With(zap.String("service", "host")),
	}
}

func (s *hostService) CreatePromo(ctx context.Context, userID string, req *request.CreatePromoRequest) (*response.PromoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create promo validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hostUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	code := strings.ToUpper(req.Code)

	existing, err := s.repo.Promo.FindByCode(ctx, code)
	if err != nil {
		s.log.Error("Failed to check promo code", zap.Error(err), zap.String("code", code))
		return nil, fmt.Errorf("failed to check promo code")
	}
	if existing != nil {
		return nil, fmt.Errorf("promo code %s already exists", code)
	}

	now := time.Now()
	promo := &entity.PromoCode{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:            code,
		HostID:          hostUUID,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
	}

	if err := s.repo.Promo.Create(ctx, promo); err != nil {
		s.log.Error("Failed to create promo code",
			zap.Error(err),
			zap.String("code", code),
			zap.String("host_id", userID))
		return nil, fmt.Errorf("create promo code: %w", err)
	}

	s.log.Info("Promo code created",
		zap.String("promo_id", promo.ID.String()),
		zap.String("code", code),
		zap.String("host_id", userID))

	resp := response.PromoToResponse(promo)
	return &resp, nil
}

func (s *hostService) ListPromos(ctx context.Context, userID string) ([]response.PromoResponse, error) {
	hostUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	promos, err := s.repo.Promo.FindByHostID(ctx, hostUUID)
	if err != nil {
		s.log.Error("Failed to list promos", zap.Error(err), zap.String("host_id", userID))
		return nil, fmt.Errorf("list promo codes: %w", err)
	}

	promoResponses := make([]response.PromoResponse, len(promos))
	for i, promo := range promos {
		promoResponses[i] = response.PromoToResponse(promo)
	}

	return promoResponses, nil
}

func (s *hostService) DeactivatePromo(ctx context.Context, userID, promoID string) error {
	hostUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	id, err := uuid.Parse(promoID)
	if err != nil {
		return fmt.Errorf("invalid promo ID format %s: %w", promoID, err)
	}

	promos, err := s.repo.Promo.FindByHostID(ctx, hostUUID)
	if err != nil {
		s.log.Error("Failed to list promos", zap.Error(err), zap.String("host_id", userID))
		return fmt.Errorf("failed to find promo code")
	}

	var owned bool
	for _, promo := range promos {
		if promo.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return fmt.Errorf("promo code %s not found", promoID)
	}

	if err := s.repo.Promo.Deactivate(ctx, id); err != nil {
		s.log.Error("Failed to deactivate promo", zap.Error(err), zap.String("promo_id", promoID))
		return fmt.Errorf("deactivate promo code: %w", err)
	}

	s.log.Info("Promo code deactivated",
		zap.String("promo_id", promoID),
		zap.String("host_id", userID))

	return nil
}

func (s *hostService) CommissionSummary(ctx context.Context, userID string) (*response.CommissionSummaryResponse, error) {
	hostUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	total, err := s.repo.Booking.CommissionTotalByHostID(ctx, hostUUID)
	if err != nil {
		s.log.Error("Failed to sum commission", zap.Error(err), zap.String("host_id", userID))
		return nil, fmt.Errorf("commission summary: %w", err)
	}

	return &response.CommissionSummaryResponse{
		HostID:          userID,
		TotalCommission: total,
	}, nil
}

func (s *hostService) MyBookings(ctx context.Context, userID string, req *request.PaginatedRequest) ([]response.BookingResponse, error) {
	hostUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByHostID(ctx, hostUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get host bookings", zap.Error(err), zap.String("host_id", userID))
		return nil, fmt.Errorf("get host bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}
