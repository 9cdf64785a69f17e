package usecase

import (
	"context"
	"fmt"
	"time"

	"stackbnb/internal/data/entity"
	"stackbnb/internal/data/repository"
	"stackbnb/internal/dto/request"
	"stackbnb/internal/dto/response"
	"stackbnb/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VendorService interface {
	CreateProfile(ctx context.Context, userID string, req *request.CreateVendorRequest) (*response.VendorResponse, error)
	GetMyProfile(ctx context.Context, userID string) (*response.VendorResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateVendorRequest) (*response.VendorResponse, error)
	GetByID(ctx context.Context, vendorID string) (*response.VendorResponse, error)
	ListPublished(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VendorResponse], error)
	MyBookings(ctx context.Context, userID string, req *request.PaginatedRequest) ([]response.BookingResponse, error)
}

type vendorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVendorService(repo *repository.Repository, log *zap.Logger) VendorService {
	return &vendorService{
		repo: repo,
		log:  log.With(zap.String("service", "vendor")),
	}
}

func (s *vendorService) CreateProfile(ctx context.Context, userID string, req *request.CreateVendorRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	existing, err := s.repo.Vendor.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to check vendor profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to check vendor profile")
	}
	if existing != nil {
		return nil, fmt.Errorf("vendor profile already exists")
	}

	cancellationHours := req.CancellationHours
	if cancellationHours <= 0 {
		cancellationHours = entity.DefaultCancellationHours
	}

	now := time.Now()
	vendor := &entity.VendorProfile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            userUUID,
		Name:              req.Name,
		ContactEmail:      req.ContactEmail,
		Description:       req.Description,
		CommissionRate:    req.CommissionRate,
		CancellationHours: cancellationHours,
		Published:         false,
	}

	if err := s.repo.Vendor.Create(ctx, vendor); err != nil {
		s.log.Error("Failed to create vendor profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("create vendor profile: %w", err)
	}

	s.log.Info("Vendor profile created",
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("user_id", userID),
		zap.String("name", vendor.Name))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) GetMyProfile(ctx context.Context, userID string) (*response.VendorResponse, error) {
	vendor, err := s.findVendorByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateVendorRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findVendorByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	vendor.Name = req.Name
	vendor.ContactEmail = req.ContactEmail
	vendor.Description = req.Description
	vendor.CommissionRate = req.CommissionRate
	vendor.CancellationHours = req.CancellationHours
	vendor.Published = req.Published
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update vendor profile",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("update vendor profile: %w", err)
	}

	s.log.Info("Vendor profile updated",
		zap.String("vendor_id", vendor.ID.String()),
		zap.Bool("published", vendor.Published))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) GetByID(ctx context.Context, vendorID string) (*response.VendorResponse, error) {
	id, err := uuid.Parse(vendorID)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor ID format %s: %w", vendorID, err)
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to find vendor")
	}
	if vendor == nil || !vendor.Published {
		return nil, fmt.Errorf("vendor %s not found", vendorID)
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) ListPublished(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VendorResponse], error) {
	vendors, err := s.repo.Vendor.FindPublished(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list published vendors", zap.Error(err))
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	total, err := s.repo.Vendor.CountPublished(ctx)
	if err != nil {
		s.log.Error("Failed to count published vendors", zap.Error(err))
		return nil, fmt.Errorf("count vendors: %w", err)
	}

	vendorResponses := make([]response.VendorResponse, len(vendors))
	for i, vendor := range vendors {
		vendorResponses[i] = response.VendorToResponse(vendor)
	}

	return response.NewPaginatedResponse(vendorResponses, req.Page, req.PerPage, total), nil
}

func (s *vendorService) MyBookings(ctx context.Context, userID string, req *request.PaginatedRequest) ([]response.BookingResponse, error) {
	vendor, err := s.findVendorByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByVendorID(ctx, vendor.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get vendor bookings",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("get vendor bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

func (s *vendorService) findVendorByUser(ctx context.Context, userID string) (*entity.VendorProfile, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	vendor, err := s.repo.Vendor.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to find vendor profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find vendor profile")
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor profile not found")
	}

	return vendor, nil
}
