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

type ExperienceService interface {
	Create(ctx context.Context, userID string, req *request.CreateExperienceRequest) (*response.ExperienceResponse, error)
	Update(ctx context.Context, userID, experienceID string, req *request.UpdateExperienceRequest) (*response.ExperienceResponse, error)
	Deactivate(ctx context.Context, userID, experienceID string) error
	GetByID(ctx context.Context, experienceID string) (*response.ExperienceResponse, error)
	ListPublished(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ExperienceResponse], error)
	ListMine(ctx context.Context, userID string) ([]response.ExperienceResponse, error)
}

type experienceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewExperienceService(repo *repository.Repository, log *zap.Logger) ExperienceService {
	return &experienceService{
		repo: repo,
		log:  log.With(zap.String("service", "experience")),
	}
}

func (s *experienceService) Create(ctx context.Context, userID string, req *request.CreateExperienceRequest) (*response.ExperienceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create experience validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.vendorForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	exp := &entity.Experience{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VendorID:        vendor.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Currency:        req.Currency,
		DurationMinutes: req.DurationMinutes,
		MaxGuests:       req.MaxGuests,
		IsActive:        true,
	}

	if err := s.repo.Experience.Create(ctx, exp); err != nil {
		s.log.Error("Failed to create experience",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.log.Info("Experience created",
		zap.String("experience_id", exp.ID.String()),
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("name", exp.Name))

	resp := response.ExperienceToResponse(exp)
	return &resp, nil
}

func (s *experienceService) Update(ctx context.Context, userID, experienceID string, req *request.UpdateExperienceRequest) (*response.ExperienceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update experience validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	exp, err := s.ownedExperience(ctx, userID, experienceID)
	if err != nil {
		return nil, err
	}

	exp.Name = req.Name
	exp.Description = req.Description
	exp.Price = req.Price
	exp.Currency = req.Currency
	exp.DurationMinutes = req.DurationMinutes
	exp.MaxGuests = req.MaxGuests
	exp.IsActive = req.IsActive
	exp.UpdatedAt = time.Now()

	if err := s.repo.Experience.Update(ctx, exp); err != nil {
		s.log.Error("Failed to update experience",
			zap.Error(err),
			zap.String("experience_id", experienceID))
		return nil, fmt.Errorf("update experience: %w", err)
	}

	s.log.Info("Experience updated", zap.String("experience_id", experienceID))

	resp := response.ExperienceToResponse(exp)
	return &resp, nil
}

func (s *experienceService) Deactivate(ctx context.Context, userID, experienceID string) error {
	exp, err := s.ownedExperience(ctx, userID, experienceID)
	if err != nil {
		return err
	}

	if err := s.repo.Experience.Deactivate(ctx, exp.ID); err != nil {
		s.log.Error("Failed to deactivate experience",
			zap.Error(err),
			zap.String("experience_id", experienceID))
		return fmt.Errorf("deactivate experience: %w", err)
	}

	s.log.Info("Experience deactivated", zap.String("experience_id", experienceID))
	return nil
}

func (s *experienceService) GetByID(ctx context.Context, experienceID string) (*response.ExperienceResponse, error) {
	id, err := uuid.Parse(experienceID)
	if err != nil {
		return nil, fmt.Errorf("invalid experience ID format %s: %w", experienceID, err)
	}

	exp, err := s.repo.Experience.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find experience", zap.Error(err), zap.String("experience_id", experienceID))
		return nil, fmt.Errorf("failed to find experience")
	}
	if exp == nil {
		return nil, fmt.Errorf("experience %s not found", experienceID)
	}

	resp := response.ExperienceToResponse(exp)
	return &resp, nil
}

func (s *experienceService) ListPublished(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ExperienceResponse], error) {
	experiences, err := s.repo.Experience.FindPublished(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list published experiences", zap.Error(err))
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	total, err := s.repo.Experience.CountPublished(ctx)
	if err != nil {
		s.log.Error("Failed to count published experiences", zap.Error(err))
		return nil, fmt.Errorf("count experiences: %w", err)
	}

	expResponses := make([]response.ExperienceResponse, len(experiences))
	for i, exp := range experiences {
		expResponses[i] = response.ExperienceToResponse(exp)
	}

	return response.NewPaginatedResponse(expResponses, req.Page, req.PerPage, total), nil
}

func (s *experienceService) ListMine(ctx context.Context, userID string) ([]response.ExperienceResponse, error) {
	vendor, err := s.vendorForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	experiences, err := s.repo.Experience.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to list vendor experiences",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("list vendor experiences: %w", err)
	}

	expResponses := make([]response.ExperienceResponse, len(experiences))
	for i, exp := range experiences {
		expResponses[i] = response.ExperienceToResponse(exp)
	}

	return expResponses, nil
}

func (s *experienceService) vendorForUser(ctx context.Context, userID string) (*entity.VendorProfile, error) {
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

func (s *experienceService) ownedExperience(ctx context.Context, userID, experienceID string) (*entity.Experience, error) {
	id, err := uuid.Parse(experienceID)
	if err != nil {
		return nil, fmt.Errorf("invalid experience ID format %s: %w", experienceID, err)
	}

	vendor, err := s.vendorForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp, err := s.repo.Experience.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find experience", zap.Error(err), zap.String("experience_id", experienceID))
		return nil, fmt.Errorf("failed to find experience")
	}
	if exp == nil {
		return nil, fmt.Errorf("experience %s not found", experienceID)
	}

	if exp.VendorID != vendor.ID {
		return nil, fmt.Errorf("unauthorized to manage this experience")
	}

	return exp, nil
}
