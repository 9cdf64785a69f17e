package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"stackbnb/internal/dto/request"
	"stackbnb/internal/usecase"
	"stackbnb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExperienceHandler struct {
	service usecase.ExperienceService
	log     *zap.Logger
}

func NewExperienceHandler(service usecase.ExperienceService, log *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		service: service,
		log:     log.With(zap.String("handler", "experience")),
	}
}

// Create handles POST /api/vendor/experiences (vendor only)
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	exp, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create experience")
		return
	}

	utils.ResponseCreated(w, "success", exp)
}

// Update handles PUT /api/vendor/experiences/{id} (vendor only)
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	experienceID := chi.URLParam(r, "id")
	if experienceID == "" {
		utils.ResponseBadRequest(w, "Experience ID is required", nil)
		return
	}

	var req request.UpdateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	exp, err := h.service.Update(r.Context(), userID.String(), experienceID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update experience")
		return
	}

	utils.ResponseSuccess(w, "success", exp)
}

// Deactivate handles DELETE /api/vendor/experiences/{id} (vendor only)
func (h *ExperienceHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	experienceID := chi.URLParam(r, "id")
	if experienceID == "" {
		utils.ResponseBadRequest(w, "Experience ID is required", nil)
		return
	}

	if err := h.service.Deactivate(r.Context(), userID.String(), experienceID); err != nil {
		h.handleServiceError(w, err, "deactivate experience")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListMine handles GET /api/vendor/experiences (vendor only)
func (h *ExperienceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	experiences, err := h.service.ListMine(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "list vendor experiences")
		return
	}

	utils.ResponseSuccess(w, "success", experiences)
}

// ListPublished handles GET /api/experiences (public)
func (h *ExperienceHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	experiences, err := h.service.ListPublished(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list experiences")
		return
	}

	utils.ResponseSuccess(w, "success", experiences)
}

// GetByID handles GET /api/experiences/{id} (public)
func (h *ExperienceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	experienceID := chi.URLParam(r, "id")
	if experienceID == "" {
		utils.ResponseBadRequest(w, "Experience ID is required", nil)
		return
	}

	exp, err := h.service.GetByID(r.Context(), experienceID)
	if err != nil {
		h.handleServiceError(w, err, "get experience")
		return
	}

	utils.ResponseSuccess(w, "success", exp)
}

func (h *ExperienceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
