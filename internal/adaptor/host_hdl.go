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

type HostHandler struct {
	service usecase.HostService
	log     *zap.Logger
}

func NewHostHandler(service usecase.HostService, log *zap.Logger) *HostHandler {
	return &HostHandler{
		service: service,
		log:     log.With(zap.String("handler", "host")),
	}
}

// CreatePromo handles POST /api/host/promos (host only)
func (h *HostHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	promo, err := h.service.CreatePromo(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create promo")
		return
	}

	utils.ResponseCreated(w, "success", promo)
}

// ListPromos handles GET /api/host/promos (host only)
func (h *HostHandler) ListPromos(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	promos, err := h.service.ListPromos(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "list promos")
		return
	}

	utils.ResponseSuccess(w, "success", promos)
}

// DeactivatePromo handles DELETE /api/host/promos/{id} (host only)
func (h *HostHandler) DeactivatePromo(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	promoID := chi.URLParam(r, "id")
	if promoID == "" {
		utils.ResponseBadRequest(w, "Promo ID is required", nil)
		return
	}

	if err := h.service.DeactivatePromo(r.Context(), userID.String(), promoID); err != nil {
		h.handleServiceError(w, err, "deactivate promo")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CommissionSummary handles GET /api/host/commission (host only)
func (h *HostHandler) CommissionSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	summary, err := h.service.CommissionSummary(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "commission summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// MyBookings handles GET /api/host/bookings (host only)
func (h *HostHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.MyBookings(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "get host bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func (h *HostHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already exists"):
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
