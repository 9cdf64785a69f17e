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

type VendorHandler struct {
	service usecase.VendorService
	log     *zap.Logger
}

func NewVendorHandler(service usecase.VendorService, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log.With(zap.String("handler", "vendor")),
	}
}

// CreateProfile handles POST /api/vendor/profile (vendor only)
func (h *VendorHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vendor, err := h.service.CreateProfile(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create vendor profile")
		return
	}

	utils.ResponseCreated(w, "success", vendor)
}

// GetMyProfile handles GET /api/vendor/profile (vendor only)
func (h *VendorHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	vendor, err := h.service.GetMyProfile(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get vendor profile")
		return
	}

	utils.ResponseSuccess(w, "success", vendor)
}

// UpdateProfile handles PUT /api/vendor/profile (vendor only)
func (h *VendorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vendor, err := h.service.UpdateProfile(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update vendor profile")
		return
	}

	utils.ResponseSuccess(w, "success", vendor)
}

// ListPublished handles GET /api/vendors (public)
func (h *VendorHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	vendors, err := h.service.ListPublished(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list vendors")
		return
	}

	utils.ResponseSuccess(w, "success", vendors)
}

// GetByID handles GET /api/vendors/{id} (public)
func (h *VendorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "id")
	if vendorID == "" {
		utils.ResponseBadRequest(w, "Vendor ID is required", nil)
		return
	}

	vendor, err := h.service.GetByID(r.Context(), vendorID)
	if err != nil {
		h.handleServiceError(w, err, "get vendor")
		return
	}

	utils.ResponseSuccess(w, "success", vendor)
}

// MyBookings handles GET /api/vendor/bookings (vendor only)
func (h *VendorHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
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
		h.handleServiceError(w, err, "get vendor bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func (h *VendorHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
