package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"stackbnb/internal/dto/request"
	"stackbnb/internal/usecase"
	"stackbnb/pkg/utils"

	"go.uber.org/zap"
)

type NotifyHandler struct {
	service usecase.NotifyService
	log     *zap.Logger
}

func NewNotifyHandler(service usecase.NotifyService, log *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		service: service,
		log:     log.With(zap.String("handler", "notify")),
	}
}

// Notify handles POST /api/notify (public, CORS open). One request dispatches
// exactly one email of the requested type.
func (h *NotifyHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req request.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Dispatch(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

func (h *NotifyHandler) handleServiceError(w http.ResponseWriter, err error) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "unknown notification type"),
		strings.Contains(errMsg, "missing required fields"),
		strings.Contains(errMsg, "validation failed"):
		h.log.Warn("Notification rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		// Provider failures surface as 500 so callers can retry
		h.log.Error("Notification dispatch failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send notification")
	}
}
