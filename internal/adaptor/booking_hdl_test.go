package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stackbnb/internal/dto/request"
	"stackbnb/internal/dto/response"
	"stackbnb/internal/usecase"
	"stackbnb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService embeds the interface so only the method under test
// needs a body.
type stubBookingService struct {
	usecase.BookingService

	cancel func(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error)
}

func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error) {
	return s.cancel(ctx, bookingID, req)
}

func cancelRequest(t *testing.T, handler *BookingHandler, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/bookings/{id}/cancel", handler.CancelBooking)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestCancelBookingHandler_SoftRejection(t *testing.T) {
	bookingID := uuid.New().String()

	handler := NewBookingHandler(&stubBookingService{
		cancel: func(ctx context.Context, id string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error) {
			assert.Equal(t, bookingID, id)
			return &response.CancelBookingResponse{
				Success: false,
				Message: "bookings can only be cancelled at least 24 hours in advance",
			}, nil
		},
	}, zap.NewNop())

	rec := cancelRequest(t, handler, bookingID, `{"reason":"too late"}`)

	// Business rejections are HTTP 200 with success=false in the payload
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var result response.CancelBookingResponse
	require.NoError(t, json.Unmarshal(data, &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "24 hours")
}

func TestCancelBookingHandler_EmptyBody(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{
		cancel: func(ctx context.Context, id string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error) {
			assert.Nil(t, req.Reason)
			return &response.CancelBookingResponse{Success: true}, nil
		},
	}, zap.NewNop())

	// The cancel body is optional
	rec := cancelRequest(t, handler, uuid.New().String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelBookingHandler_NotFound(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{
		cancel: func(ctx context.Context, id string, req *request.CancelBookingRequest) (*response.CancelBookingResponse, error) {
			return nil, assert.AnError
		},
	}, zap.NewNop())

	rec := cancelRequest(t, handler, uuid.New().String(), `{}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
