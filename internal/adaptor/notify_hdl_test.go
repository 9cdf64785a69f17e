package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stackbnb/internal/dto/request"
	"stackbnb/internal/dto/response"
	"stackbnb/pkg/middleware"
	"stackbnb/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubNotifyService struct {
	dispatch func(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error)
}

func (s *stubNotifyService) Dispatch(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
	return s.dispatch(ctx, req)
}

func TestNotifyHandler_Success(t *testing.T) {
	handler := NewNotifyHandler(&stubNotifyService{
		dispatch: func(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
			assert.Equal(t, "guest_confirmation", req.Type)
			return &response.NotifyResponse{Success: true, EmailID: "email-1"}, nil
		},
	}, zap.NewNop())

	body := `{"type":"guest_confirmation","guest_name":"Dana","guest_email":"dana@example.com","experience_name":"Sunset Kayak Tour","order_id":"STAY-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Notify(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Status)
}

func TestNotifyHandler_UnknownType(t *testing.T) {
	handler := NewNotifyHandler(&stubNotifyService{
		dispatch: func(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
			return nil, fmt.Errorf("unknown notification type: %s", req.Type)
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(`{"type":"bogus"}`))
	rec := httptest.NewRecorder()

	handler.Notify(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyHandler_ProviderFailure(t *testing.T) {
	handler := NewNotifyHandler(&stubNotifyService{
		dispatch: func(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
			return nil, fmt.Errorf("send guest_confirmation notification: provider down")
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader(`{"type":"guest_confirmation"}`))
	rec := httptest.NewRecorder()

	handler.Notify(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNotifyHandler_InvalidBody(t *testing.T) {
	handler := NewNotifyHandler(&stubNotifyService{
		dispatch: func(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
			t.Fatal("dispatch should not be called")
			return nil, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/notify", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Notify(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyCORSPreflight(t *testing.T) {
	var called bool
	wrapped := middleware.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/notify", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}
