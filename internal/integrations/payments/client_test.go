package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRefundSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/refunds", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req refundRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cs_test_123", req.SessionID)
		assert.Equal(t, "change of plans", req.Reason)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RefundResult{RefundID: "re_1", Status: "succeeded"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())

	result, err := client.RefundSession(context.Background(), "cs_test_123", "change of plans")

	require.NoError(t, err)
	assert.Equal(t, "re_1", result.RefundID)
	assert.Equal(t, "succeeded", result.Status)
}

func TestRefundSession_UnknownSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())

	_, err := client.RefundSession(context.Background(), "cs_missing", "whatever")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRefundSession_ProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"already refunded"}`, http.StatusConflict)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())

	_, err := client.RefundSession(context.Background(), "cs_test_123", "")

	assert.ErrorIs(t, err, ErrRefundFailed)
}
