package mailer

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

func TestSend(t *testing.T) {
	var received SendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SendResponse{ID: "email-123"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "Stackbnb", "no-reply@stackbnb.example", 5*time.Second, zap.NewNop())

	resp, err := client.Send(context.Background(), "dana@example.com", "Booking confirmed", "<p>hi</p>")

	require.NoError(t, err)
	assert.Equal(t, "email-123", resp.ID)

	assert.Equal(t, "Stackbnb <no-reply@stackbnb.example>", received.From)
	assert.Equal(t, "dana@example.com", received.To)
	assert.Equal(t, "Booking confirmed", received.Subject)
	assert.Equal(t, "<p>hi</p>", received.HTML)
}

func TestSend_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid recipient"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "Stackbnb", "no-reply@stackbnb.example", 5*time.Second, zap.NewNop())

	_, err := client.Send(context.Background(), "nope", "subject", "<p>hi</p>")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSend_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "Stackbnb", "no-reply@stackbnb.example", 5*time.Second, zap.NewNop())

	_, err := client.Send(context.Background(), "dana@example.com", "subject", "<p>hi</p>")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
