package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to the payment processor's HTTP API. Only refund issuance is
// needed here; checkout itself happens on the client side.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("integration", "payments")),
	}
}

type refundRequest struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason,omitempty"`
}

// RefundResult echoes the processor's refund record.
type RefundResult struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}

// RefundSession issues a full refund for a checkout session.
func (c *Client) RefundSession(ctx context.Context, sessionID, reason string) (*RefundResult, error) {
	payload := refundRequest{
		SessionID: sessionID,
		Reason:    reason,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrRefundFailed, err)
	}

	url := c.baseURL + "/refunds"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRefundFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Refund request failed",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return nil, fmt.Errorf("%w: %v", ErrRefundFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Fall through to decode
	case http.StatusNotFound:
		return nil, ErrSessionNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Refund rejected by processor",
			zap.Int("status", resp.StatusCode),
			zap.String("session_id", sessionID),
			zap.String("body", string(respBody)),
		)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrRefundFailed, resp.StatusCode, string(respBody))
	}

	var result RefundResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrRefundFailed, err)
	}

	c.log.Info("Refund issued",
		zap.String("session_id", sessionID),
		zap.String("refund_id", result.RefundID),
		zap.String("status", result.Status),
	)

	return &result, nil
}
