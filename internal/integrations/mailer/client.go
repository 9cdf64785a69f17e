package mailer

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

// Client talks to the transactional email provider's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL, apiKey, fromName, fromAddress string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    fmt.Sprintf("%s <%s>", fromName, fromAddress),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("integration", "mailer")),
	}
}

// Send dispatches a single HTML email through the provider.
func (c *Client) Send(ctx context.Context, to, subject, html string) (*SendResponse, error) {
	payload := SendRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrSendFailed, err)
	}

	url := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrSendFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Email provider request failed",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Email provider rejected send",
			zap.Int("status", resp.StatusCode),
			zap.String("to", to),
			zap.String("body", string(respBody)),
		)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	var sendResp SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Email dispatched",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("provider_id", sendResp.ID),
	)

	return &sendResp, nil
}
