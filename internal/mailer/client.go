// Package mailer is the client side of the order-notification endpoint.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gromart_back_end/internal/models"
)

// Client posts order payloads to POST /api/send-email. There is exactly one
// attempt per call: no retry, no idempotency key, a resubmitted order id
// sends a duplicate email.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client against baseURL (scheme://host[:port], no
// trailing slash). No timeout is set; a hung provider hangs the checkout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type sendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendOrder posts the payload once and reports whether the server accepted
// it. The server's error message is carried in the returned error.
func (c *Client) SendOrder(ctx context.Context, payload models.OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/send-email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send order email: %w", err)
	}
	defer resp.Body.Close()

	var decoded sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !decoded.Success {
		if decoded.Error == "" {
			decoded.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("order email rejected: %s", decoded.Error)
	}
	return nil
}
