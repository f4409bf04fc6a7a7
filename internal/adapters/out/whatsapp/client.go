// Package whatsapp provides the HTTP client for the WhatsApp message gateway.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ordernotify/internal/core/ports"
	"ordernotify/internal/pkg/errs"
)

// DefaultRequestTimeout bounds a single gateway request. The send pipeline
// applies its own deadline on top; this is the floor for callers that do not.
const DefaultRequestTimeout = 15 * time.Second

// Client sends customer messages through the WhatsApp gateway. Implements
// ports.NotificationSender.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a gateway client. The API key is sent as a bearer token
// on every request.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("gateway base url")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("gateway base url", err)
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}, nil
}

type sendRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

// Send delivers one message. A gateway-side rejection (4xx/5xx or an error
// body) is reported as a failed SendResult, not a Go error: the caller records
// it on the order. Only transport-level problems surface as errors.
func (c *Client) Send(ctx context.Context, phoneNumber, text string) (ports.SendResult, error) {
	if phoneNumber == "" {
		return ports.SendResult{}, errs.NewValueIsRequiredError("phone number")
	}
	if text == "" {
		return ports.SendResult{}, errs.NewValueIsRequiredError("message text")
	}

	body, err := json.Marshal(sendRequest{Phone: phoneNumber, Text: text})
	if err != nil {
		return ports.SendResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return ports.SendResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.SendResult{}, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return ports.SendResult{}, err
	}

	var decoded sendResponse
	if unmarshalErr := json.Unmarshal(payload, &decoded); unmarshalErr != nil {
		decoded = sendResponse{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := decoded.Error
		if reason == "" {
			reason = strings.TrimSpace(string(payload))
		}
		return ports.SendResult{
			Succeeded:        false,
			ProviderResponse: fmt.Sprintf("gateway status %d: %s", resp.StatusCode, reason),
		}, nil
	}
	if decoded.Error != "" {
		return ports.SendResult{Succeeded: false, ProviderResponse: decoded.Error}, nil
	}

	return ports.SendResult{Succeeded: true, ProviderResponse: decoded.MessageID}, nil
}
