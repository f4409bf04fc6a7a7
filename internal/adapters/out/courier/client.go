// Package courier provides the HTTP client for the courier tracking feed.
// It adapts the feed's per-consignment event list to the one-successor-per-call
// contract the reconciliation service expects.
package courier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/services"
	"ordernotify/internal/pkg/errs"
)

// DefaultRequestTimeout bounds a single feed request.
const DefaultRequestTimeout = 10 * time.Second

// Client fetches courier status events over HTTP. Implements the
// CourierEventSource contract used by the reconciler.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a feed client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("courier feed base url")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier feed base url", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}, nil
}

// trackingEvent is the feed's wire representation of one status line.
type trackingEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	StatusText string    `json:"statusText"`
}

// NextEvent returns the event following lastSeen in the consignment's
// sequence, or nil when the feed has nothing newer. A lastSeen carrying the
// synthetic booking entry was recorded before the feed had anything, so the
// feed's first event is the next one regardless of its timestamp. Any other
// lastSeen the feed no longer lists falls back to timestamp ordering so a
// purged or renumbered feed entry cannot stall the sequence forever.
func (c *Client) NextEvent(ctx context.Context, trackingNumber string, lastSeen *order.CourierEvent) (*order.CourierEvent, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking number")
	}

	events, err := c.fetchEvents(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	if lastSeen == nil {
		return toCourierEvent(events[0]), nil
	}

	for i, event := range events {
		if lastSeen.IsEqual(order.CourierEvent{Timestamp: event.Timestamp, StatusText: event.StatusText}) {
			if i+1 < len(events) {
				return toCourierEvent(events[i+1]), nil
			}
			return nil, nil
		}
	}

	if lastSeen.StatusText == services.BootstrapStatusText {
		return toCourierEvent(events[0]), nil
	}

	for _, event := range events {
		if event.Timestamp.After(lastSeen.Timestamp) {
			return toCourierEvent(event), nil
		}
	}
	return nil, nil
}

func (c *Client) fetchEvents(ctx context.Context, trackingNumber string) ([]trackingEvent, error) {
	endpoint := fmt.Sprintf("%s/shipments/%s/events", c.baseURL, url.PathEscape(trackingNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Unknown consignment: the courier has not booked it yet.
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("courier feed returned status %d for %s", resp.StatusCode, trackingNumber)
	}

	var events []trackingEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding courier feed response: %w", err)
	}
	return events, nil
}

func toCourierEvent(event trackingEvent) *order.CourierEvent {
	return &order.CourierEvent{Timestamp: event.Timestamp, StatusText: event.StatusText}
}
