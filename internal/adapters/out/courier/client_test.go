package courier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordernotify/internal/adapters/out/courier"
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	StatusText string    `json:"statusText"`
}

func newFeedServer(t *testing.T, events map[string][]feedEvent) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for cn, evts := range events {
			if r.URL.Path == "/shipments/"+cn+"/events" {
				w.Header().Set("Content-Type", "application/json")
				require.NoError(t, json.NewEncoder(w).Encode(evts))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func TestClient_NextEvent_FirstEventWhenNothingSeen(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	server := newFeedServer(t, map[string][]feedEvent{
		"CN-1": {
			{Timestamp: base, StatusText: "Booked"},
			{Timestamp: base.Add(time.Hour), StatusText: "Picked up by courier"},
		},
	})
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	event, err := client.NextEvent(t.Context(), "CN-1", nil)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Booked", event.StatusText)
}

func TestClient_NextEvent_SuccessorOfLastSeen(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	server := newFeedServer(t, map[string][]feedEvent{
		"CN-1": {
			{Timestamp: base, StatusText: "Booked"},
			{Timestamp: base.Add(time.Hour), StatusText: "Picked up by courier"},
			{Timestamp: base.Add(2 * time.Hour), StatusText: "Shipment delivered successfully"},
		},
	})
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	lastSeen := &order.CourierEvent{Timestamp: base.Add(time.Hour), StatusText: "Picked up by courier"}
	event, err := client.NextEvent(t.Context(), "CN-1", lastSeen)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Shipment delivered successfully", event.StatusText)
}

func TestClient_NextEvent_NoSuccessorReturnsNil(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	server := newFeedServer(t, map[string][]feedEvent{
		"CN-1": {{Timestamp: base, StatusText: "Booked"}},
	})
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	lastSeen := &order.CourierEvent{Timestamp: base, StatusText: "Booked"}
	event, err := client.NextEvent(t.Context(), "CN-1", lastSeen)

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestClient_NextEvent_UnlistedLastSeenFallsBackToTimestamp(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	server := newFeedServer(t, map[string][]feedEvent{
		"CN-1": {
			{Timestamp: base, StatusText: "Booked"},
			{Timestamp: base.Add(2 * time.Hour), StatusText: "In transit to destination"},
		},
	})
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	// lastSeen no longer appears in the feed; fall back to anything newer.
	lastSeen := &order.CourierEvent{Timestamp: base.Add(time.Hour), StatusText: "Purged entry"}
	event, err := client.NextEvent(t.Context(), "CN-1", lastSeen)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "In transit to destination", event.StatusText)
}

func TestClient_NextEvent_BootstrapLastSeenGetsFirstFeedEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	server := newFeedServer(t, map[string][]feedEvent{
		"CN-1": {
			{Timestamp: now.Add(-3 * time.Hour), StatusText: "Booked"},
			{Timestamp: now.Add(-150 * time.Minute), StatusText: "Departed from Lahore Hub"},
		},
	})
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	// The synthetic booking entry is stamped with poll time, so the feed's
	// own events predate it; they must still be returned in order.
	lastSeen := &order.CourierEvent{Timestamp: now.Add(-time.Hour), StatusText: services.BootstrapStatusText}
	event, err := client.NextEvent(t.Context(), "CN-1", lastSeen)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Booked", event.StatusText)
	assert.Equal(t, now.Add(-3*time.Hour), event.Timestamp)
}

func TestClient_NextEvent_UnknownConsignmentIsQuiet(t *testing.T) {
	server := newFeedServer(t, map[string][]feedEvent{})
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	event, err := client.NextEvent(t.Context(), "CN-404", nil)

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestClient_NextEvent_ServerErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := courier.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.NextEvent(t.Context(), "CN-1", nil)

	assert.Error(t, err)
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	_, err := courier.NewClient("")

	assert.Error(t, err)
}
