package order

import (
	"fmt"

	"ordernotify/internal/pkg/errs"
)

// AppStatus represents the consolidated lifecycle state of an order as seen by
// the store and the courier feed.
//
// State flow:
//
//	PendingConfirmation -> Processing -> Dispatched -> InTransit -> OutForDelivery -> Delivered
//	                                          |             |             |
//	                                          +-------------+------> AddressIssue
//
// Cancelled is reachable from any non-terminal state; Archived is reachable
// from any state via bulk action only. Delivered, Cancelled, and Archived are
// terminal: no automatic transition leaves them, and nothing leaves Archived.
type AppStatus int

const (
	// AppStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized AppStatus values.
	AppStatusUnknown AppStatus = iota

	// PendingConfirmation is the initial status: the order exists and the
	// customer has not yet confirmed it.
	PendingConfirmation

	// Processing means the customer confirmed and the order awaits dispatch.
	Processing

	// Dispatched means the parcel left the store and a tracking number is
	// expected to be assigned.
	Dispatched

	// InTransit means the courier feed reports the parcel moving.
	InTransit

	// OutForDelivery means the courier feed reports a delivery attempt today.
	OutForDelivery

	// AddressIssue means the courier feed reports a failed attempt needing
	// customer action (incomplete address, premises closed, no answer).
	AddressIssue

	// Delivered is terminal: the courier confirmed delivery.
	Delivered

	// Cancelled is terminal: the order was cancelled before delivery.
	Cancelled

	// Archived is terminal and one-directional: soft-deleted via bulk action.
	Archived
)

func getAppStatusStrings() map[AppStatus]string {
	return map[AppStatus]string{
		AppStatusUnknown:    "Unknown",
		PendingConfirmation: "Pending Confirmation",
		Processing:          "Processing",
		Dispatched:          "Dispatched",
		InTransit:           "In Transit",
		OutForDelivery:      "Out for Delivery",
		AddressIssue:        "Address Issue",
		Delivered:           "Delivered",
		Cancelled:           "Cancelled",
		Archived:            "Archived",
	}
}

func getValidAppStatusStrings() map[AppStatus]string {
	m := getAppStatusStrings()
	delete(m, AppStatusUnknown)
	return m
}

// AllAppStatuses returns every valid status in lifecycle order.
func AllAppStatuses() []AppStatus {
	return []AppStatus{
		PendingConfirmation,
		Processing,
		Dispatched,
		InTransit,
		OutForDelivery,
		AddressIssue,
		Delivered,
		Cancelled,
		Archived,
	}
}

// Validate checks if the AppStatus value is one of the defined statuses.
// AppStatusUnknown (0) and out-of-range values are invalid.
func (s AppStatus) Validate() error {
	if _, ok := getValidAppStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("app status is invalid",
			fmt.Errorf("%d is not a valid app status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on any AppStatus value.
func (s AppStatus) String() string {
	if str, ok := getAppStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further automatic transition is defined for
// the status. Terminal orders are excluded from courier polling and reminder
// scanning.
func (s AppStatus) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Archived
}

// SeedsManualNotification reports whether a manual/bulk transition into this
// status should seed a fresh notification cycle (messageStatus reset to
// Pending). Other targets are treated as already communicated.
func (s AppStatus) SeedsManualNotification() bool {
	switch s {
	case Dispatched, OutForDelivery, AddressIssue, Cancelled:
		return true
	default:
		return false
	}
}
