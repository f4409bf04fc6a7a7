package order

import (
	"fmt"

	"ordernotify/internal/pkg/errs"
)

// MessageStatus tracks the customer-notification side of an order,
// independently of AppStatus. A new AppStatus transition resets the
// expectation that a fresh notification is due; the bulk/manual path does this
// by seeding MessagePending.
type MessageStatus int

const (
	// MessageStatusUnknown represents an invalid or undefined status.
	MessageStatusUnknown MessageStatus = iota

	// MessagePending means a notification is due for the current AppStatus
	// and has not been sent yet.
	MessagePending

	// MessageSent means the notification for the current AppStatus went out.
	MessageSent

	// ConfirmationSent means the confirmation reminder went out after the
	// initial notification stayed unanswered.
	ConfirmationSent

	// CustomerConfirmed means the customer confirmed the order.
	CustomerConfirmed

	// Notified means a courier-driven update was communicated to the
	// customer.
	Notified

	// ErrorMissingData means the order lacks data required to send (e.g. an
	// unnormalizable phone number). Requires operator intervention.
	ErrorMissingData

	// ErrorSendingFailed means the notification gateway reported a failure.
	// Treated as equivalent to MessagePending for intent re-selection, so the
	// same intent is re-offered on the next probe; nothing retries
	// automatically.
	ErrorSendingFailed

	// ErrorMissingCN means a dispatch notification was attempted without a
	// tracking number (consignment number). Requires operator intervention.
	ErrorMissingCN
)

func getMessageStatusStrings() map[MessageStatus]string {
	return map[MessageStatus]string{
		MessageStatusUnknown: "Unknown",
		MessagePending:       "Pending",
		MessageSent:          "Sent",
		ConfirmationSent:     "Confirmation Sent",
		CustomerConfirmed:    "Customer Confirmed",
		Notified:             "Notified",
		ErrorMissingData:     "Error: Missing Data",
		ErrorSendingFailed:   "Error: Sending Failed",
		ErrorMissingCN:       "Error: Missing CN",
	}
}

func getValidMessageStatusStrings() map[MessageStatus]string {
	m := getMessageStatusStrings()
	delete(m, MessageStatusUnknown)
	return m
}

// Validate checks if the MessageStatus value is one of the defined statuses.
func (s MessageStatus) Validate() error {
	if _, ok := getValidMessageStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("message status is invalid",
			fmt.Errorf("%d is not a valid message status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on any MessageStatus value.
func (s MessageStatus) String() string {
	if str, ok := getMessageStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AwaitsSend reports whether the status means a notification is still due.
// ErrorSendingFailed counts: a failed send is re-offered for manual re-drive.
func (s MessageStatus) AwaitsSend() bool {
	return s == MessagePending || s == ErrorSendingFailed
}

// IsSendError reports whether the status is one of the send-failure values.
func (s MessageStatus) IsSendError() bool {
	return s == ErrorMissingData || s == ErrorSendingFailed || s == ErrorMissingCN
}
