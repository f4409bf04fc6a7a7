package ports

import "context"

// SendResult reports the outcome of a single notification delivery attempt.
type SendResult struct {
	// Succeeded is true when the provider accepted the message.
	Succeeded bool
	// ProviderResponse carries the provider's raw response or error text for
	// the audit trail.
	ProviderResponse string
}

// NotificationSender delivers a rendered message text to a phone number.
// Implementations must bound every call with a timeout; a send that cannot
// complete in time reports failure rather than hanging the workflow. The
// phone number is already normalized to country-coded digits by the caller.
type NotificationSender interface {
	Send(ctx context.Context, phoneNumber string, text string) (SendResult, error)
}
