// Package settings holds the operator-tunable configuration that shapes the
// notification workflow at runtime: background job cadences, the payment
// account advertised in messages, and the advance payment discount.
package settings

import (
	"errors"
	"fmt"
	"time"

	"ordernotify/internal/pkg/errs"
)

// Defaults applied when no stored settings exist yet.
const (
	DefaultConfirmationDelayHours    = 2
	DefaultPollingIntervalSeconds    = 30
	DefaultPaymentAccountNumber      = "0312-3456789"
	DefaultPaymentAccountName        = "ApnaStore Online"
	DefaultAdvanceDiscountPercentage = 10.0
	DefaultCourierTrackingLinkPrefix = "https://www.tcsexpress.com/track/"
)

// ErrSettingsAreNotConstructed is returned when a Settings instance was not
// created through NewSettings or Default.
var ErrSettingsAreNotConstructed = errors.New("Settings must be created via NewSettings or Default")

// Settings is the validated runtime configuration bag.
type Settings struct {
	confirmationDelayHours    int
	pollingIntervalSeconds    int
	paymentAccountNumber      string
	paymentAccountName        string
	advanceDiscountPercentage float64
	trackingLinkPrefix        string

	isConstructed bool
}

// NewSettings creates a validated Settings value.
//
// Parameters:
//   - confirmationDelayHours: hours after the initial notification before a
//     confirmation reminder becomes due (must be positive)
//   - pollingIntervalSeconds: courier feed polling cadence (must be positive)
//   - paymentAccountNumber, paymentAccountName: mobile wallet account shown in
//     advance payment templates
//   - advanceDiscountPercentage: discount for paying in advance, 0 to 100
//   - trackingLinkPrefix: base URL the consignment number is appended to
func NewSettings(
	confirmationDelayHours int,
	pollingIntervalSeconds int,
	paymentAccountNumber string,
	paymentAccountName string,
	advanceDiscountPercentage float64,
	trackingLinkPrefix string,
) (Settings, error) {
	if confirmationDelayHours <= 0 {
		return Settings{}, errs.NewValueIsInvalidErrorWithCause("confirmation delay hours is invalid",
			fmt.Errorf("%d is not positive", confirmationDelayHours))
	}
	if pollingIntervalSeconds <= 0 {
		return Settings{}, errs.NewValueIsInvalidErrorWithCause("polling interval seconds is invalid",
			fmt.Errorf("%d is not positive", pollingIntervalSeconds))
	}
	if advanceDiscountPercentage < 0 || advanceDiscountPercentage > 100 {
		return Settings{}, errs.NewValueIsOutOfRangeError("advance discount percentage",
			advanceDiscountPercentage, 0, 100)
	}

	return Settings{
		confirmationDelayHours:    confirmationDelayHours,
		pollingIntervalSeconds:    pollingIntervalSeconds,
		paymentAccountNumber:      paymentAccountNumber,
		paymentAccountName:        paymentAccountName,
		advanceDiscountPercentage: advanceDiscountPercentage,
		trackingLinkPrefix:        trackingLinkPrefix,
		isConstructed:             true,
	}, nil
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	s, _ := NewSettings(
		DefaultConfirmationDelayHours,
		DefaultPollingIntervalSeconds,
		DefaultPaymentAccountNumber,
		DefaultPaymentAccountName,
		DefaultAdvanceDiscountPercentage,
		DefaultCourierTrackingLinkPrefix,
	)
	return s
}

// Validate ensures the Settings value was properly constructed.
func (s Settings) Validate() error {
	if !s.isConstructed {
		return ErrSettingsAreNotConstructed
	}
	return nil
}

// ConfirmationDelay returns the reminder delay as a duration.
func (s Settings) ConfirmationDelay() time.Duration {
	return time.Duration(s.confirmationDelayHours) * time.Hour
}

// ConfirmationDelayHours returns the raw configured hour count.
func (s Settings) ConfirmationDelayHours() int { return s.confirmationDelayHours }

// PollingInterval returns the courier polling cadence as a duration.
func (s Settings) PollingInterval() time.Duration {
	return time.Duration(s.pollingIntervalSeconds) * time.Second
}

// PollingIntervalSeconds returns the raw configured second count.
func (s Settings) PollingIntervalSeconds() int { return s.pollingIntervalSeconds }

// PaymentAccountNumber returns the wallet account number for advance payments.
func (s Settings) PaymentAccountNumber() string { return s.paymentAccountNumber }

// PaymentAccountName returns the wallet account holder name.
func (s Settings) PaymentAccountName() string { return s.paymentAccountName }

// AdvanceDiscountPercentage returns the advance payment discount, 0 to 100.
func (s Settings) AdvanceDiscountPercentage() float64 { return s.advanceDiscountPercentage }

// TrackingLinkPrefix returns the base URL for courier tracking links.
func (s Settings) TrackingLinkPrefix() string { return s.trackingLinkPrefix }
