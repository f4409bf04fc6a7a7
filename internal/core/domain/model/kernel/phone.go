package kernel

import (
	"fmt"
	"strings"

	"ordernotify/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created through NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// countryCode is the single country prefix all recipient numbers are
// normalized to before any message is handed to the notification gateway.
const countryCode = "92"

// Phone is a value object holding a customer phone number normalized to a
// single country-coded digit format (e.g. "923001234567"). Raw input may carry
// separators, a leading zero, or a doubled country prefix; NewPhone accepts
// those shapes and rejects everything else, so an invalid number can never
// reach the notification gateway.
//
// Phone is immutable and safe for concurrent use.
type Phone struct {
	digits string
}

// NewPhone normalizes and validates a raw phone number.
//
// Accepted input shapes (after stripping non-digits and a leading zero):
//   - ten local digits, e.g. "3001234567" -> "923001234567"
//   - twelve digits already carrying the country code, e.g. "923001234567"
//   - thirteen digits with country code plus stray zero, e.g. "9203001234567"
//
// Returns a ValueIsInvalidError for anything else. Callers must treat that as
// a send-validation failure and never attempt delivery.
func NewPhone(raw string) (Phone, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := strings.TrimPrefix(digits.String(), "0")

	switch {
	case len(s) == 10 && !strings.HasPrefix(s, countryCode):
		s = countryCode + s
	case len(s) == 12 && strings.HasPrefix(s, countryCode):
		// already normalized
	case len(s) == 13 && strings.HasPrefix(s, countryCode+"0"):
		s = countryCode + s[3:]
	default:
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone number",
			fmt.Errorf("%q cannot be normalized to a country-coded number", raw),
		)
	}

	return Phone{digits: s}, nil
}

// String returns the normalized country-coded digit string.
func (p Phone) String() string {
	return p.digits
}

// IsEqual compares two phone numbers by their normalized form.
func (p Phone) IsEqual(other Phone) bool {
	return p.digits == other.digits
}

// Validate checks that the Phone was properly constructed via NewPhone.
func (p Phone) Validate() error {
	if p.digits == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
