package services

import (
	"strings"

	"ordernotify/internal/core/domain/model/order"
)

// Courier status keywords. Matching is case-insensitive substring containment
// against the raw status line from the courier feed.
const (
	KeywordDelivered      = "delivered successfully"
	KeywordOutForDelivery = "out for delivery"
	KeywordAddressNeeded  = "address information needed"
	KeywordIncompleteAddr = "incomplete address"
	KeywordPremisesClosed = "recipient premises closed"
	KeywordNoAnswer       = "no answer"
	KeywordBooked         = "booked"
	KeywordPickedUp       = "picked up"
)

// classificationRule binds a set of keywords to the application status they
// imply. Rules are evaluated in table order, first match wins.
type classificationRule struct {
	keywords []string
	status   order.AppStatus
}

// StatusClassifier derives an application status from free-text courier
// status lines. Courier feeds are noisy free text, so classification is a
// prioritized keyword table rather than an exact-match map; new courier
// phrasings are handled by extending the table, not the code.
//
// Priority order:
//  1. delivered keyword -> Delivered
//  2. out-for-delivery keyword -> OutForDelivery
//  3. address-needed, incomplete-address, premises-closed or no-answer
//     keyword -> AddressIssue
//  4. anything else -> InTransit, unless the order is still Dispatched or
//     Processing, in which case the current status is kept
type StatusClassifier struct {
	rules []classificationRule
}

// NewStatusClassifier creates a classifier with the standard rule table.
func NewStatusClassifier() StatusClassifier {
	return StatusClassifier{
		rules: []classificationRule{
			{keywords: []string{KeywordDelivered}, status: order.Delivered},
			{keywords: []string{KeywordOutForDelivery}, status: order.OutForDelivery},
			{keywords: []string{
				KeywordAddressNeeded, KeywordIncompleteAddr,
				KeywordPremisesClosed, KeywordNoAnswer,
			}, status: order.AddressIssue},
		},
	}
}

// Classify returns the application status implied by a courier status line,
// given the order's current status for the unmatched fallback.
func (c StatusClassifier) Classify(statusText string, current order.AppStatus) order.AppStatus {
	lower := strings.ToLower(statusText)
	for _, rule := range c.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.status
			}
		}
	}

	if current == order.Dispatched || current == order.Processing {
		return current
	}
	return order.InTransit
}

// IndicatesPremisesClosed reports whether a courier status line carries the
// premises-closed phrasing. AddressIssue covers two distinct customer
// messages; only this phrasing gets the premises-closed one, everything else
// (no answer, incomplete address) asks for address details.
func IndicatesPremisesClosed(statusText string) bool {
	return strings.Contains(strings.ToLower(statusText), "premises closed")
}

// IndicatesPickup reports whether a courier status line marks the shipment as
// booked or picked up by the courier.
func IndicatesPickup(statusText string) bool {
	lower := strings.ToLower(statusText)
	return strings.Contains(lower, KeywordBooked) || strings.Contains(lower, KeywordPickedUp)
}
