package services

import (
	"errors"

	"ordernotify/internal/core/domain/model/order"
)

// ErrTrackingNumberMissing is returned when a dispatch notification is due but
// the order has no consignment number. The caller must record ErrorMissingCN
// on the order and must not attempt a send.
var ErrTrackingNumberMissing = errors.New("tracking number missing for dispatch notification")

// IntentSelector decides which customer notification, if any, an order is due
// for. This is the state machine at the heart of the system: a fixed decision
// table over (appStatus, messageStatus, one-shot flags, latest courier status,
// tracking number presence), evaluated top to bottom, first match wins.
//
// Select is pure: probing an order twice without mutating it returns the same
// answer twice, so operators can safely re-check pending work.
//
// A failed send leaves messageStatus at ErrorSendingFailed; the table treats
// that the same as Pending so the identical intent is re-offered for a manual
// resend.
type IntentSelector struct{}

// NewIntentSelector creates a new IntentSelector instance.
func NewIntentSelector() IntentSelector {
	return IntentSelector{}
}

// Select returns the single due intent for the order, or ok=false when
// nothing is pending. ErrTrackingNumberMissing is the only error case: a
// dispatch notification blocked on a missing consignment number.
func (s IntentSelector) Select(o *order.Order) (intent order.MessageIntent, ok bool, err error) {
	if err := o.Validate(); err != nil {
		return "", false, err
	}

	appStatus := o.AppStatus()
	awaitsSend := o.MessageStatus().AwaitsSend()

	switch {
	case appStatus == order.PendingConfirmation && awaitsSend:
		return order.IntentNewOrderInitial, true, nil

	case appStatus == order.PendingConfirmation && o.MessageStatus() == order.MessageSent:
		return order.IntentConfirmationReminder, true, nil

	case appStatus == order.Processing &&
		(awaitsSend || o.MessageStatus() == order.CustomerConfirmed):
		return order.IntentProcessingConfirmed, true, nil

	case appStatus == order.Dispatched && awaitsSend && !o.HasTrackingNumber():
		return "", false, ErrTrackingNumberMissing

	case appStatus == order.Dispatched && awaitsSend:
		return order.IntentDispatchNotification, true, nil

	case appStatus == order.OutForDelivery && !o.OutForDeliveryNotified():
		return order.IntentOutForDelivery, true, nil

	case appStatus == order.AddressIssue && !o.AddressIssueNotified():
		if IndicatesPremisesClosed(o.LatestCourierStatus()) {
			return order.IntentPremisesClosed, true, nil
		}
		return order.IntentAddressNeeded, true, nil

	case appStatus == order.Delivered &&
		o.MessageStatus() != order.Notified && o.MessageStatus() != order.CustomerConfirmed:
		return order.IntentDeliveredThankYou, true, nil

	case appStatus == order.Cancelled && awaitsSend:
		return order.IntentCancellationNotice, true, nil

	// Dispatched orders are caught by the dispatch rule above, so in practice
	// this rule fires for InTransit only. The Dispatched alternative is kept
	// for parity with the table the selector implements.
	case o.HasTrackingNumber() && awaitsSend &&
		(appStatus == order.Dispatched || appStatus == order.InTransit):
		if IndicatesPickup(o.LatestCourierStatus()) {
			return order.IntentShipmentPickedUp, true, nil
		}
		if appStatus == order.InTransit {
			return order.IntentInTransitUpdate, true, nil
		}
		return order.IntentGenericCourierUpdate, true, nil
	}

	return "", false, nil
}
