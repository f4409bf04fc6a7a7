package order

import (
	"fmt"

	"ordernotify/internal/pkg/errs"
)

// MessageIntent identifies a specific notification purpose the intent selector
// can decide is due for an order. Intents double as template keys: the
// template resolver maps each intent to an editable message template.
type MessageIntent string

const (
	IntentNewOrderInitial      MessageIntent = "NEW_ORDER_INITIAL"
	IntentConfirmationReminder MessageIntent = "ORDER_CONFIRMATION_REMINDER"
	IntentProcessingConfirmed  MessageIntent = "ORDER_PROCESSING_CONFIRMED"
	IntentDispatchNotification MessageIntent = "ORDER_DISPATCH"
	IntentCancellationNotice   MessageIntent = "ORDER_CANCELLED"
	IntentShipmentPickedUp     MessageIntent = "COURIER_SHIPMENT_PICKED_UP"
	IntentInTransitUpdate      MessageIntent = "COURIER_IN_TRANSIT_UPDATE"
	IntentOutForDelivery       MessageIntent = "COURIER_OUT_FOR_DELIVERY"
	IntentAddressNeeded        MessageIntent = "COURIER_ADDRESS_NEEDED"
	IntentPremisesClosed       MessageIntent = "COURIER_RECIPIENT_PREMISES_CLOSED"
	IntentDeliveredThankYou    MessageIntent = "COURIER_DELIVERED_THANK_YOU"
	IntentGenericCourierUpdate MessageIntent = "COURIER_GENERIC_UPDATE"
	IntentManualStatusChange   MessageIntent = "MANUAL_STATUS_CHANGE_NOTIFICATION"
)

// AllIntents lists every defined intent in a stable order. Used by the
// template settings surface and by exhaustiveness tests.
func AllIntents() []MessageIntent {
	return []MessageIntent{
		IntentNewOrderInitial,
		IntentConfirmationReminder,
		IntentProcessingConfirmed,
		IntentDispatchNotification,
		IntentCancellationNotice,
		IntentShipmentPickedUp,
		IntentInTransitUpdate,
		IntentOutForDelivery,
		IntentAddressNeeded,
		IntentPremisesClosed,
		IntentDeliveredThankYou,
		IntentGenericCourierUpdate,
		IntentManualStatusChange,
	}
}

// Validate checks if the intent is one of the defined message intents.
func (i MessageIntent) Validate() error {
	for _, known := range AllIntents() {
		if i == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("message intent is invalid",
		fmt.Errorf("%q is not a known message intent", string(i)))
}

// String returns the intent key.
func (i MessageIntent) String() string {
	return string(i)
}

// historyAction maps an intent to the audit-trail action label recorded when a
// notification for that intent is sent.
func (i MessageIntent) historyAction() string {
	switch i {
	case IntentNewOrderInitial:
		return "Initial Order Notification Sent"
	case IntentConfirmationReminder:
		return "Confirmation Reminder Sent"
	case IntentProcessingConfirmed:
		return "Order Confirmed (Processing) Notification Sent"
	case IntentDispatchNotification:
		return "Dispatch Notification Sent"
	case IntentCancellationNotice:
		return "Cancellation Alert Sent"
	case IntentShipmentPickedUp:
		return "Courier Update - Shipment Picked Up"
	case IntentInTransitUpdate:
		return "Courier Update - In Transit"
	case IntentOutForDelivery:
		return "Courier Update - Out for Delivery"
	case IntentAddressNeeded:
		return "Courier Update - Address Needed"
	case IntentPremisesClosed:
		return "Courier Update - Premises Closed"
	case IntentDeliveredThankYou:
		return "Courier Update - Delivered - Thank You Sent"
	case IntentGenericCourierUpdate:
		return "Courier Update - Status Update"
	case IntentManualStatusChange:
		return "Manual Status Change Notification Sent"
	default:
		return "Notification Sent"
	}
}
