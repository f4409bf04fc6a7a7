package order

import (
	"errors"
	"fmt"
	"time"

	"ordernotify/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIsArchived is returned when any transition is attempted on an
	// archived order. Archival is one-directional: once archived, an order
	// never changes again.
	ErrOrderIsArchived = errors.New("order is archived and cannot be modified")

	// ErrOrderIsTerminal is returned when a lifecycle mutation is attempted on
	// a delivered or cancelled order where the mutation makes no sense.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")

	// ErrOrderNotAwaitingConfirmation is returned when a customer confirmation
	// is applied to an order that is not pending confirmation.
	ErrOrderNotAwaitingConfirmation = errors.New("order is not awaiting customer confirmation")
)

// CustomerDetails groups the customer and shipping fields of an order. These
// fields are owned by the external edit workflow; the orchestration core only
// reads them.
type CustomerDetails struct {
	Name           string
	Phone          string
	Address        string
	City           string
	PaymentMethod  string
	DeliveryMethod string
	CurrencySymbol string
	Price          float64
}

// Validate checks the customer detail invariants.
func (c CustomerDetails) Validate() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if c.Phone == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	if c.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is negative", c.Price))
	}
	return nil
}

// Order is the aggregate root of the notification orchestration core. It
// tracks an e-commerce order through its lifecycle (store confirmation,
// dispatch, courier transit, delivery or exception) and the notification state
// machine that runs alongside it.
//
// Order follows these invariants:
//   - Must have a non-empty identifier, immutable after creation
//   - Courier status history and message history are append-only
//   - Archived orders reject every mutation
//   - One-shot notification flags never reset within an order's lifetime
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all state changes
// go through validated methods that record an audit history entry.
type Order struct {
	id       string
	customer CustomerDetails
	items    []Item

	orderedAt time.Time

	appStatus     AppStatus
	messageStatus MessageStatus
	messageSentAt *time.Time

	trackingNumber      string
	courierHistory      []CourierEvent
	latestCourierStatus string

	outForDeliveryNotified bool
	addressIssueNotified   bool

	messageHistory []HistoryEntry

	isConstructed bool
}

// NewOrder creates a new Order in PendingConfirmation/Pending state and
// records the creation in the message history.
//
// Parameters:
//   - id: opaque order identifier (must be non-empty)
//   - customer: customer and shipping details
//   - items: order lines (each validated; may be empty)
//   - actor: who created the order, for the audit trail
//   - now: creation timestamp
//
// Returns a validation error if any field is invalid.
func NewOrder(id string, customer CustomerDetails, items []Item, actor string, now time.Time) (*Order, error) {
	o := &Order{
		appStatus:     PendingConfirmation,
		messageStatus: MessagePending,
		orderedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.appendHistory(now, "System: Order Created", "Order created in system.", actor)
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state without running the
// creation workflow. Used by repositories; both statuses are validated so
// corrupt rows surface as errors instead of silently broken aggregates.
func RestoreOrder(
	id string,
	customer CustomerDetails,
	items []Item,
	orderedAt time.Time,
	appStatus AppStatus,
	messageStatus MessageStatus,
	messageSentAt *time.Time,
	trackingNumber string,
	courierHistory []CourierEvent,
	latestCourierStatus string,
	outForDeliveryNotified bool,
	addressIssueNotified bool,
	messageHistory []HistoryEntry,
) (*Order, error) {
	o := &Order{
		orderedAt:              orderedAt,
		messageSentAt:          messageSentAt,
		trackingNumber:         trackingNumber,
		courierHistory:         courierHistory,
		latestCourierStatus:    latestCourierStatus,
		outForDeliveryNotified: outForDeliveryNotified,
		addressIssueNotified:   addressIssueNotified,
		messageHistory:         messageHistory,
		isConstructed:          true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		appStatus.Validate(),
		messageStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.appStatus = appStatus
	o.messageStatus = messageStatus
	return o, nil
}

// Validate ensures the Order was properly constructed through NewOrder or
// RestoreOrder. Call when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's opaque identifier.
func (o *Order) ID() string { return o.id }

// Customer returns the customer and shipping details.
func (o *Order) Customer() CustomerDetails { return o.customer }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// OrderedAt returns the creation timestamp.
func (o *Order) OrderedAt() time.Time { return o.orderedAt }

// AppStatus returns the current lifecycle status.
func (o *Order) AppStatus() AppStatus { return o.appStatus }

// MessageStatus returns the current notification status.
func (o *Order) MessageStatus() MessageStatus { return o.messageStatus }

// MessageSentAt returns when the last notification was sent, or nil if none
// was ever sent. Drives the confirmation-reminder delay.
func (o *Order) MessageSentAt() *time.Time { return o.messageSentAt }

// TrackingNumber returns the courier consignment number, empty until
// dispatch.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// HasTrackingNumber reports whether a consignment number is assigned.
func (o *Order) HasTrackingNumber() bool { return o.trackingNumber != "" }

// CourierHistory returns a copy of the append-only courier event history.
func (o *Order) CourierHistory() []CourierEvent {
	events := make([]CourierEvent, len(o.courierHistory))
	copy(events, o.courierHistory)
	return events
}

// LastCourierEvent returns the most recent courier event, or nil if the
// history is empty.
func (o *Order) LastCourierEvent() *CourierEvent {
	if len(o.courierHistory) == 0 {
		return nil
	}
	ev := o.courierHistory[len(o.courierHistory)-1]
	return &ev
}

// LatestCourierStatus returns the cached status text of the newest courier
// event, empty when no event was recorded yet.
func (o *Order) LatestCourierStatus() string { return o.latestCourierStatus }

// OutForDeliveryNotified reports whether the one-shot out-for-delivery
// notification already went out.
func (o *Order) OutForDeliveryNotified() bool { return o.outForDeliveryNotified }

// AddressIssueNotified reports whether the one-shot address-issue
// notification already went out.
func (o *Order) AddressIssueNotified() bool { return o.addressIssueNotified }

// MessageHistory returns a copy of the append-only audit trail.
func (o *Order) MessageHistory() []HistoryEntry {
	entries := make([]HistoryEntry, len(o.messageHistory))
	copy(entries, o.messageHistory)
	return entries
}

// AssignTracking sets the courier consignment number and records the
// assignment. Rejected on archived orders; the number must be non-empty.
func (o *Order) AssignTracking(trackingNumber, actor string, now time.Time) error {
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	o.trackingNumber = trackingNumber
	o.appendHistory(now, "Tracking Number Assigned",
		fmt.Sprintf("Consignment number set to %s.", trackingNumber), actor)
	return nil
}

// AppendCourierEvent records a new event from the courier feed. The event goes
// at the end of the append-only history, the latest-status cache is updated,
// and a polling entry lands in the audit trail. The caller (the reconciler)
// decides what the event means for AppStatus.
func (o *Order) AppendCourierEvent(event CourierEvent, now time.Time) error {
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}

	o.courierHistory = append(o.courierHistory, event)
	o.latestCourierStatus = event.StatusText
	o.appendHistory(now, "Courier: Status Polled - "+event.StatusText,
		"Courier status changed to: "+event.StatusText, "System: Courier Polling")
	return nil
}

// ReviseAppStatus applies a lifecycle status derived from the courier feed.
// Only the reconciler calls this; it never touches MessageStatus, so a fresh
// notification expectation is carried by the selector rules instead of a
// reset here. No-op when the status is unchanged.
func (o *Order) ReviseAppStatus(status AppStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if o.appStatus.IsTerminal() && o.appStatus != Delivered {
		return ErrOrderIsTerminal
	}

	o.appStatus = status
	return nil
}

// ApplyNotificationSuccess commits the result of a successfully sent
// notification: MessageStatus and AppStatus advance per the fixed per-intent
// transition table, one-shot flags are raised where applicable, and the send
// is recorded in the audit trail.
//
// Transition table:
//   - NewOrderInitial, ProcessingConfirmed, CancellationNotice -> Sent
//   - ConfirmationReminder -> ConfirmationSent
//   - DispatchNotification -> Sent, AppStatus=Dispatched
//   - OutForDelivery -> Notified, outForDeliveryNotified=true
//   - AddressNeeded, PremisesClosed -> Notified, addressIssueNotified=true
//   - ShipmentPickedUp, InTransitUpdate, GenericCourierUpdate,
//     DeliveredThankYou, ManualStatusChange -> Notified
func (o *Order) ApplyNotificationSuccess(intent MessageIntent, snippet, actor string, now time.Time) error {
	if err := intent.Validate(); err != nil {
		return err
	}
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}

	switch intent {
	case IntentNewOrderInitial, IntentProcessingConfirmed, IntentCancellationNotice:
		o.messageStatus = MessageSent
	case IntentConfirmationReminder:
		o.messageStatus = ConfirmationSent
	case IntentDispatchNotification:
		o.messageStatus = MessageSent
		o.appStatus = Dispatched
	case IntentOutForDelivery:
		o.messageStatus = Notified
		o.outForDeliveryNotified = true
	case IntentAddressNeeded, IntentPremisesClosed:
		o.messageStatus = Notified
		o.addressIssueNotified = true
	default:
		o.messageStatus = Notified
	}

	sentAt := now
	o.messageSentAt = &sentAt
	o.appendHistory(now, intent.historyAction(), snippet, actor)
	return nil
}

// ApplyNotificationFailure records a transport failure from the notification
// gateway. AppStatus stays put, MessageStatus becomes ErrorSendingFailed, and
// the provider's error text is preserved in the audit trail for the operator.
// Nothing retries automatically.
func (o *Order) ApplyNotificationFailure(intent MessageIntent, reason, actor string, now time.Time) error {
	if err := intent.Validate(); err != nil {
		return err
	}
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}

	o.messageStatus = ErrorSendingFailed
	o.appendHistory(now, "Send Failed - "+intent.String(), reason, actor)
	return nil
}

// RecordSendValidationError records a validation failure that short-circuited
// a send attempt (missing tracking number, unnormalizable phone number). The
// status must be one of the error MessageStatus values.
func (o *Order) RecordSendValidationError(status MessageStatus, reason, actor string, now time.Time) error {
	if !status.IsSendError() {
		return errs.NewValueIsInvalidErrorWithCause("message status is invalid",
			fmt.Errorf("%s is not a send-error status", status))
	}
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}

	o.messageStatus = status
	o.appendHistory(now, "Validation Failed - "+status.String(), reason, actor)
	return nil
}

// ConfirmByCustomer marks the order as confirmed by the customer: the order
// moves to Processing/CustomerConfirmed. Only valid while the order is
// awaiting confirmation and the initial or reminder notification went out.
func (o *Order) ConfirmByCustomer(actor string, now time.Time) error {
	if o.appStatus != PendingConfirmation {
		return ErrOrderNotAwaitingConfirmation
	}
	if o.messageStatus != MessageSent && o.messageStatus != ConfirmationSent {
		return ErrOrderNotAwaitingConfirmation
	}

	o.appStatus = Processing
	o.messageStatus = CustomerConfirmed
	o.appendHistory(now, "Customer Confirmed Order", "Order confirmed by customer.", actor)
	return nil
}

// MarkCancelled cancels the order and seeds a pending cancellation
// notification. Rejected on archived orders.
func (o *Order) MarkCancelled(actor string, now time.Time) error {
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}

	o.appStatus = Cancelled
	o.messageStatus = MessagePending
	o.appendHistory(now, "Order Cancelled", "Marked as cancelled, pending notification.", actor)
	return nil
}

// ForceStatus applies a direct status transition outside the automatic flow
// (the bulk/manual override path). Targets that start a fresh manual
// notification cycle seed MessagePending; other targets are treated as
// already communicated and get Notified. Archived orders reject the
// transition, and both old and new status land in the audit trail.
func (o *Order) ForceStatus(newStatus AppStatus, actor string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}

	oldStatus := o.appStatus
	o.appStatus = newStatus
	if newStatus.SeedsManualNotification() {
		o.messageStatus = MessagePending
	} else {
		o.messageStatus = Notified
	}

	o.appendHistory(now, fmt.Sprintf("%s: Status change to %s", actor, newStatus),
		fmt.Sprintf("Order status changed from %s to %s.", oldStatus, newStatus), actor)
	return nil
}

// ApplyEdit replaces the customer details and items from the external edit
// workflow. The orchestration state (statuses, histories, flags) is untouched.
func (o *Order) ApplyEdit(customer CustomerDetails, items []Item, actor string, now time.Time) error {
	if o.appStatus == Archived {
		return ErrOrderIsArchived
	}
	if err := errors.Join(o.setCustomer(customer), o.setItems(items)); err != nil {
		return err
	}

	o.appendHistory(now, "Order Edited", "Order details modified.", actor)
	return nil
}

func (o *Order) appendHistory(now time.Time, action, snippet, actor string) {
	o.messageHistory = append(o.messageHistory, HistoryEntry{
		Timestamp:      now,
		Action:         action,
		ContentSnippet: truncateSnippet(snippet),
		Actor:          actor,
	})
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer CustomerDetails) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
