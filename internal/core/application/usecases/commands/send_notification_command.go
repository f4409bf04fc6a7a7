package commands

import (
	"errors"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/guard"
)

var (
	ErrSendNotificationCommandIsNotConstructed = errors.New(
		"SendNotificationCommand must be created via NewSendNotificationCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// SendNotificationCommand represents a request to send the customer
// notification an order is currently due for.
//
// By default the due intent is decided by the selection table. An explicit
// intent pins the message type instead (reminder job, manual resend from a
// specific template), and explicit text replaces the rendered template body
// (operator edited the message before sending).
//
// Example:
//
//	cmd, err := NewSendNotificationCommand("ORD-1001", "Admin")
//	if err != nil {
//	    return err
//	}
//	outcome, err := handler.Handle(ctx, cmd)
type SendNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	actor      string
	intent     order.MessageIntent
	customText string

	guard guard.ConstructorGuard
}

// NewSendNotificationCommand creates a command that lets the selection table
// pick the due intent and renders the resolved template.
func NewSendNotificationCommand(orderID, actor string) (SendNotificationCommand, error) {
	return newSendNotificationCommand(orderID, actor, "", "")
}

// NewSendNotificationCommandWithIntent creates a command pinned to a specific
// intent, optionally with operator-edited message text. Empty customText
// renders the resolved template for the intent.
func NewSendNotificationCommandWithIntent(
	orderID, actor string,
	intent order.MessageIntent,
	customText string,
) (SendNotificationCommand, error) {
	if err := intent.Validate(); err != nil {
		return SendNotificationCommand{}, err
	}
	return newSendNotificationCommand(orderID, actor, intent, customText)
}

func newSendNotificationCommand(
	orderID, actor string,
	intent order.MessageIntent,
	customText string,
) (SendNotificationCommand, error) {
	cmd := SendNotificationCommand{
		intent:     intent,
		customText: customText,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return SendNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrSendNotificationCommandIsNotConstructed if validation fails.
func (c SendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SendNotificationCommand) OrderID() string {
	return c.orderID
}

// Actor returns who triggered the send, for the audit trail.
func (c SendNotificationCommand) Actor() string {
	return c.actor
}

// Intent returns the pinned intent, or empty when the selection table decides.
func (c SendNotificationCommand) Intent() order.MessageIntent {
	return c.intent
}

// CustomText returns the operator-edited message body, or empty when the
// resolved template is rendered.
func (c SendNotificationCommand) CustomText() string {
	return c.customText
}

func (c *SendNotificationCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *SendNotificationCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
