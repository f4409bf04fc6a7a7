package commands

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a customer confirming their order, as relayed
// by the operator reading the reply. Moves the order into Processing.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	actor   string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command recording a customer confirmation.
func NewConfirmOrderCommand(orderID, actor string) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmOrderCommand) OrderID() string {
	return c.orderID
}

// Actor returns who recorded the confirmation.
func (c ConfirmOrderCommand) Actor() string {
	return c.actor
}

func (c *ConfirmOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
