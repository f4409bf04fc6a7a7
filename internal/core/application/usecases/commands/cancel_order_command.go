package commands

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents cancelling an order. The order moves to
// Cancelled with a cancellation notification due.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	actor   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, actor string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}

// Actor returns who cancelled the order.
func (c CancelOrderCommand) Actor() string {
	return c.actor
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
