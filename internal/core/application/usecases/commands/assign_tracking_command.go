package commands

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var (
	ErrAssignTrackingCommandIsNotConstructed = errors.New(
		"AssignTrackingCommand must be created via NewAssignTrackingCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// AssignTrackingCommand represents assigning a courier consignment number to
// an order at dispatch time.
type AssignTrackingCommand struct { //nolint:recvcheck //using for validation
	orderID        string
	trackingNumber string
	actor          string

	guard guard.ConstructorGuard
}

// NewAssignTrackingCommand creates a command to record a consignment number.
func NewAssignTrackingCommand(orderID, trackingNumber, actor string) (AssignTrackingCommand, error) {
	cmd := AssignTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setActor(actor),
	); err != nil {
		return AssignTrackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAssignTrackingCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignTrackingCommand) OrderID() string {
	return c.orderID
}

// TrackingNumber returns the courier consignment number.
func (c AssignTrackingCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Actor returns who assigned the number.
func (c AssignTrackingCommand) Actor() string {
	return c.actor
}

func (c *AssignTrackingCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AssignTrackingCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *AssignTrackingCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
