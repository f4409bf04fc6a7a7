package commands

import (
	"errors"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/guard"
)

var (
	ErrBulkChangeStatusCommandIsNotConstructed = errors.New(
		"BulkChangeStatusCommand must be created via NewBulkChangeStatusCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// BulkChangeStatusCommand represents a direct status override on a batch of
// orders, bypassing the automatic notification flow.
//
// Example:
//
//	cmd, err := NewBulkChangeStatusCommand(
//	    []string{"ORD-1", "ORD-2", "ORD-3"}, order.Archived, "Admin")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type BulkChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []string
	newStatus order.AppStatus
	actor     string

	guard guard.ConstructorGuard
}

// NewBulkChangeStatusCommand creates a command forcing a batch of orders into
// the given status.
func NewBulkChangeStatusCommand(orderIDs []string, newStatus order.AppStatus, actor string) (BulkChangeStatusCommand, error) {
	cmd := BulkChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setNewStatus(newStatus),
		cmd.setActor(actor),
	); err != nil {
		return BulkChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeStatusCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to transition.
func (c BulkChangeStatusCommand) OrderIDs() []string {
	return c.orderIDs
}

// NewStatus returns the target lifecycle status.
func (c BulkChangeStatusCommand) NewStatus() order.AppStatus {
	return c.newStatus
}

// Actor returns who requested the override.
func (c BulkChangeStatusCommand) Actor() string {
	return c.actor
}

func (c *BulkChangeStatusCommand) setOrderIDs(orderIDs []string) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if id == "" {
			return ErrOrderIDIsRequired
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *BulkChangeStatusCommand) setNewStatus(newStatus order.AppStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *BulkChangeStatusCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
