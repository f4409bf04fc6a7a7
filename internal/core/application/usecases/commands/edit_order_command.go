package commands

import (
	"errors"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents replacing an order's customer details and items
// from the edit workflow. Orchestration state is untouched.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	customer order.CustomerDetails
	items    []order.Item
	actor    string

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit an order's details.
func NewEditOrderCommand(orderID string, customer order.CustomerDetails, items []order.Item, actor string) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setActor(actor),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c EditOrderCommand) OrderID() string {
	return c.orderID
}

// Customer returns the replacement customer details.
func (c EditOrderCommand) Customer() order.CustomerDetails {
	return c.customer
}

// Items returns the replacement order lines.
func (c EditOrderCommand) Items() []order.Item {
	return c.items
}

// Actor returns who edited the order.
func (c EditOrderCommand) Actor() string {
	return c.actor
}

func (c *EditOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setCustomer(customer order.CustomerDetails) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *EditOrderCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *EditOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
