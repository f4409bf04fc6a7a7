package commands

import (
	"errors"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// CreateOrderCommand represents a request to register a new customer order.
// The order starts in Pending Confirmation with an initial notification due.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.CustomerDetails{
//	    Name: "Ahmed Raza", Phone: "923001234567",
//	    Address: "House 123, Gulberg", City: "Lahore",
//	    PaymentMethod: "COD", CurrencySymbol: "PKR", Price: 2500,
//	}, items, "Admin")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer order.CustomerDetails
	items    []order.Item
	actor    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the customer details, every item, and the acting user.
func NewCreateOrderCommand(customer order.CustomerDetails, items []order.Item, actor string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the customer and shipping details.
func (c CreateOrderCommand) Customer() order.CustomerDetails {
	return c.customer
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Actor returns who is creating the order.
func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerDetails) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
