package order

import (
	"fmt"

	"ordernotify/internal/pkg/errs"
)

// Item is a single line of an order: a product name and a positive quantity.
type Item struct {
	Name     string
	Quantity int
}

// Validate checks the item invariants: non-empty name, quantity > 0.
func (i Item) Validate() error {
	if i.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	return nil
}
