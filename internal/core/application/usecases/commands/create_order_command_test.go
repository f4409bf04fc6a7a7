package commands_test

import (
	"testing"

	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() order.CustomerDetails {
	return order.CustomerDetails{
		Name:           "Ahmed Raza",
		Phone:          "923001234567",
		Address:        "House 123, Gulberg",
		City:           "Lahore",
		PaymentMethod:  "COD",
		DeliveryMethod: "TCS",
		CurrencySymbol: "PKR",
		Price:          2500,
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	items := []order.Item{{Name: "Wireless Mouse", Quantity: 1}}

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validCustomer(), items, "Admin")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Ahmed Raza", cmd.Customer().Name)
		assert.Equal(t, items, cmd.Items())
		assert.Equal(t, "Admin", cmd.Actor())
	})

	t.Run("should return error for invalid customer", func(t *testing.T) {
		customer := validCustomer()
		customer.Name = ""

		_, err := commands.NewCreateOrderCommand(customer, items, "Admin")

		require.Error(t, err)
	})

	t.Run("should return error for invalid item", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validCustomer(),
			[]order.Item{{Name: "Mouse", Quantity: 0}}, "Admin")

		require.Error(t, err)
	})

	t.Run("should return error for empty actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validCustomer(), items, "")

		require.ErrorIs(t, err, commands.ErrActorIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
