package commands_test

import (
	"testing"

	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendNotificationCommand(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		actor   string
		wantErr error
	}{
		{
			name:    "valid command",
			orderID: "ORD-1001",
			actor:   "Admin",
		},
		{
			name:    "empty order id",
			orderID: "",
			actor:   "Admin",
			wantErr: commands.ErrOrderIDIsRequired,
		},
		{
			name:    "empty actor",
			orderID: "ORD-1001",
			actor:   "",
			wantErr: commands.ErrActorIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewSendNotificationCommand(tt.orderID, tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, cmd.Validate())
			assert.Equal(t, tt.orderID, cmd.OrderID())
			assert.Equal(t, tt.actor, cmd.Actor())
			assert.Empty(t, cmd.Intent())
			assert.Empty(t, cmd.CustomText())
		})
	}
}

func TestNewSendNotificationCommandWithIntent(t *testing.T) {
	cmd, err := commands.NewSendNotificationCommandWithIntent(
		"ORD-1001", "Admin", order.IntentConfirmationReminder, "edited text")

	require.NoError(t, err)
	assert.Equal(t, order.IntentConfirmationReminder, cmd.Intent())
	assert.Equal(t, "edited text", cmd.CustomText())
}

func TestNewSendNotificationCommandWithIntent_UnknownIntent(t *testing.T) {
	_, err := commands.NewSendNotificationCommandWithIntent(
		"ORD-1001", "Admin", order.MessageIntent("no_such_intent"), "")

	assert.Error(t, err)
}

func TestSendNotificationCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.SendNotificationCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrSendNotificationCommandIsNotConstructed)
}
