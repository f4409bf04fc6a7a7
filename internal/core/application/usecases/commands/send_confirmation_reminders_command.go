package commands

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var ErrSendConfirmationRemindersCommandIsNotConstructed = errors.New(
	"SendConfirmationRemindersCommand must be created via NewSendConfirmationRemindersCommand constructor",
)

// SendConfirmationRemindersCommand represents one reminder sweep: find orders
// whose initial notification went unanswered past the configured delay and
// send each a confirmation reminder. Issued by the reminder job.
type SendConfirmationRemindersCommand struct {
	guard guard.ConstructorGuard
}

// NewSendConfirmationRemindersCommand creates a command for one reminder sweep.
func NewSendConfirmationRemindersCommand() SendConfirmationRemindersCommand {
	return SendConfirmationRemindersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SendConfirmationRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendConfirmationRemindersCommandIsNotConstructed)
}
