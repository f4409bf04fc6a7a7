package commands

import (
	"errors"

	"ordernotify/internal/pkg/guard"
)

var ErrPollCourierStatusesCommandIsNotConstructed = errors.New(
	"PollCourierStatusesCommand must be created via NewPollCourierStatusesCommand constructor",
)

// PollCourierStatusesCommand represents one courier polling cycle over all
// trackable orders. This is a parameterless command issued by the polling job.
type PollCourierStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewPollCourierStatusesCommand creates a command for one polling cycle.
func NewPollCourierStatusesCommand() PollCourierStatusesCommand {
	return PollCourierStatusesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PollCourierStatusesCommand) Validate() error {
	return c.guard.Validate(ErrPollCourierStatusesCommandIsNotConstructed)
}
