package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordernotify/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierPollingJob       *CourierPollingJob
	confirmationReminderJob *ConfirmationReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution; the
// polling interval comes from the stored settings.
func NewJobManager(
	pollHandler *commands.PollCourierStatusesCommandHandler,
	reminderHandler *commands.SendConfirmationRemindersCommandHandler,
	pollingInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierPollingJob:       NewCourierPollingJob(pollHandler, pollingInterval, logger),
		confirmationReminderJob: NewConfirmationReminderJob(reminderHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierPollingJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier polling job: %w", err)
	}

	if err := jm.confirmationReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierPollingJob.Stop()
		return fmt.Errorf("failed to start confirmation reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.confirmationReminderJob.Stop()
	jm.courierPollingJob.Stop()
}
