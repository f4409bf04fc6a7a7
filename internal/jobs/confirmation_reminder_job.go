package jobs

import (
	"context"
	"log/slog"

	"ordernotify/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reminderSweepSchedule runs the sweep once a minute. The confirmation delay
// is measured in hours, so minute granularity is more than enough.
const reminderSweepSchedule = "0 * * * * *"

// ConfirmationReminderJob sweeps for orders overdue for a confirmation
// reminder and sends each the reminder message.
type ConfirmationReminderJob struct {
	handler *commands.SendConfirmationRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewConfirmationReminderJob creates the reminder sweep job.
func NewConfirmationReminderJob(
	handler *commands.SendConfirmationRemindersCommandHandler,
	logger *slog.Logger,
) *ConfirmationReminderJob {
	return &ConfirmationReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "confirmation_reminder_job"),
	}
}

// Start begins the reminder sweep job, running once a minute.
func (j *ConfirmationReminderJob) Start() error {
	_, err := j.cron.AddFunc(reminderSweepSchedule, func() {
		ctx := context.Background()

		outcome, err := j.handler.Handle(ctx, commands.NewSendConfirmationRemindersCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Confirmation reminder sweep failed", "error", err)
			return
		}
		if outcome.Due > 0 {
			j.logger.InfoContext(ctx, "Confirmation reminder sweep finished",
				"due", outcome.Due,
				"sent", outcome.Sent,
				"skipped_in_flight", outcome.SkippedInFlight)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Confirmation reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder sweep job.
func (j *ConfirmationReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Confirmation reminder job stopped")
}
