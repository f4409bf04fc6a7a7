package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordernotify/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierPollingJob runs the courier reconciliation cycle on the configured
// cadence. Each cycle visits every trackable order, advances its courier
// history, and sends whatever notifications the new statuses demand.
type CourierPollingJob struct {
	handler  *commands.PollCourierStatusesCommandHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCourierPollingJob creates the polling job with the given cadence.
func NewCourierPollingJob(
	handler *commands.PollCourierStatusesCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *CourierPollingJob {
	return &CourierPollingJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "courier_polling_job"),
	}
}

// Start begins the polling job on its configured interval.
func (j *CourierPollingJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		outcome, err := j.handler.Handle(ctx, commands.NewPollCourierStatusesCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Courier polling cycle failed", "error", err)
			return
		}
		if outcome.Updated > 0 {
			j.logger.InfoContext(ctx, "Courier polling cycle finished",
				"polled", outcome.Polled,
				"updated", outcome.Updated,
				"notifications_sent", outcome.NotificationsSent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier polling job started", "interval", j.interval.String())
	return nil
}

// Stop stops the polling job.
func (j *CourierPollingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier polling job stopped")
}
