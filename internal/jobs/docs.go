// Package jobs provides scheduled background tasks for the notification
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the orchestration core depends on.
//
// # Available Jobs
//
// 1. CourierPollingJob - Polls the courier feed for every trackable order and
// reconciles lifecycle statuses, sending courier-driven notifications.
// 2. ConfirmationReminderJob - Sweeps for orders still awaiting customer
// confirmation past the configured delay and sends the reminder message.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pollHandler, reminderHandler, pollingInterval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The polling job cadence comes from the stored settings (polling interval in
// seconds); the reminder sweep runs once a minute, which is granular enough
// for an hours-scale confirmation delay.
//
// # Error Handling
//
// Both jobs log cycle-level failures and keep running; per-order failures are
// already contained inside the handlers and never abort a cycle.
package jobs
