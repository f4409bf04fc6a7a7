package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/orderlock"
)

// ReminderActor tags audit entries produced by the reminder sweep.
const ReminderActor = "System: Confirmation Reminder"

// SendConfirmationRemindersOutcome summarizes one reminder sweep.
type SendConfirmationRemindersOutcome struct {
	// Due is the number of orders overdue for a reminder.
	Due int
	// Sent is the number of reminders delivered.
	Sent int
	// SkippedInFlight is the number of orders skipped because another
	// notification on them was already in progress.
	SkippedInFlight int
}

// SendConfirmationRemindersCommandHandler sweeps for orders still awaiting
// customer confirmation past the configured delay and sends each the reminder
// message.
//
// Orders with a notification already in flight are skipped rather than
// queued; the next sweep picks them up if they are still due. This keeps the
// sweep from double-firing against an order an operator is messaging right
// now.
type SendConfirmationRemindersCommandHandler struct {
	uowFactory  NotifyUoWFactory
	sendHandler *SendNotificationCommandHandler
	locks       *orderlock.KeyedMutex
	logger      *slog.Logger
}

// NewSendConfirmationRemindersCommandHandler creates the reminder sweep handler.
func NewSendConfirmationRemindersCommandHandler(
	uowFactory NotifyUoWFactory,
	sendHandler *SendNotificationCommandHandler,
	locks *orderlock.KeyedMutex,
	logger *slog.Logger,
) SendConfirmationRemindersCommandHandler {
	return SendConfirmationRemindersCommandHandler{
		uowFactory:  uowFactory,
		sendHandler: sendHandler,
		locks:       locks,
		logger:      logger.With("component", "send_confirmation_reminders"),
	}
}

// Handle executes one reminder sweep and reports what it did.
func (h *SendConfirmationRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendConfirmationRemindersCommand,
) (SendConfirmationRemindersOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return SendConfirmationRemindersOutcome{}, err
	}

	due, err := h.loadDue(ctx)
	if err != nil {
		return SendConfirmationRemindersOutcome{}, err
	}

	outcome := SendConfirmationRemindersOutcome{Due: len(due)}
	for _, orderID := range due {
		if h.locks.InFlight(orderID) {
			outcome.SkippedInFlight++
			continue
		}

		sendCmd, err := NewSendNotificationCommandWithIntent(
			orderID, ReminderActor, order.IntentConfirmationReminder, "")
		if err != nil {
			h.logger.Error("building reminder command failed", "order_id", orderID, "error", err)
			continue
		}

		result, err := h.sendHandler.Handle(ctx, sendCmd)
		if errors.Is(err, ErrNoPendingIntent) {
			// Confirmed between the due-query and the send; nothing to remind.
			continue
		}
		if err != nil {
			h.logger.Error("reminder failed", "order_id", orderID, "error", err)
			continue
		}
		if result.Sent {
			outcome.Sent++
		}
	}

	return outcome, nil
}

// loadDue reads the ids of orders overdue for a reminder, using the
// configured confirmation delay as the cutoff.
func (h *SendConfirmationRemindersCommandHandler) loadDue(ctx context.Context) ([]string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cfg, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-cfg.ConfirmationDelay())
	orders, err := uow.OrderRepository().GetAllAwaitingReminder(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}
