package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/services"
	"ordernotify/internal/pkg/orderlock"
)

// PollingActor tags audit entries produced by the courier polling cycle.
const PollingActor = "System: Courier Polling"

// PollCourierStatusesOutcome summarizes one polling cycle.
type PollCourierStatusesOutcome struct {
	// Polled is the number of trackable orders visited.
	Polled int
	// Updated is the number of orders that gained a courier event.
	Updated int
	// NotificationsSent is the number of courier notifications delivered.
	NotificationsSent int
}

// PollCourierStatusesCommandHandler runs one courier polling cycle: every
// trackable non-terminal order is reconciled against the courier feed, and
// orders whose new status demands a customer message get it sent immediately.
//
// Each order is reconciled in its own transaction under its own lock, so a
// slow or failing order never stalls the rest of the cycle. Per-order
// failures are logged and skipped; the cycle always completes.
type PollCourierStatusesCommandHandler struct {
	uowFactory  OrderUoWFactory
	reconciler  services.Reconciler
	sendHandler *SendNotificationCommandHandler
	locks       *orderlock.KeyedMutex
	logger      *slog.Logger
}

// NewPollCourierStatusesCommandHandler creates the polling cycle handler.
func NewPollCourierStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	reconciler services.Reconciler,
	sendHandler *SendNotificationCommandHandler,
	locks *orderlock.KeyedMutex,
	logger *slog.Logger,
) PollCourierStatusesCommandHandler {
	return PollCourierStatusesCommandHandler{
		uowFactory:  uowFactory,
		reconciler:  reconciler,
		sendHandler: sendHandler,
		locks:       locks,
		logger:      logger.With("component", "poll_courier_statuses"),
	}
}

// Handle executes one polling cycle and reports what it did.
func (h *PollCourierStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd PollCourierStatusesCommand,
) (PollCourierStatusesOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return PollCourierStatusesOutcome{}, err
	}

	trackable, err := h.loadTrackable(ctx)
	if err != nil {
		return PollCourierStatusesOutcome{}, err
	}

	outcome := PollCourierStatusesOutcome{Polled: len(trackable)}
	for _, orderID := range trackable {
		changed, newStatus, err := h.reconcileOne(ctx, orderID)
		if err != nil {
			h.logger.Error("reconcile failed", "order_id", orderID, "error", err)
			continue
		}
		if !changed {
			continue
		}
		outcome.Updated++

		if !autoNotifyStatus(newStatus) {
			continue
		}
		if h.notifyAfterReconcile(ctx, orderID) {
			outcome.NotificationsSent++
		}
	}

	return outcome, nil
}

// loadTrackable reads the ids of all orders the cycle should visit. The
// aggregates themselves are re-read per order under the order's lock.
func (h *PollCourierStatusesCommandHandler) loadTrackable(ctx context.Context) ([]string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllTrackable(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}

// reconcileOne advances one order by at most one courier event and reports
// the order's lifecycle status after reconciliation.
func (h *PollCourierStatusesCommandHandler) reconcileOne(ctx context.Context, orderID string) (bool, order.AppStatus, error) {
	release := h.locks.Acquire(orderID)
	defer release()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, order.AppStatusUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return false, order.AppStatusUnknown, err
	}

	changed, err := h.reconciler.Reconcile(ctx, target, time.Now())
	if err != nil || !changed {
		return false, target.AppStatus(), err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return false, order.AppStatusUnknown, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, order.AppStatusUnknown, err
	}
	return true, target.AppStatus(), nil
}

// autoNotifyStatus reports whether a reconciled status triggers an automatic
// customer message. Other courier updates wait for the operator.
func autoNotifyStatus(status order.AppStatus) bool {
	switch status {
	case order.OutForDelivery, order.AddressIssue, order.Delivered:
		return true
	default:
		return false
	}
}

// notifyAfterReconcile sends the notification the reconciled order is now due
// for, if any. Send failures land on the order itself; nothing-pending is not
// an error.
func (h *PollCourierStatusesCommandHandler) notifyAfterReconcile(ctx context.Context, orderID string) bool {
	cmd, err := NewSendNotificationCommand(orderID, PollingActor)
	if err != nil {
		h.logger.Error("building send command failed", "order_id", orderID, "error", err)
		return false
	}

	outcome, err := h.sendHandler.Handle(ctx, cmd)
	if errors.Is(err, ErrNoPendingIntent) {
		return false
	}
	if errors.Is(err, services.ErrTrackingNumberMissing) || errors.Is(err, order.ErrOrderIsArchived) {
		return false
	}
	if err != nil {
		h.logger.Error("courier notification failed", "order_id", orderID, "error", err)
		return false
	}
	return outcome.Sent
}
