package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordernotify/internal/core/domain/model/kernel"
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/template"
	"ordernotify/internal/core/domain/services"
	"ordernotify/internal/core/ports"
	"ordernotify/internal/pkg/orderlock"
)

// ErrNoPendingIntent is returned when the selection table finds nothing due
// for the order. This is a normal outcome, not a fault.
var ErrNoPendingIntent = errors.New("no notification is pending for this order")

// DefaultSendTimeout bounds a single notification gateway call.
const DefaultSendTimeout = 15 * time.Second

// SendNotificationOutcome reports what a send attempt did.
type SendNotificationOutcome struct {
	// Intent is the message type that was sent or attempted.
	Intent order.MessageIntent
	// Sent is true when the gateway accepted the message.
	Sent bool
	// RenderedText is the message body that was sent or attempted.
	RenderedText string
	// ProviderResponse carries the gateway's response or error text.
	ProviderResponse string
}

// SendNotificationCommandHandler runs the full notification pipeline for one
// order: decide the due intent, resolve and render the template, normalize
// the phone number, call the gateway, and commit the resulting state change
// and audit entry.
//
// The pipeline holds the order's mutex for its whole duration so a
// poll-triggered send and a manual send on the same order never interleave.
// Validation failures (missing consignment number, unnormalizable phone) are
// committed onto the order as error message statuses and then returned, so
// the audit trail records the attempt even though no gateway call happened.
type SendNotificationCommandHandler struct {
	uowFactory  NotifyUoWFactory
	sender      ports.NotificationSender
	locks       *orderlock.KeyedMutex
	selector    services.IntentSelector
	sendTimeout time.Duration
}

// NewSendNotificationCommandHandler creates the notification pipeline handler.
// Requires the notification unit of work factory, the gateway, and the shared
// per-order lock set.
func NewSendNotificationCommandHandler(
	uowFactory NotifyUoWFactory,
	sender ports.NotificationSender,
	locks *orderlock.KeyedMutex,
) SendNotificationCommandHandler {
	return SendNotificationCommandHandler{
		uowFactory:  uowFactory,
		sender:      sender,
		locks:       locks,
		selector:    services.NewIntentSelector(),
		sendTimeout: DefaultSendTimeout,
	}
}

// Handle processes the send command and returns the outcome. A failed
// delivery is not an error: the failure lands on the order as
// ErrorSendingFailed and the outcome reports Sent=false.
func (h *SendNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd SendNotificationCommand,
) (SendNotificationOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return SendNotificationOutcome{}, err
	}

	release := h.locks.Acquire(cmd.OrderID())
	defer release()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SendNotificationOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return SendNotificationOutcome{}, err
	}

	intent, err := h.resolveIntent(ctx, uow, target, cmd)
	if err != nil {
		return SendNotificationOutcome{}, err
	}

	text, err := h.renderText(ctx, uow, target, intent, cmd.CustomText())
	if err != nil {
		return SendNotificationOutcome{}, err
	}

	phone, err := kernel.NewPhone(target.Customer().Phone)
	if err != nil {
		reason := fmt.Sprintf("Invalid phone number %q, message not sent.", target.Customer().Phone)
		if recordErr := h.recordValidationFailure(ctx, uow, target, order.ErrorMissingData, reason); recordErr != nil {
			return SendNotificationOutcome{}, recordErr
		}
		return SendNotificationOutcome{Intent: intent, RenderedText: text}, err
	}

	result := h.deliver(ctx, phone, text)

	now := time.Now()
	if result.Succeeded {
		err = target.ApplyNotificationSuccess(intent, text, cmd.Actor(), now)
	} else {
		err = target.ApplyNotificationFailure(intent, result.ProviderResponse, cmd.Actor(), now)
	}
	if err != nil {
		return SendNotificationOutcome{}, err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return SendNotificationOutcome{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return SendNotificationOutcome{}, err
	}

	return SendNotificationOutcome{
		Intent:           intent,
		Sent:             result.Succeeded,
		RenderedText:     text,
		ProviderResponse: result.ProviderResponse,
	}, nil
}

// resolveIntent picks the pinned intent or consults the selection table. A
// dispatch notification blocked on a missing consignment number is committed
// onto the order before the error is returned.
//
// A pinned confirmation reminder re-checks that the order is still awaiting
// confirmation against the freshly loaded aggregate: the reminder sweep pins
// the intent before the order lock is taken, so the order may have been
// confirmed in between.
func (h *SendNotificationCommandHandler) resolveIntent(
	ctx context.Context,
	uow NotifyUoW,
	target *order.Order,
	cmd SendNotificationCommand,
) (order.MessageIntent, error) {
	if cmd.Intent() == order.IntentConfirmationReminder &&
		(target.AppStatus() != order.PendingConfirmation || target.MessageStatus() != order.MessageSent) {
		return "", ErrNoPendingIntent
	}
	if cmd.Intent() != "" {
		return cmd.Intent(), nil
	}

	intent, ok, err := h.selector.Select(target)
	if errors.Is(err, services.ErrTrackingNumberMissing) {
		if recordErr := h.recordValidationFailure(ctx, uow, target, order.ErrorMissingCN,
			"Dispatch attempted, missing CN."); recordErr != nil {
			return "", recordErr
		}
		return "", err
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoPendingIntent
	}
	return intent, nil
}

// renderText returns the operator-edited body unchanged, or resolves the
// intent's template against stored overrides and renders it.
func (h *SendNotificationCommandHandler) renderText(
	ctx context.Context,
	uow NotifyUoW,
	target *order.Order,
	intent order.MessageIntent,
	customText string,
) (string, error) {
	if customText != "" {
		return customText, nil
	}

	overrides, err := uow.TemplateRepository().GetOverrides(ctx)
	if err != nil {
		return "", err
	}
	cfg, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return "", err
	}

	def := template.Resolve(intent, overrides)
	return template.Render(def.Template, target, cfg), nil
}

// recordValidationFailure commits an error message status and audit entry in
// its own right: the send never happened, but the attempt must be visible.
func (h *SendNotificationCommandHandler) recordValidationFailure(
	ctx context.Context,
	uow NotifyUoW,
	target *order.Order,
	status order.MessageStatus,
	reason string,
) error {
	if err := target.RecordSendValidationError(status, reason, "System: Validation", time.Now()); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// deliver calls the gateway with a bounded timeout. A gateway error or an
// expired deadline is a failed delivery, never a hang.
func (h *SendNotificationCommandHandler) deliver(ctx context.Context, phone kernel.Phone, text string) ports.SendResult {
	sendCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
	defer cancel()

	result, err := h.sender.Send(sendCtx, phone.String(), text)
	if err != nil {
		return ports.SendResult{Succeeded: false, ProviderResponse: err.Error()}
	}
	return result
}
