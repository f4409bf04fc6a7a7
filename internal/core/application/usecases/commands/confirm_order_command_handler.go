package commands

import (
	"context"
	"time"

	"ordernotify/internal/pkg/orderlock"
)

// ConfirmOrderCommandHandler records a customer's order confirmation.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.KeyedMutex
}

// NewConfirmOrderCommandHandler creates a handler for customer confirmations.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, locks *orderlock.KeyedMutex) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle moves the order into Processing with message status Customer
// Confirmed. Fails when the order is not awaiting confirmation.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release := h.locks.Acquire(cmd.OrderID())
	defer release()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.ConfirmByCustomer(cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
