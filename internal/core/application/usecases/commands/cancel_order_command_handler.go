package commands

import (
	"context"
	"time"

	"ordernotify/internal/pkg/orderlock"
)

// CancelOrderCommandHandler cancels an order and leaves a cancellation
// notification pending for the operator to send.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.KeyedMutex
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, locks *orderlock.KeyedMutex) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle marks the order cancelled. Archived orders reject the change.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = target.MarkCancelled(cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
