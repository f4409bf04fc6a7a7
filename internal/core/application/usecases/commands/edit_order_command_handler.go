package commands

import (
	"context"
	"time"

	"ordernotify/internal/pkg/orderlock"
)

// EditOrderCommandHandler replaces an order's customer details and items.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.KeyedMutex
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory, locks *orderlock.KeyedMutex) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle applies the edit. Archived orders reject the change.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	if err = target.ApplyEdit(cmd.Customer(), cmd.Items(), cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
