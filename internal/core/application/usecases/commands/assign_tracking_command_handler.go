package commands

import (
	"context"
	"time"

	"ordernotify/internal/pkg/orderlock"
)

// AssignTrackingCommandHandler records a courier consignment number on an
// order so the dispatch notification and courier polling can proceed.
type AssignTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.KeyedMutex
}

// NewAssignTrackingCommandHandler creates a handler for tracking assignment.
func NewAssignTrackingCommandHandler(uowFactory OrderUoWFactory, locks *orderlock.KeyedMutex) AssignTrackingCommandHandler {
	return AssignTrackingCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle stores the consignment number and records the assignment in the
// order's audit trail.
func (h *AssignTrackingCommandHandler) Handle(ctx context.Context, cmd AssignTrackingCommand) error {
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

	if err = target.AssignTracking(cmd.TrackingNumber(), cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
