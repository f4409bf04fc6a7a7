package commands

import (
	"context"
	"errors"
	"time"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/orderlock"
)

// BulkChangeStatusResult reports the per-order outcome of a bulk override.
type BulkChangeStatusResult struct {
	// Changed lists the orders that were transitioned.
	Changed []string
	// Skipped lists the orders left untouched because they are archived.
	Skipped []string
}

// BulkChangeStatusCommandHandler forces a batch of orders into a target
// status. Each order is processed in its own transaction under its own lock;
// one bad order does not roll back the rest of the batch. Archived orders are
// skipped and reported, never transitioned.
type BulkChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.KeyedMutex
}

// NewBulkChangeStatusCommandHandler creates a handler for bulk overrides.
func NewBulkChangeStatusCommandHandler(uowFactory OrderUoWFactory, locks *orderlock.KeyedMutex) BulkChangeStatusCommandHandler {
	return BulkChangeStatusCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle transitions every order in the batch, appending exactly one audit
// entry per changed order.
func (h *BulkChangeStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkChangeStatusCommand,
) (BulkChangeStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkChangeStatusResult{}, err
	}

	result := BulkChangeStatusResult{}
	for _, orderID := range cmd.OrderIDs() {
		changed, err := h.changeOne(ctx, orderID, cmd.NewStatus(), cmd.Actor())
		if errors.Is(err, order.ErrOrderIsArchived) {
			result.Skipped = append(result.Skipped, orderID)
			continue
		}
		if err != nil {
			return result, err
		}
		if changed {
			result.Changed = append(result.Changed, orderID)
		}
	}

	return result, nil
}

func (h *BulkChangeStatusCommandHandler) changeOne(
	ctx context.Context,
	orderID string,
	newStatus order.AppStatus,
	actor string,
) (bool, error) {
	release := h.locks.Acquire(orderID)
	defer release()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	if err = target.ForceStatus(newStatus, actor, time.Now()); err != nil {
		return false, err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
