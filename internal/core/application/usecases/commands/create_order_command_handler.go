package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ordernotify/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Mints an opaque order identifier and persists the order in Pending
// Confirmation with an initial notification due.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the new order's
// identifier. Uses a transaction to ensure the order is properly persisted or
// rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	id := mintOrderID()
	newOrder, err := order.NewOrder(id, cmd.Customer(), cmd.Items(), cmd.Actor(), time.Now())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return id, nil
}

// mintOrderID produces an "ORD-" prefixed identifier from a random UUID's
// first segment, short enough to read aloud over the phone.
func mintOrderID() string {
	raw := uuid.NewString()
	return fmt.Sprintf("ORD-%s", strings.ToUpper(strings.SplitN(raw, "-", 2)[0]))
}
