package commands_test

import (
	"testing"
	"time"

	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignTrackingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target, err := order.RestoreOrder("ORD-8001", order.CustomerDetails{
		Name: "Ahmed Raza", Phone: "923001234567", CurrencySymbol: "PKR", Price: 2500,
	}, nil, time.Now().Add(-time.Hour),
		order.Processing, order.CustomerConfirmed, nil,
		"", nil, "", false, false, nil)
	require.NoError(t, err)
	cmd, err := commands.NewAssignTrackingCommand("ORD-8001", "CN-900", "Admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-8001").Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignTrackingCommandHandler(factory, orderlock.NewKeyedMutex())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "CN-900", target.TrackingNumber())
	uow.AssertExpectations(t)
}

func TestNewAssignTrackingCommand_EmptyTrackingNumber(t *testing.T) {
	_, err := commands.NewAssignTrackingCommand("ORD-8001", "", "Admin")

	assert.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)
}
