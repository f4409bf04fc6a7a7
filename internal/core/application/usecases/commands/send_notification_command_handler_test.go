package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/settings"
	"ordernotify/internal/core/domain/model/template"
	"ordernotify/internal/core/domain/services"
	"ordernotify/internal/core/ports"
	"ordernotify/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func newOrderSnapshot(t *testing.T, appStatus order.AppStatus, messageStatus order.MessageStatus, tracking string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder("ORD-3001", order.CustomerDetails{
		Name: "Ahmed Raza", Phone: "0300 1234567", Address: "House 123", City: "Lahore",
		PaymentMethod: "COD", CurrencySymbol: "PKR", Price: 2500,
	}, nil, time.Now().Add(-time.Hour),
		appStatus, messageStatus, nil,
		tracking, nil, "", false, false, nil)
	require.NoError(t, err)
	return o
}

func noOverrides() map[order.MessageIntent]template.Definition {
	return map[order.MessageIntent]template.Definition{}
}

func TestSendNotificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := newOrderSnapshot(t, order.PendingConfirmation, order.MessagePending, "")
	cmd, err := commands.NewSendNotificationCommand("ORD-3001", "Admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	templateRepo := new(MockTemplateRepository)
	settingsRepo := new(MockSettingsRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		uow.On("TemplateRepository").Return(templateRepo).Once(),
		templateRepo.On("GetOverrides", mock.Anything).Return(noOverrides(), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(settings.Default(), nil).Once(),
		sender.On("Send", mock.Anything, "923001234567", mock.AnythingOfType("string")).
			Return(ports.SendResult{Succeeded: true, ProviderResponse: "id=abc"}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, outcome.Sent)
	assert.Equal(t, order.IntentNewOrderInitial, outcome.Intent)
	assert.Contains(t, outcome.RenderedText, "Ahmed Raza")
	assert.Equal(t, order.MessageSent, target.MessageStatus())
	orderRepo.AssertExpectations(t)
	sender.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendNotificationCommandHandler_Handle_MissingTrackingNumber(t *testing.T) {
	ctx := t.Context()
	target := newOrderSnapshot(t, order.Dispatched, order.MessagePending, "")
	cmd, err := commands.NewSendNotificationCommand("ORD-3001", "Admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, services.ErrTrackingNumberMissing)
	assert.Equal(t, order.ErrorMissingCN, target.MessageStatus())
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendNotificationCommandHandler_Handle_SendFailure(t *testing.T) {
	ctx := t.Context()
	target := newOrderSnapshot(t, order.PendingConfirmation, order.MessagePending, "")
	cmd, err := commands.NewSendNotificationCommand("ORD-3001", "Admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	templateRepo := new(MockTemplateRepository)
	settingsRepo := new(MockSettingsRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		uow.On("TemplateRepository").Return(templateRepo).Once(),
		templateRepo.On("GetOverrides", mock.Anything).Return(noOverrides(), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(settings.Default(), nil).Once(),
		sender.On("Send", mock.Anything, "923001234567", mock.AnythingOfType("string")).
			Return(ports.SendResult{}, errors.New("gateway timeout")).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, outcome.Sent)
	assert.Equal(t, "gateway timeout", outcome.ProviderResponse)
	assert.Equal(t, order.ErrorSendingFailed, target.MessageStatus())
	// Lifecycle status stays put on transport failure.
	assert.Equal(t, order.PendingConfirmation, target.AppStatus())
}

func TestSendNotificationCommandHandler_Handle_InvalidPhone(t *testing.T) {
	ctx := t.Context()
	target, err := order.RestoreOrder("ORD-3001", order.CustomerDetails{
		Name: "Ahmed Raza", Phone: "12", CurrencySymbol: "PKR", Price: 2500,
	}, nil, time.Now().Add(-time.Hour),
		order.PendingConfirmation, order.MessagePending, nil,
		"", nil, "", false, false, nil)
	require.NoError(t, err)
	cmd, err := commands.NewSendNotificationCommand("ORD-3001", "Admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	templateRepo := new(MockTemplateRepository)
	settingsRepo := new(MockSettingsRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		uow.On("TemplateRepository").Return(templateRepo).Once(),
		templateRepo.On("GetOverrides", mock.Anything).Return(noOverrides(), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(settings.Default(), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.ErrorMissingData, target.MessageStatus())
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendNotificationCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	target := newOrderSnapshot(t, order.Delivered, order.Notified, "CN1")
	cmd, err := commands.NewSendNotificationCommand("ORD-3001", "Admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrNoPendingIntent)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendNotificationCommandHandler_Handle_PinnedReminderOnConfirmedOrder(t *testing.T) {
	ctx := t.Context()
	target := newOrderSnapshot(t, order.Processing, order.CustomerConfirmed, "")
	cmd, err := commands.NewSendNotificationCommandWithIntent(
		"ORD-3001", commands.ReminderActor, order.IntentConfirmationReminder, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrNoPendingIntent)
	assert.Equal(t, order.CustomerConfirmed, target.MessageStatus())
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSendNotificationCommandHandler_Handle_CustomTextAndPinnedIntent(t *testing.T) {
	ctx := t.Context()
	target := newOrderSnapshot(t, order.PendingConfirmation, order.MessageSent, "")
	cmd, err := commands.NewSendNotificationCommandWithIntent(
		"ORD-3001", "Admin", order.IntentConfirmationReminder, "Custom reminder text")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sender := new(MockNotificationSender)
	uow := new(MockNotifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-3001").Return(target, nil).Once(),
		sender.On("Send", mock.Anything, "923001234567", "Custom reminder text").
			Return(ports.SendResult{Succeeded: true}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendNotificationCommandHandler(factory, sender, orderlock.NewKeyedMutex())
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, outcome.Sent)
	assert.Equal(t, order.ConfirmationSent, target.MessageStatus())
	sender.AssertExpectations(t)
}
