package commands_test

import (
	"context"
	"errors"
	"time"

	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/settings"
	"ordernotify/internal/core/domain/model/template"
	"ordernotify/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllTrackable(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllAwaitingReminder(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTemplateRepository struct{ mock.Mock }

func (m *MockTemplateRepository) GetOverrides(ctx context.Context) (map[order.MessageIntent]template.Definition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.MessageIntent]template.Definition), args.Error(1)
}
func (m *MockTemplateRepository) Upsert(_ context.Context, _ order.MessageIntent, _ template.Definition) error {
	return errors.New("not implemented in mock")
}
func (m *MockTemplateRepository) Delete(_ context.Context, _ order.MessageIntent) error {
	return errors.New("not implemented in mock")
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Settings), args.Error(1)
}
func (m *MockSettingsRepository) Save(_ context.Context, _ settings.Settings) error {
	return errors.New("not implemented in mock")
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, phoneNumber, text string) (ports.SendResult, error) {
	args := m.Called(ctx, phoneNumber, text)
	return args.Get(0).(ports.SendResult), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifyUoW struct{ mock.Mock }

func (m *MockNotifyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotifyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotifyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotifyUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockNotifyUoW) TemplateRepository() ports.TemplateRepository {
	args := m.Called()
	return args.Get(0).(ports.TemplateRepository)
}
func (m *MockNotifyUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockNotifyUoWFactory struct{ mock.Mock }

func (m *MockNotifyUoWFactory) Create() commands.NotifyUoW {
	args := m.Called()
	return args.Get(0).(commands.NotifyUoW)
}
