package cmd

import (
	"context"
	"log/slog"
	"time"

	"ordernotify/internal/adapters/out/courier"
	"ordernotify/internal/adapters/out/postgres"
	"ordernotify/internal/adapters/out/whatsapp"
	"ordernotify/internal/core/application/usecases/commands"
	"ordernotify/internal/core/application/usecases/queries"
	"ordernotify/internal/core/domain/services"
	"ordernotify/internal/pkg/orderlock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sender     *whatsapp.Client
	reconciler services.Reconciler
	locks      *orderlock.KeyedMutex
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	feed, err := courier.NewClient(config.CourierFeedURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	reconciler, err := services.NewReconciler(feed)
	if err != nil {
		return CompositionRoot{}, err
	}

	sender, err := whatsapp.NewClient(config.WhatsappGatewayURL, config.WhatsappAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sender:     sender,
		reconciler: reconciler,
		locks:      orderlock.NewKeyedMutex(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notifyUoWFactory() commands.NotifyUoWFactory {
	return FuncNotifyUoWFactory(func() commands.NotifyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateAssignTrackingCommandHandler() commands.AssignTrackingCommandHandler {
	return commands.NewAssignTrackingCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateBulkChangeStatusCommandHandler() commands.BulkChangeStatusCommandHandler {
	return commands.NewBulkChangeStatusCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateSendNotificationCommandHandler() *commands.SendNotificationCommandHandler {
	handler := commands.NewSendNotificationCommandHandler(c.notifyUoWFactory(), c.sender, c.locks)
	return &handler
}

func (c *CompositionRoot) CreatePollCourierStatusesCommandHandler() *commands.PollCourierStatusesCommandHandler {
	handler := commands.NewPollCourierStatusesCommandHandler(
		c.orderUoWFactory(),
		c.reconciler,
		c.CreateSendNotificationCommandHandler(),
		c.locks,
		c.logger,
	)
	return &handler
}

func (c *CompositionRoot) CreateSendConfirmationRemindersCommandHandler() *commands.SendConfirmationRemindersCommandHandler {
	handler := commands.NewSendConfirmationRemindersCommandHandler(
		c.notifyUoWFactory(),
		c.CreateSendNotificationCommandHandler(),
		c.locks,
		c.logger,
	)
	return &handler
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardMetricsQueryHandler() queries.GetDashboardMetricsQueryHandler {
	return queries.NewGetDashboardMetricsQueryHandler(c.gormDB)
}

// PollingInterval reads the courier polling cadence from the stored settings.
func (c *CompositionRoot) PollingInterval(ctx context.Context) (time.Duration, error) {
	cfg, err := c.uowFactory.Create().SettingsRepository().Get(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.PollingInterval(), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotifyUoWFactory func() commands.NotifyUoW

func (f FuncNotifyUoWFactory) Create() commands.NotifyUoW {
	return f()
}
