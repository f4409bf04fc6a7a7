package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"ordernotify/cmd"
	httpadapter "ordernotify/internal/adapters/in/http"
	"ordernotify/internal/adapters/out/postgres/orderrepo"
	"ordernotify/internal/adapters/out/postgres/settingsrepo"
	"ordernotify/internal/adapters/out/postgres/templaterepo"
	"ordernotify/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	pollingInterval, err := app.PollingInterval(context.Background())
	if err != nil {
		log.Fatalf("Failed to read settings: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreatePollCourierStatusesCommandHandler(),
		app.CreateSendConfirmationRemindersCommandHandler(),
		pollingInterval,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		CourierFeedURL:     goDotEnvVariable("COURIER_FEED_URL"),
		WhatsappGatewayURL: goDotEnvVariable("WHATSAPP_GATEWAY_URL"),
		WhatsappAPIKey:     goDotEnvVariable("WHATSAPP_API_KEY"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&templaterepo.TemplateDTO{},
		&settingsrepo.SettingsDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateAssignTrackingCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSendNotificationCommandHandler(),
		app.CreateBulkChangeStatusCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetDashboardMetricsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
