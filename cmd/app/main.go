package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"tableside/cmd"
	httpin "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/in/ws"
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/adapters/out/postgres/staffrepo"
	"tableside/internal/adapters/out/postgres/tablerepo"
	"tableside/internal/adapters/out/rabbitmq"
	"tableside/internal/core/application/notifications"
	"tableside/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	eventFeed, closeFeed := setupEventFeed(configs, logger)
	defer closeFeed()

	app := cmd.NewCompositionRoot(configs, gormDB, eventFeed, logger)

	jobManager := jobs.NewJobManager(app.CreateReconcileTablesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, using environment variables")
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&tablerepo.TableDTO{},
		&staffrepo.WaiterDTO{},
		&staffrepo.WaiterTableDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// setupEventFeed connects the optional RabbitMQ event feed. A missing URL
// disables the feed; a failed connection is fatal because a configured
// broker is expected to be reachable.
func setupEventFeed(configs cmd.Config, logger *slog.Logger) (notifications.EventFeed, func()) {
	if configs.RabbitURL == "" {
		logger.Info("RabbitMQ URL not configured, event feed disabled")
		return nil, func() {}
	}

	publisher, err := rabbitmq.NewPublisher(configs.RabbitURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	return publisher, func() { _ = publisher.Close() }
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetTablesQueryHandler(),
	)

	e.POST("/api/v1/orders", server.PlaceOrder)
	e.POST("/api/v1/orders/:id/status", server.AdvanceOrder)
	e.GET("/api/v1/orders/open", server.GetOpenOrders)
	e.GET("/api/v1/tables", server.GetTables)

	wsHandler := ws.NewHandler(app.Registry(), logger)
	e.GET("/ws", wsHandler.Serve)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
