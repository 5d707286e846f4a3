package main

import (
	"fmt"
	"log/slog"
	"os"

	"ordertrack/cmd"
	httpadapter "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/retailerrepo"
	"ordertrack/internal/adapters/out/postgres/trackingrepo"
	"ordertrack/internal/jobs"

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

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreatePlanQueuedTripCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&trackingrepo.EntryDTO{},
		&retailerrepo.RetailerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCreateRetailerCommandHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAllRetailersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", server.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", server.CreateOrder)
	api.POST("/orders/:orderId/status", server.ChangeOrderStatus)
	api.GET("/orders/:orderId/history", server.GetOrderHistory)
	api.GET("/orders/active", server.GetActiveOrders)
	api.POST("/retailers", server.CreateRetailer)
	api.GET("/retailers", server.GetRetailers)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
