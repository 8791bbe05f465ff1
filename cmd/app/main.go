package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dineease/cmd"
	"dineease/internal/adapters/out/payments"
	"dineease/internal/adapters/out/postgres/orderrepo"
	"dineease/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	var gormDB *gorm.DB
	if configs.UsesPostgres() {
		gormDB = openDatabase(configs)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreateUpdateOrderStatusCommandHandler(),
		root.OrderRepository(),
		configs.TrackingInterval,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file found, relying on environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		TrackingInterval: envDuration("TRACKING_INTERVAL_SECONDS", jobs.DefaultTrackingInterval),
		PaymentDelay:     envDuration("PAYMENT_DELAY_MS", payments.DefaultProcessingDelay),
		PreferencesPath:  envOrDefault("PREFERENCES_PATH", "preferences.json"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Warnf("Ignoring invalid %s=%q", key, raw)
		return fallback
	}

	unit := time.Second
	if key == "PAYMENT_DELAY_MS" {
		unit = time.Millisecond
	}
	return time.Duration(value) * unit
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
