package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"tracking/cmd"
	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/kafka"
	"tracking/internal/adapters/out/postgres/customerrepo"
	"tracking/internal/adapters/out/postgres/shipmentrepo"
	"tracking/internal/adapters/out/postgres/tenantrepo"
	rediscache "tracking/internal/adapters/out/redis"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq" // side-effect import: registers "postgres" driver for database/sql
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const trackingCacheTTL = 5 * time.Minute

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustOpenDatabase(configs, logger)

	cache := createTrackingCache(configs, logger)
	publisher := createEventPublisher(configs, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, cache, publisher, logger)
	bootstrapTenant(&root, configs, logger)

	jobManager := jobs.NewJobManager(root.CreateListOverdueShipmentsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:            goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaStatusTopic:     goDotEnvVariable("KAFKA_STATUS_TOPIC"),
		BootstrapTenantName:  goDotEnvVariable("BOOTSTRAP_TENANT_NAME"),
		BootstrapTenantToken: goDotEnvVariable("BOOTSTRAP_TENANT_TOKEN"),
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

func mustOpenDatabase(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	if err := ensureDatabase(configs); err != nil {
		logger.Error("Failed to ensure database exists", "error", err)
		os.Exit(1)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on for tracking number collisions.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&customerrepo.CustomerDTO{},
		&tenantrepo.TenantDTO{},
	)
	if err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	return gormDB
}

// ensureDatabase creates the application database when it does not exist
// yet, connecting through the maintenance database.
func ensureDatabase(configs cmd.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	var exists bool
	err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName))
	return err
}

// createTrackingCache connects to Redis when configured. The service runs
// without the cache when Redis is absent or unreachable.
func createTrackingCache(configs cmd.Config, logger *slog.Logger) queries.TrackingCache {
	if configs.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, tracking cache disabled", "error", err)
		return nil
	}

	cache, err := rediscache.NewTrackingCache(client, trackingCacheTTL)
	if err != nil {
		logger.Warn("Failed to create tracking cache", "error", err)
		return nil
	}

	logger.Info("Tracking cache enabled", "addr", configs.RedisAddr)
	return cache
}

// createEventPublisher connects to Kafka when configured. The service runs
// without status events when no broker is configured.
func createEventPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if configs.KafkaHost == "" {
		return nil
	}

	producer, err := kafka.NewProducer(
		strings.Split(configs.KafkaHost, ","), configs.KafkaStatusTopic)
	if err != nil {
		logger.Warn("Kafka unreachable, status events disabled", "error", err)
		return nil
	}
	if producer == nil {
		return nil
	}

	logger.Info("Status event publisher enabled",
		"brokers", configs.KafkaHost, "topic", configs.KafkaStatusTopic)
	return producer
}

// bootstrapTenant provisions the first tenant from the environment so a
// fresh installation has a usable API token without manual SQL.
func bootstrapTenant(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	if configs.BootstrapTenantName == "" || configs.BootstrapTenantToken == "" {
		return
	}

	createCmd, err := commands.NewCreateTenantCommand(
		kernel.NewUUID(), configs.BootstrapTenantName, configs.BootstrapTenantToken)
	if err != nil {
		logger.Error("Invalid bootstrap tenant configuration", "error", err)
		return
	}

	handler := root.CreateCreateTenantCommandHandler()
	if _, err = handler.Handle(context.Background(), createCmd); err != nil {
		// Expected on every start after the first: the token is already taken.
		logger.Info("Bootstrap tenant not created", "reason", err)
		return
	}

	logger.Info("Bootstrap tenant provisioned", "company", configs.BootstrapTenantName)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateCreateShipmentCommandHandler(),
		root.CreateUpdateShipmentCommandHandler(),
		root.CreateDeleteShipmentCommandHandler(),
		root.CreateCreateCustomerCommandHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateListShipmentsQueryHandler(),
		root.CreateTrackShipmentQueryHandler(),
	)
	server.RegisterRoutes(e, httpin.TenantAuth(root.TenantRepository()))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.File("/api/openapi.yaml", "api/openapi.yaml")
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.yaml")))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
