package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quickbasket/cmd"
	inhttp "quickbasket/internal/adapters/in/http"
	"quickbasket/internal/adapters/out/postgres/orderrepo"
	"quickbasket/internal/adapters/out/postgres/partnerrepo"
	"quickbasket/internal/adapters/out/postgres/requestrepo"
	"quickbasket/internal/adapters/out/postgres/trackingrepo"
	"quickbasket/internal/adapters/out/postgres/vendorrepo"
	"quickbasket/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	metrics.Register()

	redisClient := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	defer func() {
		if err := app.Close(); err != nil {
			log.Warnf("closing adapters: %v", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	consumer := app.CreateBasketConfirmedConsumer()
	go func() {
		if err := consumer.Run(consumerCtx); err != nil {
			log.Errorf("basket.confirmed consumer stopped: %v", err)
		}
	}()
	defer consumer.Close()

	e := buildWebServer(app)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopConsumer()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http shutdown: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:                 goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:                 goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:        goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaBasketConfirmedTopic: goDotEnvVariable("KAFKA_BASKET_CONFIRMED_TOPIC"),
		KafkaOrderChangedTopic:    goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		DispatchRadiusKm:          envFloat("DISPATCH_RADIUS_KM", 0),
		DispatchSchedule:          envOrDefault("DISPATCH_SCHEDULE", "*/5 * * * * *"),
		TrackingRetention:         envDuration("TRACKING_RETENTION", 72*time.Hour),
		TrackingPruneSchedule:     envOrDefault("TRACKING_PRUNE_SCHEDULE", "0 0 * * * *"),
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

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, raw)
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s must be a duration, got %q", key, raw)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&partnerrepo.PartnerDTO{},
		&vendorrepo.VendorDTO{},
		&requestrepo.RequestDTO{},
		&requestrepo.ResponseDTO{},
		&trackingrepo.SampleDTO{},
	)
	if err != nil {
		log.Fatalf("migrating schema: %v", err)
	}

	if err := requestrepo.EnsureActiveRequestIndex(gormDB); err != nil {
		log.Fatalf("creating active request index: %v", err)
	}
}

func buildWebServer(app cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(inhttp.RequestDurationMiddleware)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	app.CreateHTTPServer().RegisterRoutes(e)

	return e
}
