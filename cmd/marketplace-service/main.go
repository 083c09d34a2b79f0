package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/craveo/marketplace-service/internal/config"
	"github.com/craveo/marketplace-service/internal/delivery/http/handler"
	"github.com/craveo/marketplace-service/internal/delivery/http/route"
	"github.com/craveo/marketplace-service/internal/infrastructure/kafka"
	"github.com/craveo/marketplace-service/internal/infrastructure/matching"
	"github.com/craveo/marketplace-service/internal/infrastructure/metrics"
	"github.com/craveo/marketplace-service/internal/infrastructure/migrate"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres"
	"github.com/craveo/marketplace-service/internal/usecase/catalog"
	"github.com/craveo/marketplace-service/internal/usecase/offer"
	"github.com/craveo/marketplace-service/internal/usecase/order"
	"github.com/craveo/marketplace-service/internal/usecase/request"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.MarketDB.MigrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	store := postgres.NewStore(db)

	publisher := kafka.NewPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaConfig.Host, cfg.KafkaConfig.Port)},
		cfg.KafkaConfig.Topic,
	)
	defer publisher.Close()

	advisor := matching.NewHTTPAdvisor(cfg.Matching.BaseURL, cfg.Matching.Timeout)
	marketplaceMetrics := metrics.NewMarketplaceMetrics(prometheus.DefaultRegisterer)

	orderUsecase := order.NewDefaultOrderUsecase(store, publisher, marketplaceMetrics)
	offerUsecase := offer.NewDefaultOfferUsecase(store, orderUsecase, publisher, marketplaceMetrics)
	requestUsecase := request.NewDefaultRequestUsecase(store, advisor, publisher, marketplaceMetrics)
	catalogUsecase := catalog.NewDefaultCatalogUsecase(store)

	// Sweep stale pending offers into expired.
	go func() {
		ticker := time.NewTicker(cfg.Offers.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := offerUsecase.ExpireStale(context.Background(), cfg.Offers.TTL); err != nil {
				slog.Error("offer expiry sweep failed", "error", err.Error())
			}
		}
	}()

	app := gin.Default()
	route.SetupRoutes(app, route.Handlers{
		Requests: handler.NewRequestHandler(requestUsecase),
		Offers:   handler.NewOfferHandler(offerUsecase),
		Orders:   handler.NewOrderHandler(orderUsecase),
		Products: handler.NewProductHandler(catalogUsecase),
	}, prometheus.DefaultGatherer)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("marketplace service started", "addr", addr, "env", cfg.Env)
	if err := app.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var loggerHandler slog.Handler
	if cfg.LogFormat == "text" {
		loggerHandler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		loggerHandler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(loggerHandler))
}
