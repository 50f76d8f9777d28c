package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/docs"
	"github.com/nuribostan/abTestYazilim/internal/config"
	"github.com/nuribostan/abTestYazilim/internal/handler"
	"github.com/nuribostan/abTestYazilim/internal/logger"
	"github.com/nuribostan/abTestYazilim/internal/queue/sqs"
	"github.com/nuribostan/abTestYazilim/internal/repository/clickhouse"
	mongorepo "github.com/nuribostan/abTestYazilim/internal/repository/mongo"
	"github.com/nuribostan/abTestYazilim/internal/service"
)

// @title A/B Testing Analytics API
// @version 1.0
// @description API for A/B test configuration snapshots, event publishing and aggregated stats
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize SQS client
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize MongoDB client
	mongoClient, err := mongorepo.NewClient(ctx, &cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to create MongoDB client", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(ctx); err != nil {
			log.Error("Failed to close MongoDB client", zap.Error(err))
		}
	}()

	entityRepo := mongorepo.NewRepository(mongoClient, log)

	// Initialize ClickHouse client
	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	eventRepo := clickhouse.NewRepository(clickhouseClient, log)

	// Initialize services
	eventService := service.NewEventService(sqsClient, log)
	configService := service.NewConfigService(entityRepo, log)
	statsService := service.NewStatsService(entityRepo, eventRepo, log)

	// Initialize handler
	h := handler.NewHandler(eventService, configService, statsService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
