package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/config"
	"github.com/nuribostan/abTestYazilim/internal/consumer"
	"github.com/nuribostan/abTestYazilim/internal/logger"
	"github.com/nuribostan/abTestYazilim/internal/pipeline"
	"github.com/nuribostan/abTestYazilim/internal/queue/sqs"
	"github.com/nuribostan/abTestYazilim/internal/repository/clickhouse"
	mongorepo "github.com/nuribostan/abTestYazilim/internal/repository/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment, "consumer")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting consumer service",
		zap.String("environment", cfg.Service.Environment))

	ctx := context.Background()

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

	// Create the indexes the pipeline semantics rely on
	if err := entityRepo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB schema", zap.Error(err))
	}

	// Initialize ClickHouse client
	chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func() {
		if err := chClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}()

	eventRepo := clickhouse.NewRepository(chClient, log)

	if err := eventRepo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize ClickHouse schema", zap.Error(err))
	}
	log.Info("Database schemas initialized")

	// Initialize SQS client
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize the record pipeline
	processor := pipeline.NewProcessor(pipeline.Stores{
		Visitors:    entityRepo,
		Events:      eventRepo,
		Assignments: entityRepo,
		Conversions: entityRepo,
		Counters:    entityRepo,
		DailyStats:  entityRepo,
		LiveLogs:    entityRepo,
	}, log)

	// Initialize consumer
	c := consumer.NewConsumer(cfg, sqsClient, processor, log)

	// Start health check endpoint
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			if err := entityRepo.Ping(r.Context()); err != nil {
				log.Warn("Health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			if err := eventRepo.Ping(r.Context()); err != nil {
				log.Warn("Health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		addr := ":" + cfg.Consumer.HealthCheckPort
		log.Info("Health check server starting", zap.String("address", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error("Health check server error", zap.Error(err))
		}
	}()

	// Start consumer
	consumerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info("Consumer starting", zap.Int("workers", cfg.Consumer.Workers))

	go func() {
		if err := c.Start(consumerCtx); err != nil {
			log.Fatal("Consumer error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down consumer gracefully")
	cancel()
}
