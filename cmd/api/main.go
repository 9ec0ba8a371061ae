package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receipt-recovery-service/config"
	httpHandler "receipt-recovery-service/internal/adapter/http/handler"
	kafkaQueue "receipt-recovery-service/internal/adapter/queue/kafka"
	pgStorage "receipt-recovery-service/internal/adapter/storage/postgres"
	redisStorage "receipt-recovery-service/internal/adapter/storage/redis"
	"receipt-recovery-service/internal/adapter/tokenizer"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/internal/service"
	"receipt-recovery-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("receipt-recovery", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Receipt Recovery Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Kafka writer
	kafkaWriter := kafkaQueue.NewWriter(cfg.Kafka)
	defer kafkaWriter.Close()
	generationQueue := kafkaQueue.NewPublisher(kafkaWriter, cfg.Kafka, log)

	// Initialize repositories
	receiptRepo := pgStorage.NewReceiptRepo(pool)
	cartRepo := pgStorage.NewCartRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	tokenCache := redisStorage.NewTokenCache(rdb)

	// Tokenizer client
	tokenizerClient := tokenizer.NewClient(
		&http.Client{Timeout: cfg.Tokenizer.Timeout},
		cfg.Tokenizer,
		log,
	)

	// Initialize services
	translatorSvc := service.NewTranslatorService(eventRepo, tokenizerClient, tokenCache, cfg.Tokenizer.CacheTTL, log)
	dispatcherSvc := service.NewDispatcherService(generationQueue, log)
	recoverySvc := service.NewRecoveryService(receiptRepo, cartRepo, eventRepo, translatorSvc, dispatcherSvc, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)
	kafkaHealth := kafkaQueue.NewHealthCheck(cfg.Kafka.Brokers)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RecoverySvc:    recoverySvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, kafkaHealth},
		MaxPageSize:    cfg.Recovery.MaxPageSize,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
