package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fundme-simulator/config"
	httpHandler "fundme-simulator/internal/adapter/http/handler"
	"fundme-simulator/internal/adapter/http/middleware"
	pgStorage "fundme-simulator/internal/adapter/storage/postgres"
	redisStorage "fundme-simulator/internal/adapter/storage/redis"
	"fundme-simulator/internal/adapter/wallet"
	"fundme-simulator/internal/core/ports"
	"fundme-simulator/internal/service"
	"fundme-simulator/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("wallet_provider", cfg.Wallet.Provider).
		Msg("Starting FundMe simulator")

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// Activity journal (PostgreSQL, optional)
	var journalRepo ports.JournalRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare activity journal schema")
		}
		journalRepo = pgStorage.NewJournalRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	}
	journal := service.NewJournalService(journalRepo, logger.Component(log, "journal"))

	// Rate limiting (Redis, optional)
	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		limiter = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}

	// Wallet provider
	provider, err := wallet.NewProvider(cfg.Wallet)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize wallet provider")
	}
	if hc, ok := provider.(ports.HealthChecker); ok {
		checkers = append(checkers, hc)
	}

	// Config.Load already validated the price.
	price, _ := decimal.NewFromString(cfg.Contract.EthUSDPrice)

	fundMeSvc, err := service.NewFundMeService(service.FundMeConfig{
		OwnerAddress:   cfg.Contract.OwnerAddress,
		InitialBalance: cfg.Contract.InitialBalance,
		EthUSDPrice:    price,
	}, service.FundMeDeps{
		Provider: provider,
		Journal:  journal,
	}, logger.Component(log, "fundme"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize FundMe session")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		FundMeSvc:      fundMeSvc,
		RateLimiter:    limiter,
		RateLimit:      cfg.RateLimit,
		HealthCheckers: checkers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
