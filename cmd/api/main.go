package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qrpay/config"
	httpHandler "qrpay/internal/adapter/http/handler"
	pgStorage "qrpay/internal/adapter/storage/postgres"
	redisStorage "qrpay/internal/adapter/storage/redis"
	"qrpay/internal/core/ports"
	"qrpay/internal/service"
	"qrpay/pkg/logger"
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
		Str("user_id", cfg.Device.UserID).
		Msg("Starting QR payment node")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL pool (remote ledger)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client (device-local storage)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize storage adapters
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	deviceStore := redisStorage.NewDeviceStore(rdb)
	balanceCache := redisStorage.NewBalanceCache(rdb, cfg.Device.UserID)

	// Initialize device crypto
	keyStore := service.NewDeviceKeyStore(deviceStore)
	atRestSigner := service.NewEd25519AtRestSigner(keyStore)

	// Connectivity starts online; the API toggle flips it at runtime.
	network := service.NewConnectivity(true, log)

	// Initialize offline queue with background drain
	queue := service.NewOfflineQueue(deviceStore, atRestSigner, ledgerRepo, network, log)
	go queue.Run(ctx, cfg.Payment.DrainInterval)
	network.Subscribe(func(online bool) {
		if !online {
			return
		}
		// Drain as soon as connectivity returns rather than waiting for
		// the next tick.
		go func() {
			if _, err := queue.Drain(context.Background()); err != nil {
				log.Error().Err(err).Msg("Drain on reconnect failed")
			}
		}()
	})

	// Initialize protocol services
	settlementSvc := service.NewSettlementService(ledgerRepo, queue, network, log)
	codec := service.NewZlibEnvelopeCodec(cfg.Payment.MaxQRBytes)
	transportCrypto := service.NewECDSATransportCrypto()
	sessionSvc := service.NewSessionService(service.SessionConfig{
		UserID:            cfg.Device.UserID,
		Currency:          cfg.Payment.Currency,
		PaymentExpiry:     cfg.Payment.PaymentExpiry,
		OfflineLimitCents: cfg.Payment.OfflineLimitCents,
	}, codec, transportCrypto, settlementSvc, balanceCache, log)

	// Expire stale sessions in the background
	go func() {
		ticker := time.NewTicker(cfg.Payment.ExpirySweep)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessionSvc.ExpireSessions(ctx); n > 0 {
					log.Info().Int("count", n).Msg("Sessions expired")
				}
			}
		}
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		Queue:          queue,
		Balances:       balanceCache,
		Network:        network,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
