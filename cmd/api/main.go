package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boltcard-gateway/config"
	httpHandler "boltcard-gateway/internal/adapter/http/handler"
	"boltcard-gateway/internal/adapter/lnbits"
	pgStorage "boltcard-gateway/internal/adapter/storage/postgres"
	redisStorage "boltcard-gateway/internal/adapter/storage/redis"
	"boltcard-gateway/internal/core/ports"
	"boltcard-gateway/internal/service"
	"boltcard-gateway/pkg/logger"
	"boltcard-gateway/pkg/metrics"
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
		Str("lnbits_env", cfg.LNBits.Environment).
		Msg("Starting Boltcard Gateway")

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

	// Initialize repositories
	issuerKeyRepo := pgStorage.NewIssuerKeyRepo(pool)
	cardRepo := pgStorage.NewCardRepo(pool)
	ledgerRepo := pgStorage.NewCardTransactionRepo(pool)
	registrationRepo := pgStorage.NewRegistrationRepo(pool)
	topupRepo := pgStorage.NewTopupRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	sessionStore := redisStorage.NewSessionStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	cipher, err := service.NewAESSecretCipher(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize secret cipher")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	keys := service.NewKeyHierarchy()
	met := metrics.New()

	// Payment provider client
	paymentClient := lnbits.NewClient(cfg.LNBits, logger.Component(log, "lnbits"))

	// Initialize protocol services
	resolver := service.NewIdentityResolver(cardRepo, cipher, keys, logger.Component(log, "identity"))
	sun := service.NewSUNAuthenticator(issuerKeyRepo, resolver, keys, cipher, logger.Component(log, "sun"))
	spend := service.NewSpendLimitEnforcer(cardRepo, ledgerRepo, transactor, logger.Component(log, "spend"))
	withdrawSvc := service.NewWithdrawService(
		sun, cardRepo, spend, sessionStore, paymentClient, met,
		cfg.Issuer.WithdrawTTL, logger.Component(log, "withdraw"),
	)
	registrationSvc := service.NewRegistrationService(
		registrationRepo, cardRepo, issuerKeyRepo, spend, transactor, cipher, keys, resolver,
		cfg.Server.BaseURL, cfg.Issuer.RegistrationTTL, logger.Component(log, "registration"),
	)
	topupSvc := service.NewTopupService(
		topupRepo, cardRepo, spend, paymentClient, transactor, met,
		cfg.Issuer.TopupTTL, logger.Component(log, "topup"),
	)
	cardAdminSvc := service.NewCardAdminService(
		cardRepo, ledgerRepo, issuerKeyRepo, transactor, cipher, keys, registrationSvc,
		logger.Component(log, "card_admin"),
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WithdrawSvc:     withdrawSvc,
		RegistrationSvc: registrationSvc,
		TopupSvc:        topupSvc,
		CardAdminSvc:    cardAdminSvc,
		TokenSvc:        tokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		BaseURL:         cfg.Server.BaseURL,
		Logger:          log,
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
