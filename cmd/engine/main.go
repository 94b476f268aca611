package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treasury-engine/config"
	"treasury-engine/internal/adapter/chain"
	httpHandler "treasury-engine/internal/adapter/http/handler"
	pgStorage "treasury-engine/internal/adapter/storage/postgres"
	redisStorage "treasury-engine/internal/adapter/storage/redis"
	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/internal/eventbus"
	"treasury-engine/internal/service"
	"treasury-engine/pkg/logger"
	"treasury-engine/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func main() {
	issueToken := flag.String("issue-token", "", "print a service token for the named collaborator and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("treasury-engine", cfg.Log.Level, cfg.Log.Pretty)

	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Expiry, cfg.Auth.Issuer)

	// Token issuance is an operator action, not an API endpoint:
	// collaborator credentials are provisioned out of band.
	if *issueToken != "" {
		token, expiresAt, err := tokenSvc.Generate(*issueToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", token)
		fmt.Fprintf(os.Stderr, "expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
		return
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("relay_mode", cfg.Relay.Mode).
		Msg("Starting Treasury Automation Engine")

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
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	allocationRepo := pgStorage.NewAllocationRepo(pool)
	sweepRepo := pgStorage.NewSweepRepo(pool)
	profileRepo := pgStorage.NewProfileRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	liabilityCache := redisStorage.NewLiabilityCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Event bus. Subscribers must register before the first ledger write.
	bus := eventbus.New(log)
	defer bus.Close()

	// Initialize business services
	ledgerSvc := service.NewLedgerService(ledgerRepo, bus, log)
	liabilitySvc := service.NewLiabilityService(ledgerRepo, liabilityCache, cfg.Worker.LiabilityTTL, log)

	taxEngine, err := service.NewTaxEngine(ledgerSvc, profileRepo, cfg.Tax, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tax engine")
	}
	taxEngine.Register(bus)

	defaults, err := parseBucketDefaults(cfg.Allocation)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid default bucket percentages")
	}
	allocationSvc, err := service.NewAllocationService(allocationRepo, transactor, defaults, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize allocation service")
	}

	// Chain access
	signer, err := chain.NewSigner(cfg.Relay.SigningKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize transaction signer")
	}
	log.Info().Str("signer", signer.Address()).Msg("Relay signer loaded")

	httpClient := &http.Client{Timeout: cfg.Chain.RequestTimeout}
	rpcClient := chain.NewRPCClient(cfg.Chain.RPCURL, httpClient, log)
	bundlerClient := chain.NewBundlerClient(cfg.Relay.BundlerURL, httpClient, log)

	relaySvc := service.NewRelayService(rpcClient, bundlerClient, signer, nonceStore, cfg.Relay, log)

	reconcilerSvc, err := service.NewReconcilerService(
		walletRepo, ledgerRepo, sweepRepo, transactor, allocationSvc, relaySvc, rpcClient, bundlerClient, taxEngine,
		cfg.Chain, cfg.Worker, cfg.Tax.SupportedCurrencies, log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize reconciler")
	}

	// Prometheus registry
	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		LiabilitySvc:   liabilitySvc,
		AllocationSvc:  allocationSvc,
		ReconcilerSvc:  reconcilerSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Registry:       registry,
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

func parseBucketDefaults(cfg config.AllocationConfig) (domain.BucketPercentages, error) {
	var p domain.BucketPercentages
	var err error
	if p.Tax, err = decimal.NewFromString(cfg.TaxPct); err != nil {
		return p, fmt.Errorf("tax_pct: %w", err)
	}
	if p.Liquidity, err = decimal.NewFromString(cfg.LiquidityPct); err != nil {
		return p, fmt.Errorf("liquidity_pct: %w", err)
	}
	if p.Yield, err = decimal.NewFromString(cfg.YieldPct); err != nil {
		return p, fmt.Errorf("yield_pct: %w", err)
	}
	return p, nil
}
