package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/api/middleware"
	"github.com/feral-file/ff-economy/internal/api/rest"
	"github.com/feral-file/ff-economy/internal/api/server"
	"github.com/feral-file/ff-economy/internal/api/shared/executor"
	"github.com/feral-file/ff-economy/internal/config"
	"github.com/feral-file/ff-economy/internal/farming"
	"github.com/feral-file/ff-economy/internal/leveling"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/marketplace"
	"github.com/feral-file/ff-economy/internal/messaging"
	"github.com/feral-file/ff-economy/internal/packs"
	"github.com/feral-file/ff-economy/internal/providers/ethereum"
	"github.com/feral-file/ff-economy/internal/providers/jetstream"
	temporal "github.com/feral-file/ff-economy/internal/providers/temporal"
	"github.com/feral-file/ff-economy/internal/ratelimit"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/staking"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ff-economy-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Economy API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	// Connect to the token ledger
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ledger RPC", zap.Error(err))
	}
	defer ethClient.Close()

	treasury, err := ethereum.NewTreasury(cfg.Ledger.TreasuryKey)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load treasury credential", zap.Error(err))
	}
	tokenLedger, err := ethereum.NewLedger(ethereum.Config{
		ChainID:             cfg.Ledger.ChainID,
		TokenAddress:        cfg.Ledger.TokenAddress,
		CallTimeout:         cfg.Ledger.CallTimeout,
		ReceiptPollInterval: cfg.Ledger.ReceiptPollInterval,
		WaitForReceipt:      cfg.Ledger.WaitForReceipt,
	}, ethClient, treasury, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize ledger", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to ledger",
		zap.Int64("chain_id", cfg.Ledger.ChainID),
		zap.String("treasury", treasury.Address.Hex()),
	)

	// Transaction events go to JetStream when NATS is configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, transaction events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Confirmation tracking runs on Temporal
	var tracker recorder.ConfirmationTracker
	if cfg.Confirmation.Enabled {
		temporalClient, err := client.Dial(client.Options{
			HostPort:  cfg.Temporal.HostPort,
			Namespace: cfg.Temporal.Namespace,
			Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
		}
		defer temporalClient.Close()
		logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

		tracker = workflows.NewConfirmationTracker(temporalClient, cfg.Temporal.ConfirmationTaskQueue, cfg.Confirmation.TrackingTimeout)
	}

	// Initialize engines
	rec := recorder.New(dataStore, publisher, tracker, clock, jsonAdapter, jcsAdapter, treasury.Address.Hex())
	levelingEngine := leveling.NewEngine(leveling.Config{ChargeLevelUpCost: cfg.Economy.ChargeLevelUpCost}, dataStore, tokenLedger, rec)
	services := rest.Services{
		Executor:    executor.NewExecutor(dataStore, tokenLedger, cfg.Economy.ExecutorPoolSize),
		Farming:     farming.NewService(dataStore, tokenLedger, rec, levelingEngine, clock),
		Leveling:    levelingEngine,
		Marketplace: marketplace.NewEngine(dataStore, tokenLedger, rec, clock),
		Staking:     staking.NewService(dataStore, tokenLedger, rec, clock),
		Packs: packs.NewService(packs.Config{
			CacheSize: cfg.Economy.PackCacheSize,
			CacheTTL:  cfg.Economy.PackCacheTTL,
		}, dataStore, tokenLedger, rec, clock, adapter.NewRandom(), packs.DefaultCatalog()),
		Recorder: rec,
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			MaxPrincipals:     cfg.RateLimit.MaxPrincipals,
		}, clock)
	}

	srv := server.New(server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, rest.NewHandler(cfg.Debug, services), limiter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("API server stopped")
}
