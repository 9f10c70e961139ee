package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/config"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/messaging"
	"github.com/feral-file/ff-economy/internal/providers/ethereum"
	"github.com/feral-file/ff-economy/internal/providers/jetstream"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
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
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

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

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

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
	} else {
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// The sweeper never moves value. The treasury credential only labels the records it writes.
	treasury, err := ethereum.NewTreasury(cfg.Ledger.TreasuryKey)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load treasury credential", zap.Error(err))
	}
	rec := recorder.New(dataStore, publisher, nil, clock, jsonAdapter, adapter.NewJCS(), treasury.Address.Hex())

	reconciler := sweeper.NewReconciler(sweeper.Config{
		Interval:             cfg.Reconciler.Interval,
		BatchSize:            cfg.Reconciler.BatchSize,
		WorkerPoolSize:       cfg.Reconciler.WorkerPoolSize,
		MaxAttempts:          cfg.Reconciler.MaxAttempts,
		RetryInitialInterval: cfg.Reconciler.RetryInitialInterval,
		RetryMaxElapsedTime:  cfg.Reconciler.RetryMaxElapsedTime,
	}, dataStore, rec, publisher, clock, jsonAdapter)

	logger.InfoCtx(ctx, "Initialized inconsistency reconciler",
		zap.Duration("interval", cfg.Reconciler.Interval),
		zap.Int("batch_size", cfg.Reconciler.BatchSize),
		zap.Int("worker_pool_size", cfg.Reconciler.WorkerPoolSize),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := reconciler.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := reconciler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
