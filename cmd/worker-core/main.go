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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/config"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/providers/ethereum"
	temporal "github.com/feral-file/ff-economy/internal/providers/temporal"
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
	cfg, err := config.LoadWorkerCoreConfig(*configFile, *envPath)
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
			"service": "worker-core",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Core")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")
	dataStore := store.NewPGStore(db)

	clock := adapter.NewClock()

	// Connect to the token ledger. The worker only reads receipts.
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
	}, ethClient, treasury, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize ledger", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to ledger", zap.Int64("chain_id", cfg.Ledger.ChainID))

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.ConfirmationTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.ConfirmationTaskQueue))

	executor := workflows.NewExecutor(dataStore, tokenLedger, clock)
	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		ConfirmationDepth: cfg.Confirmation.Depth,
		PollInterval:      cfg.Confirmation.PollInterval,
		TrackingTimeout:   cfg.Confirmation.TrackingTimeout,
	})

	temporalWorker.RegisterWorkflow(workerCore.TrackTransactionConfirmation)
	temporalWorker.RegisterActivity(executor.GetLedgerReceipt)
	temporalWorker.RegisterActivity(executor.SaveTransactionConfirmation)
	logger.InfoCtx(ctx, "Registered workflows and activities")

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
