package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"
)

// WorkerCore defines the workflows run by the core worker
type WorkerCore interface {
	// TrackTransactionConfirmation follows a submitted transaction until it is final
	TrackTransactionConfirmation(ctx workflow.Context, input TrackConfirmationInput) error
}

type WorkerCoreConfig struct {
	// ConfirmationDepth is the number of confirmations after which a transaction is final
	ConfirmationDepth uint64
	// PollInterval is the wait between two receipt reads
	PollInterval time.Duration
	// TrackingTimeout bounds how long a transaction is followed
	TrackingTimeout time.Duration
}

const (
	DefaultConfirmationDepth = 12
	DefaultPollInterval      = 15 * time.Second
	DefaultTrackingTimeout   = 2 * time.Hour
)

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.ConfirmationDepth == 0 {
		config.ConfirmationDepth = DefaultConfirmationDepth
	}
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.TrackingTimeout <= 0 {
		config.TrackingTimeout = DefaultTrackingTimeout
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
