package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/messaging"
	"github.com/feral-file/ff-economy/internal/metrics"
	"github.com/feral-file/ff-economy/internal/recorder"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// Config holds configuration for the reconciliation sweeper
type Config struct {
	Interval       time.Duration // Wait between two cycles
	BatchSize      int           // Open entries loaded per cycle
	WorkerPoolSize int           // Concurrent reconciliations
	MaxAttempts    int           // Attempts before an entry is handed to operators, zero means unbounded

	RetryInitialInterval time.Duration
	RetryMaxElapsedTime  time.Duration
}

// Outcome is the result of reconciling one journal entry
type Outcome string

const (
	OutcomeResolved Outcome = "resolved"
	OutcomeManual   Outcome = "manual"
	OutcomeRetry    Outcome = "retry"
)

// CycleReport summarises one sweep cycle
type CycleReport struct {
	Processed int
	Resolved  int
	Manual    int
	Retry     int
}

// handler finishes the bookkeeping step of one inconsistency kind
type handler func(ctx context.Context, entry schema.Inconsistency) (Outcome, error)

// reconciler finishes off-chain steps that failed after an irreversible ledger step
type reconciler struct {
	config    Config
	store     store.Store
	recorder  recorder.Recorder
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
	handlers  map[domain.InconsistencyKind]handler

	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// Reconciler is a Sweeper that can also run a single cycle on demand
type Reconciler interface {
	Sweeper
	// RunCycle processes one batch of open entries
	RunCycle(ctx context.Context) (*CycleReport, error)
}

// NewReconciler creates the inconsistency journal sweeper
func NewReconciler(config Config, st store.Store, rec recorder.Recorder, publisher messaging.Publisher, clock adapter.Clock, jsonAdapter adapter.JSON) Reconciler {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 4
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = 500 * time.Millisecond
	}
	if config.RetryMaxElapsedTime <= 0 {
		config.RetryMaxElapsedTime = 30 * time.Second
	}

	r := &reconciler{
		config:    config,
		store:     st,
		recorder:  rec,
		publisher: publisher,
		clock:     clock,
		json:      jsonAdapter,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	r.handlers = map[domain.InconsistencyKind]handler{
		domain.InconsistencyTransactionRecord:     r.reconcileTransactionRecord,
		domain.InconsistencyReservationRelease:    r.reconcileReservationRelease,
		domain.InconsistencyInstantSellCompletion: r.reconcileInstantSellCompletion,
		domain.InconsistencyStakingPosition:       r.reconcileStakingPosition,
		domain.InconsistencySaleSettlement:        r.reconcileSaleSettlement,
		domain.InconsistencySaleSettlementRecords: r.reconcileSaleSettlementRecords,
		domain.InconsistencyPackPurchase:          r.reconcilePackPurchase,
	}
	return r
}

// Name returns the sweeper's name
func (r *reconciler) Name() string {
	return "inconsistency-reconciler"
}

// Start runs a cycle every interval until stopped
func (r *reconciler) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting inconsistency reconciler",
		zap.Duration("interval", r.config.Interval),
		zap.Int("batch_size", r.config.BatchSize),
		zap.Int("worker_pool_size", r.config.WorkerPoolSize),
	)

	for {
		if _, err := r.RunCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Inconsistency reconciler stopping due to context cancellation", zap.Error(ctx.Err()))
			r.cleanup()
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "Inconsistency reconciler stop requested")
			r.cleanup()
			return nil
		case <-r.clock.After(r.config.Interval):
		}
	}
}

func (r *reconciler) cleanup() {
	if r.pool != nil {
		r.pool.StopAndWait()
	}
}

// Stop signals the main loop and waits for it to exit or for ctx to expire
func (r *reconciler) Stop(ctx context.Context) error {
	if !r.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping inconsistency reconciler")
	select {
	case <-r.stopChan:
	default:
		close(r.stopChan)
	}

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Inconsistency reconciler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Inconsistency reconciler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunCycle loads one batch of open entries and reconciles them on the worker pool
func (r *reconciler) RunCycle(ctx context.Context) (*CycleReport, error) {
	startTime := r.clock.Now()

	entries, err := r.store.GetOpenInconsistencies(ctx, r.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get open inconsistencies: %w", err)
	}
	report := &CycleReport{Processed: len(entries)}
	if len(entries) == 0 {
		return report, nil
	}

	if r.pool == nil {
		r.pool = pond.NewPool(r.config.WorkerPoolSize, pond.WithContext(ctx))
	}

	var resolved, manual, retry atomic.Int32
	group := r.pool.NewGroup()
	for _, entry := range entries {
		group.Submit(func() {
			switch r.process(ctx, entry) {
			case OutcomeResolved:
				resolved.Add(1)
			case OutcomeManual:
				manual.Add(1)
			default:
				retry.Add(1)
			}
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("reconciliation cycle interrupted: %w", err)
	}

	report.Resolved = int(resolved.Load())
	report.Manual = int(manual.Load())
	report.Retry = int(retry.Load())

	logger.InfoCtx(ctx, "Reconciliation cycle completed",
		zap.Duration("duration", r.clock.Since(startTime)),
		zap.Int("processed", report.Processed),
		zap.Int("resolved", report.Resolved),
		zap.Int("manual", report.Manual),
		zap.Int("retry", report.Retry),
	)
	return report, nil
}

// process reconciles one entry and records the attempt
func (r *reconciler) process(ctx context.Context, entry schema.Inconsistency) Outcome {
	fields := []zap.Field{
		zap.Int64("inconsistencyID", entry.ID),
		zap.String("kind", string(entry.Kind)),
		zap.String("reference", entry.Reference),
	}

	var outcome Outcome
	var cause error
	h, ok := r.handlers[entry.Kind]
	switch {
	case !entry.Kind.IsOffChain():
		outcome, cause = OutcomeManual, fmt.Errorf("%s moves value on the ledger and needs an operator", entry.Kind)
	case !ok:
		outcome, cause = OutcomeManual, fmt.Errorf("no reconciler for kind %s", entry.Kind)
	default:
		outcome, cause = h(ctx, entry)
		if cause != nil && outcome == "" {
			outcome = OutcomeRetry
		}
	}

	if outcome == OutcomeRetry && r.config.MaxAttempts > 0 && entry.Attempts+1 >= r.config.MaxAttempts {
		outcome = OutcomeManual
		cause = fmt.Errorf("gave up after %d attempts: %w", entry.Attempts+1, cause)
	}

	input := store.MarkInconsistencyInput{
		ID:     entry.ID,
		Status: statusOf(outcome),
		At:     r.clock.Now().UTC(),
	}
	if cause != nil {
		input.Error = cause.Error()
	}
	if err := r.retry(ctx, "mark inconsistency", func() error {
		return r.store.MarkInconsistency(ctx, input)
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark inconsistency: %w", err), fields...)
	}

	metrics.IncReconciled(string(entry.Kind), string(outcome))
	switch outcome {
	case OutcomeResolved:
		logger.InfoCtx(ctx, "Reconciled inconsistency", fields...)
	case OutcomeManual:
		logger.WarnCtx(ctx, "Inconsistency needs manual resolution", append(fields, zap.Error(cause))...)
	default:
		logger.WarnCtx(ctx, "Inconsistency reconciliation will be retried", append(fields, zap.Error(cause))...)
	}
	return outcome
}

func statusOf(outcome Outcome) domain.InconsistencyStatus {
	switch outcome {
	case OutcomeResolved:
		return domain.InconsistencyStatusResolved
	case OutcomeManual:
		return domain.InconsistencyStatusManual
	default:
		return domain.InconsistencyStatusOpen
	}
}

// retry runs a store write with exponential backoff. Domain errors are final.
func (r *reconciler) retry(ctx context.Context, op string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.config.RetryInitialInterval
	b.MaxInterval = 10 * r.config.RetryInitialInterval
	b.MaxElapsedTime = r.config.RetryMaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	operation := func() error {
		err := fn()
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attemptCount int
	notify := func(err error, next time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Store write failed, retrying",
			zap.String("op", op),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", next),
		)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}
