package workflows

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/providers/temporal"
	"github.com/feral-file/ff-economy/internal/recorder"
)

// confirmationTracker starts one TrackTransactionConfirmation workflow per record
type confirmationTracker struct {
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
	timeout      time.Duration
}

// NewConfirmationTracker returns a recorder.ConfirmationTracker backed by Temporal.
// trackingTimeout must match the worker's WorkerCoreConfig.TrackingTimeout.
func NewConfirmationTracker(orchestrator temporal.TemporalOrchestrator, taskQueue string, trackingTimeout time.Duration) recorder.ConfirmationTracker {
	if trackingTimeout <= 0 {
		trackingTimeout = DefaultTrackingTimeout
	}
	return &confirmationTracker{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
		timeout:      trackingTimeout,
	}
}

// ConfirmationWorkflowID is the workflow ID used to track a record
func ConfirmationWorkflowID(txID string) string {
	return fmt.Sprintf("tx-confirmation-%s", txID)
}

// TrackConfirmation starts tracking. A record is only ever tracked by one workflow.
func (t *confirmationTracker) TrackConfirmation(ctx context.Context, txID, hash string) error {
	w := NewWorkerCore(nil, WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       ConfirmationWorkflowID(txID),
		TaskQueue:                t.taskQueue,
		WorkflowExecutionTimeout: t.timeout + 10*time.Minute,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	run, err := t.orchestrator.ExecuteWorkflow(ctx, options, w.TrackTransactionConfirmation, TrackConfirmationInput{
		TransactionID: txID,
		Hash:          hash,
	})
	if err != nil {
		return fmt.Errorf("failed to start confirmation tracking: %w", err)
	}

	if run != nil {
		logger.DebugCtx(ctx, "Started confirmation tracking",
			zap.String("transactionID", txID),
			zap.String("workflowID", run.GetID()),
			zap.String("runID", run.GetRunID()))
	}
	return nil
}
