package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
)

// TrackConfirmationInput identifies the transaction record to follow
type TrackConfirmationInput struct {
	TransactionID string `json:"transactionId"`
	Hash          string `json:"hash"`
}

// TrackTransactionConfirmation polls the ledger receipt of a record and keeps its confirmation row
// current. It stops once the transaction failed, reached the confirmation depth or the tracking
// timeout elapsed. A timeout is not an error: the row stays pending.
func (w *workerCore) TrackTransactionConfirmation(ctx workflow.Context, input TrackConfirmationInput) error {
	logger.InfoWf(ctx, "Tracking transaction confirmation",
		zap.String("transactionID", input.TransactionID),
		zap.String("hash", input.Hash))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	deadline := workflow.Now(ctx).Add(w.config.TrackingTimeout)
	var saved *ConfirmationInput

	for {
		var receipt ledger.Receipt
		err := workflow.ExecuteActivity(activityCtx, w.executor.GetLedgerReceipt, input.Hash).Get(activityCtx, &receipt)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to read ledger receipt: %w", err),
				zap.String("transactionID", input.TransactionID))
			return err
		}

		observed := w.observe(input, receipt)
		if saved == nil || !sameConfirmation(*saved, observed) {
			err := workflow.ExecuteActivity(activityCtx, w.executor.SaveTransactionConfirmation, observed).Get(activityCtx, nil)
			if err != nil {
				logger.ErrorWf(ctx, fmt.Errorf("failed to save transaction confirmation: %w", err),
					zap.String("transactionID", input.TransactionID))
				return err
			}
			saved = &observed
		}

		if observed.Status != domain.TransactionStatusPending {
			logger.InfoWf(ctx, "Transaction confirmation is final",
				zap.String("transactionID", input.TransactionID),
				zap.String("status", string(observed.Status)),
				zap.Uint64("confirmations", observed.Confirmations))
			return nil
		}

		if !workflow.Now(ctx).Before(deadline) {
			logger.WarnWf(ctx, "Stopped tracking unconfirmed transaction",
				zap.String("transactionID", input.TransactionID),
				zap.Uint64("confirmations", observed.Confirmations))
			return nil
		}

		if err := workflow.Sleep(ctx, w.config.PollInterval); err != nil {
			return err
		}
	}
}

// observe maps a receipt onto the confirmation row. An included transaction stays pending
// until it is buried under the configured depth.
func (w *workerCore) observe(input TrackConfirmationInput, receipt ledger.Receipt) ConfirmationInput {
	status := receipt.Status
	if status == domain.TransactionStatusConfirmed && receipt.Confirmations < w.config.ConfirmationDepth {
		status = domain.TransactionStatusPending
	}
	if status == "" {
		status = domain.TransactionStatusPending
	}
	return ConfirmationInput{
		TransactionID: input.TransactionID,
		Hash:          input.Hash,
		Block:         receipt.Block,
		Confirmations: receipt.Confirmations,
		Status:        status,
	}
}

func sameConfirmation(a, b ConfirmationInput) bool {
	if a.Status != b.Status || a.Confirmations != b.Confirmations {
		return false
	}
	if a.Block == nil || b.Block == nil {
		return a.Block == nil && b.Block == nil
	}
	return *a.Block == *b.Block
}
