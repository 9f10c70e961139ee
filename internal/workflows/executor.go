package workflows

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// GetLedgerReceipt returns the chain state of a submitted transaction
	GetLedgerReceipt(ctx context.Context, hash string) (*ledger.Receipt, error)

	// SaveTransactionConfirmation upserts the confirmation row of a transaction record
	SaveTransactionConfirmation(ctx context.Context, input ConfirmationInput) error
}

// ConfirmationInput is the observed chain state of a transaction record
type ConfirmationInput struct {
	TransactionID string                   `json:"transactionId"`
	Hash          string                   `json:"hash"`
	Block         *uint64                  `json:"block,omitempty"`
	Confirmations uint64                   `json:"confirmations"`
	Status        domain.TransactionStatus `json:"status"`
}

// executor is the concrete implementation of Executor
type executor struct {
	store  store.Store
	ledger ledger.Ledger
	clock  adapter.Clock
}

// NewExecutor creates a new executor instance
func NewExecutor(st store.Store, l ledger.Ledger, clock adapter.Clock) Executor {
	return &executor{
		store:  st,
		ledger: l,
		clock:  clock,
	}
}

// GetLedgerReceipt reads the receipt of hash. Ledger errors not marked retryable stop the workflow retries.
func (e *executor) GetLedgerReceipt(ctx context.Context, hash string) (*ledger.Receipt, error) {
	receipt, err := e.ledger.GetReceipt(ctx, hash)
	if err != nil {
		if domain.IsRetryable(err) {
			return nil, err
		}
		return nil, temporal.NewNonRetryableApplicationError(
			"failed to read ledger receipt", "LedgerReceiptError", err)
	}
	if receipt == nil {
		return &ledger.Receipt{Hash: hash, Status: domain.TransactionStatusPending}, nil
	}
	return receipt, nil
}

// SaveTransactionConfirmation upserts the confirmation of a record
func (e *executor) SaveTransactionConfirmation(ctx context.Context, input ConfirmationInput) error {
	if input.TransactionID == "" || input.Hash == "" {
		return temporal.NewNonRetryableApplicationError(
			"transaction id and hash are required", "InvalidConfirmation", errors.New("missing identifiers"))
	}

	confirmation := &schema.TransactionConfirmation{
		TransactionID: input.TransactionID,
		Hash:          input.Hash,
		Block:         input.Block,
		Confirmations: input.Confirmations,
		Status:        input.Status,
		ObservedAt:    e.clock.Now().UTC(),
	}
	if err := e.store.UpsertTransactionConfirmation(ctx, confirmation); err != nil {
		logger.WarnCtx(ctx, "Failed to save transaction confirmation",
			zap.String("transactionID", input.TransactionID),
			zap.Error(err))
		return err
	}
	return nil
}
