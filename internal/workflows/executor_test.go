package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/store/schema"
	"github.com/feral-file/ff-economy/internal/workflows"
)

type executorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ledger   *mocks.MockLedger
	clock    *mocks.MockClock
	executor workflows.Executor
}

func setupExecutor(t *testing.T) *executorMocks {
	ctrl := gomock.NewController(t)
	m := &executorMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		ledger: mocks.NewMockLedger(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
	m.executor = workflows.NewExecutor(m.store, m.ledger, m.clock)
	return m
}

func TestExecutor_GetLedgerReceipt(t *testing.T) {
	m := setupExecutor(t)
	defer m.ctrl.Finish()

	n := uint64(12)
	m.ledger.EXPECT().GetReceipt(gomock.Any(), "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Block: &n, Confirmations: 4, Status: domain.TransactionStatusConfirmed}, nil)

	receipt, err := m.executor.GetLedgerReceipt(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), receipt.Confirmations)
	assert.Equal(t, domain.TransactionStatusConfirmed, receipt.Status)
}

func TestExecutor_GetLedgerReceipt_Errors(t *testing.T) {
	m := setupExecutor(t)
	defer m.ctrl.Finish()

	transient := domain.NewLedgerError("receipt", errors.New("timeout"), true)
	m.ledger.EXPECT().GetReceipt(gomock.Any(), "0xabc").Return(nil, transient)
	_, err := m.executor.GetLedgerReceipt(context.Background(), "0xabc")
	assert.ErrorIs(t, err, transient)

	m.ledger.EXPECT().GetReceipt(gomock.Any(), "0xdef").Return(nil, domain.NewLedgerError("receipt", errors.New("bad hash"), false))
	_, err = m.executor.GetLedgerReceipt(context.Background(), "0xdef")
	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.NonRetryable())
}

func TestExecutor_SaveTransactionConfirmation(t *testing.T) {
	m := setupExecutor(t)
	defer m.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := uint64(100)
	m.clock.EXPECT().Now().Return(now)
	m.store.EXPECT().UpsertTransactionConfirmation(gomock.Any(), &schema.TransactionConfirmation{
		TransactionID: "tx-1",
		Hash:          "0xabc",
		Block:         &n,
		Confirmations: 3,
		Status:        domain.TransactionStatusConfirmed,
		ObservedAt:    now,
	}).Return(nil)

	err := m.executor.SaveTransactionConfirmation(context.Background(), workflows.ConfirmationInput{
		TransactionID: "tx-1",
		Hash:          "0xabc",
		Block:         &n,
		Confirmations: 3,
		Status:        domain.TransactionStatusConfirmed,
	})
	require.NoError(t, err)
}

func TestExecutor_SaveTransactionConfirmation_MissingIDs(t *testing.T) {
	m := setupExecutor(t)
	defer m.ctrl.Finish()

	err := m.executor.SaveTransactionConfirmation(context.Background(), workflows.ConfirmationInput{Hash: "0xabc"})
	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.NonRetryable())
}
