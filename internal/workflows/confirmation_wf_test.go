package workflows_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/ledger"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/workflows"
)

// ConfirmationWorkflowTestSuite is the test suite for the confirmation workflow
type ConfirmationWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

func (s *ConfirmationWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		ConfirmationDepth: 3,
		PollInterval:      10 * time.Second,
		TrackingTimeout:   time.Minute,
	})
}

func (s *ConfirmationWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

func TestConfirmationWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ConfirmationWorkflowTestSuite))
}

var trackInput = workflows.TrackConfirmationInput{
	TransactionID: "01JNQ4ZK3ZB0P1Y8X6S2C7V5TD",
	Hash:          "0xabc",
}

func block(n uint64) *uint64 {
	return &n
}

func confirmationWith(status domain.TransactionStatus, confirmations uint64) func(workflows.ConfirmationInput) bool {
	return func(in workflows.ConfirmationInput) bool {
		return in.TransactionID == trackInput.TransactionID &&
			in.Hash == trackInput.Hash &&
			in.Status == status &&
			in.Confirmations == confirmations
	}
}

func (s *ConfirmationWorkflowTestSuite) TestTrackTransactionConfirmation_ReachesDepth() {
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Status: domain.TransactionStatusPending}, nil).Once()
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Block: block(100), Confirmations: 1, Status: domain.TransactionStatusConfirmed}, nil).Once()
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Block: block(100), Confirmations: 3, Status: domain.TransactionStatusConfirmed}, nil).Once()

	s.env.OnActivity(s.executor.SaveTransactionConfirmation, mock.Anything,
		mock.MatchedBy(confirmationWith(domain.TransactionStatusPending, 0))).Return(nil).Once()
	s.env.OnActivity(s.executor.SaveTransactionConfirmation, mock.Anything,
		mock.MatchedBy(confirmationWith(domain.TransactionStatusPending, 1))).Return(nil).Once()
	s.env.OnActivity(s.executor.SaveTransactionConfirmation, mock.Anything,
		mock.MatchedBy(confirmationWith(domain.TransactionStatusConfirmed, 3))).Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.TrackTransactionConfirmation, trackInput)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmationWorkflowTestSuite) TestTrackTransactionConfirmation_Failed() {
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Block: block(7), Status: domain.TransactionStatusFailed}, nil).Once()
	s.env.OnActivity(s.executor.SaveTransactionConfirmation, mock.Anything,
		mock.MatchedBy(confirmationWith(domain.TransactionStatusFailed, 0))).Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.TrackTransactionConfirmation, trackInput)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmationWorkflowTestSuite) TestTrackTransactionConfirmation_TimesOutPending() {
	// Unchanged observations are saved once.
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Status: domain.TransactionStatusPending}, nil)
	s.env.OnActivity(s.executor.SaveTransactionConfirmation, mock.Anything,
		mock.MatchedBy(confirmationWith(domain.TransactionStatusPending, 0))).Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.TrackTransactionConfirmation, trackInput)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmationWorkflowTestSuite) TestTrackTransactionConfirmation_ReceiptError() {
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(nil, temporal.NewNonRetryableApplicationError("failed to read ledger receipt", "LedgerReceiptError", errors.New("bad hash")))

	s.env.ExecuteWorkflow(s.workerCore.TrackTransactionConfirmation, trackInput)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *ConfirmationWorkflowTestSuite) TestTrackTransactionConfirmation_SaveError() {
	s.env.OnActivity(s.executor.GetLedgerReceipt, mock.Anything, "0xabc").
		Return(&ledger.Receipt{Hash: "0xabc", Status: domain.TransactionStatusPending}, nil).Once()
	s.env.OnActivity(s.executor.SaveTransactionConfirmation, mock.Anything, mock.Anything).
		Return(temporal.NewNonRetryableApplicationError("db down", "StoreError", errors.New("db down")))

	s.env.ExecuteWorkflow(s.workerCore.TrackTransactionConfirmation, trackInput)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}
