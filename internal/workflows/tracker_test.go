package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/workflows"
)

func TestConfirmationTracker_TrackConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	tracker := workflows.NewConfirmationTracker(orchestrator, "economy-core", time.Hour)

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), workflows.TrackConfirmationInput{TransactionID: "tx-1", Hash: "0xabc"}).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "tx-confirmation-tx-1", options.ID)
			assert.Equal(t, "economy-core", options.TaskQueue)
			assert.Equal(t, 70*time.Minute, options.WorkflowExecutionTimeout)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE, options.WorkflowIDReusePolicy)
			return client.WorkflowRun(nil), nil
		})

	require.NoError(t, tracker.TrackConfirmation(context.Background(), "tx-1", "0xabc"))
}

func TestConfirmationTracker_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	tracker := workflows.NewConfirmationTracker(orchestrator, "economy-core", 0)

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("temporal unavailable"))

	err := tracker.TrackConfirmation(context.Background(), "tx-2", "0xdef")
	assert.ErrorContains(t, err, "temporal unavailable")
}
