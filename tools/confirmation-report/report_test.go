package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	commonpb "go.temporal.io/api/common/v1"
	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func execution(txID string, status enums.WorkflowExecutionStatus, started time.Duration, duration time.Duration) *workflowpb.WorkflowExecutionInfo {
	start := now.Add(-started)
	info := &workflowpb.WorkflowExecutionInfo{
		Execution: &commonpb.WorkflowExecution{WorkflowId: "tx-confirmation-" + txID, RunId: "run-" + txID},
		Type:      &commonpb.WorkflowType{Name: workflowType},
		Status:    status,
		StartTime: timestamppb.New(start),
	}
	if status != enums.WORKFLOW_EXECUTION_STATUS_RUNNING {
		info.CloseTime = timestamppb.New(start.Add(duration))
	}
	return info
}

func TestBuildReport(t *testing.T) {
	executions := []*workflowpb.WorkflowExecutionInfo{
		execution("a", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, 5*time.Hour, 3*time.Minute),
		execution("b", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, 4*time.Hour, time.Minute),
		execution("c", enums.WORKFLOW_EXECUTION_STATUS_FAILED, 3*time.Hour, 10*time.Minute),
		execution("d", enums.WORKFLOW_EXECUTION_STATUS_RUNNING, 2*time.Hour, 0),
		execution("e", enums.WORKFLOW_EXECUTION_STATUS_RUNNING, 10*time.Minute, 0),
		execution("f", enums.WORKFLOW_EXECUTION_STATUS_RUNNING, 3*time.Hour, 0),
	}

	report := buildReport(executions, now, 30*time.Minute)

	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 2, report.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_COMPLETED])
	assert.Equal(t, 1, report.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_FAILED])
	assert.Equal(t, 3, report.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_RUNNING])

	assert.Equal(t, []time.Duration{time.Minute, 3 * time.Minute, 10 * time.Minute}, report.Durations)

	require.Len(t, report.Stuck, 2)
	assert.Equal(t, "f", report.Stuck[0].TransactionID)
	assert.Equal(t, "d", report.Stuck[1].TransactionID)
	assert.Equal(t, 2*time.Hour, report.Stuck[1].Age)
}

func TestReportPercentile(t *testing.T) {
	report := &Report{Durations: []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}

	assert.Equal(t, time.Duration(5), report.Percentile(50))
	assert.Equal(t, time.Duration(10), report.Percentile(95))
	assert.Equal(t, time.Duration(10), report.Percentile(100))
	assert.Equal(t, time.Duration(1), report.Percentile(0))
	assert.Equal(t, time.Duration(0), (&Report{}).Percentile(50))
}

type fakeLister struct {
	pages    []*workflowservice.ListWorkflowExecutionsResponse
	requests []*workflowservice.ListWorkflowExecutionsRequest
	err      error
}

func (f *fakeLister) ListWorkflow(_ context.Context, req *workflowservice.ListWorkflowExecutionsRequest) (*workflowservice.ListWorkflowExecutionsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func TestCollectExecutions(t *testing.T) {
	cfg := &Config{Namespace: "ff-economy", Since: time.Hour, PageSize: 2, QueryTimeout: time.Second}

	t.Run("follows page tokens", func(t *testing.T) {
		lister := &fakeLister{pages: []*workflowservice.ListWorkflowExecutionsResponse{
			{
				Executions: []*workflowpb.WorkflowExecutionInfo{
					execution("a", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, time.Minute, time.Second),
					execution("b", enums.WORKFLOW_EXECUTION_STATUS_RUNNING, time.Minute, 0),
				},
				NextPageToken: []byte("next"),
			},
			{
				Executions: []*workflowpb.WorkflowExecutionInfo{
					execution("c", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, time.Minute, time.Second),
				},
			},
		}}

		executions, truncated, err := collectExecutions(context.Background(), lister, cfg, now)
		require.NoError(t, err)
		assert.False(t, truncated)
		assert.Len(t, executions, 3)

		require.Len(t, lister.requests, 2)
		assert.Nil(t, lister.requests[0].NextPageToken)
		assert.Equal(t, []byte("next"), lister.requests[1].NextPageToken)
		assert.Equal(t, "WorkflowType = 'TrackTransactionConfirmation' AND StartTime > '2026-03-01T11:00:00Z'", lister.requests[0].Query)
	})

	t.Run("stops at max workflows", func(t *testing.T) {
		limited := *cfg
		limited.MaxWorkflows = 1
		lister := &fakeLister{pages: []*workflowservice.ListWorkflowExecutionsResponse{
			{
				Executions: []*workflowpb.WorkflowExecutionInfo{
					execution("a", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, time.Minute, time.Second),
					execution("b", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, time.Minute, time.Second),
				},
				NextPageToken: []byte("next"),
			},
		}}

		executions, truncated, err := collectExecutions(context.Background(), lister, &limited, now)
		require.NoError(t, err)
		assert.True(t, truncated)
		assert.Len(t, executions, 1)
	})

	t.Run("list error", func(t *testing.T) {
		lister := &fakeLister{err: errors.New("unavailable")}

		_, _, err := collectExecutions(context.Background(), lister, cfg, now)
		assert.EqualError(t, err, "failed to list workflows: unavailable")
	})
}

func TestRenderMarkdown(t *testing.T) {
	report := buildReport([]*workflowpb.WorkflowExecutionInfo{
		execution("a", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, time.Hour, 90*time.Second),
		execution("b", enums.WORKFLOW_EXECUTION_STATUS_RUNNING, time.Hour, 0),
	}, now, 30*time.Minute)

	var b strings.Builder
	require.NoError(t, renderMarkdown(&b, report))
	out := b.String()

	assert.Contains(t, out, "| COMPLETED | 1 | 50.00% |")
	assert.Contains(t, out, "| RUNNING | 1 | 50.00% |")
	assert.Contains(t, out, "| 1m 30s | 1m 30s | 1m 30s |")
	assert.Contains(t, out, "| `b` | 2026-03-01 11:00:00 | 1h 0m |")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "milliseconds", duration: 500 * time.Millisecond, want: "500ms"},
		{name: "seconds", duration: 5 * time.Second, want: "5.00s"},
		{name: "minutes", duration: 2*time.Minute + 30*time.Second, want: "2m 30s"},
		{name: "hours", duration: time.Hour + 15*time.Minute, want: "1h 15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}
