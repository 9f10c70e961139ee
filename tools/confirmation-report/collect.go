package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
)

// workflowLister is the visibility API used by the report. client.Client satisfies it.
type workflowLister interface {
	ListWorkflow(ctx context.Context, request *workflowservice.ListWorkflowExecutionsRequest) (*workflowservice.ListWorkflowExecutionsResponse, error)
}

// listQuery selects the confirmation workflows started after since
func listQuery(since time.Time) string {
	return fmt.Sprintf("WorkflowType = '%s' AND StartTime > '%s'", workflowType, since.UTC().Format(time.RFC3339))
}

// collectExecutions pages through the visibility store. It reports whether MaxWorkflows cut the result.
func collectExecutions(ctx context.Context, lister workflowLister, cfg *Config, now time.Time) ([]*workflowpb.WorkflowExecutionInfo, bool, error) {
	var executions []*workflowpb.WorkflowExecutionInfo
	var pageToken []byte

	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := lister.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			PageSize:      int32(cfg.PageSize),
			NextPageToken: pageToken,
			Query:         listQuery(now.Add(-cfg.Since)),
		})
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, false, fmt.Errorf("timeout while listing workflows (timeout: %v), try increasing -query-timeout", cfg.QueryTimeout)
			}
			return nil, false, fmt.Errorf("failed to list workflows: %w", err)
		}

		for _, exec := range resp.Executions {
			if cfg.MaxWorkflows > 0 && len(executions) >= cfg.MaxWorkflows {
				return executions, true, nil
			}
			executions = append(executions, exec)
		}

		if len(resp.NextPageToken) == 0 {
			return executions, false, nil
		}
		pageToken = resp.NextPageToken
	}
}
