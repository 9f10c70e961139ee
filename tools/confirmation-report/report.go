package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"

	"github.com/feral-file/ff-economy/internal/workflows"
)

// txIDPrefix is the workflow ID of a record with an empty transaction ID
var txIDPrefix = workflows.ConfirmationWorkflowID("")

// Report summarises a set of confirmation workflows
type Report struct {
	GeneratedAt time.Time
	Total       int
	ByStatus    map[enums.WorkflowExecutionStatus]int
	// Durations of closed workflows, ascending
	Durations []time.Duration
	// Stuck lists running workflows older than the stuck threshold, oldest first
	Stuck     []StuckWorkflow
	Truncated bool
}

// StuckWorkflow is a confirmation that has been followed for a long time
type StuckWorkflow struct {
	TransactionID string
	WorkflowID    string
	StartTime     time.Time
	Age           time.Duration
}

func buildReport(executions []*workflowpb.WorkflowExecutionInfo, now time.Time, stuckAfter time.Duration) *Report {
	report := &Report{
		GeneratedAt: now,
		ByStatus:    make(map[enums.WorkflowExecutionStatus]int),
	}

	for _, exec := range executions {
		report.Total++
		report.ByStatus[exec.Status]++

		start := exec.GetStartTime().AsTime()
		if exec.Status == enums.WORKFLOW_EXECUTION_STATUS_RUNNING {
			age := now.Sub(start)
			if age >= stuckAfter {
				id := exec.GetExecution().GetWorkflowId()
				report.Stuck = append(report.Stuck, StuckWorkflow{
					TransactionID: strings.TrimPrefix(id, txIDPrefix),
					WorkflowID:    id,
					StartTime:     start,
					Age:           age,
				})
			}
			continue
		}
		if exec.CloseTime != nil {
			report.Durations = append(report.Durations, exec.CloseTime.AsTime().Sub(start))
		}
	}

	sort.Slice(report.Durations, func(i, j int) bool { return report.Durations[i] < report.Durations[j] })
	sort.Slice(report.Stuck, func(i, j int) bool { return report.Stuck[i].StartTime.Before(report.Stuck[j].StartTime) })
	return report
}

// Percentile returns the nearest-rank percentile of the closed workflow durations
func (r *Report) Percentile(p float64) time.Duration {
	if len(r.Durations) == 0 {
		return 0
	}
	rank := int(math.Ceil(p/100*float64(len(r.Durations)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(r.Durations) {
		rank = len(r.Durations) - 1
	}
	return r.Durations[rank]
}

// statuses returns the observed statuses in enum order
func (r *Report) statuses() []enums.WorkflowExecutionStatus {
	statuses := make([]enums.WorkflowExecutionStatus, 0, len(r.ByStatus))
	for s := range r.ByStatus {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}

func printReport(w io.Writer, r *Report) {
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(w, "CONFIRMATION WORKFLOWS")
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(w, "Total: %d\n", r.Total)
	if r.Truncated {
		_, _ = fmt.Fprintln(w, "Result truncated by -max-workflows")
	}
	for _, s := range r.statuses() {
		_, _ = fmt.Fprintf(w, "  %-16s %6d  %s\n", formatStatus(s), r.ByStatus[s], percentageString(r.ByStatus[s], r.Total))
	}
	if len(r.Durations) > 0 {
		_, _ = fmt.Fprintf(w, "Time to close: p50 %s, p95 %s, max %s\n",
			formatDuration(r.Percentile(50)), formatDuration(r.Percentile(95)), formatDuration(r.Percentile(100)))
	}
	if len(r.Stuck) > 0 {
		_, _ = fmt.Fprintf(w, "Still tracking after threshold: %d\n", len(r.Stuck))
		for _, s := range r.Stuck {
			_, _ = fmt.Fprintf(w, "  %s  %s\n", s.TransactionID, formatDuration(s.Age))
		}
	}
}

// writeMarkdownReport writes the report as markdown
func writeMarkdownReport(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return renderMarkdown(file, r)
}

func renderMarkdown(w io.Writer, r *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Confirmation Workflow Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Status\n\n")
	fmt.Fprintf(&b, "| Status | Count | Share |\n")
	fmt.Fprintf(&b, "|--------|-------|-------|\n")
	for _, s := range r.statuses() {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", formatStatus(s), r.ByStatus[s], percentageString(r.ByStatus[s], r.Total))
	}
	fmt.Fprintf(&b, "| **Total** | %d | |\n\n", r.Total)
	if r.Truncated {
		fmt.Fprintf(&b, "_Result truncated by -max-workflows._\n\n")
	}

	if len(r.Durations) > 0 {
		fmt.Fprintf(&b, "## Time to close\n\n")
		fmt.Fprintf(&b, "| p50 | p95 | max |\n")
		fmt.Fprintf(&b, "|-----|-----|-----|\n")
		fmt.Fprintf(&b, "| %s | %s | %s |\n\n",
			formatDuration(r.Percentile(50)), formatDuration(r.Percentile(95)), formatDuration(r.Percentile(100)))
	}

	if len(r.Stuck) > 0 {
		fmt.Fprintf(&b, "## Still tracking\n\n")
		fmt.Fprintf(&b, "| Transaction | Started | Age |\n")
		fmt.Fprintf(&b, "|-------------|---------|-----|\n")
		for _, s := range r.Stuck {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", s.TransactionID, s.StartTime.Format("2006-01-02 15:04:05"), formatDuration(s.Age))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "TIMED_OUT"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

func percentageString(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}
