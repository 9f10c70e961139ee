// Command confirmation-report summarises the ledger confirmation workflows of a time window
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "ff-economy"
	workflowType        = "TrackTransactionConfirmation"
	maxPageSize         = 1000
)

type Config struct {
	TemporalHost string
	Namespace    string
	Since        time.Duration // Window of workflow start times to report on
	MaxWorkflows int           // Maximum number of workflows to collect (0 = unlimited)
	PageSize     int
	QueryTimeout time.Duration // Timeout for each Temporal query
	StuckAfter   time.Duration // Running workflows older than this are listed
	OutputFile   string        // Output markdown file path (optional)
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	now := time.Now()
	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)
	fmt.Printf("Collecting %s workflows started since %s\n", workflowType, now.Add(-cfg.Since).Format(time.RFC3339))

	executions, truncated, err := collectExecutions(ctx, c, cfg, now)
	if err != nil {
		fmt.Printf("Error collecting workflows: %v\n", err)
		os.Exit(1)
	}

	report := buildReport(executions, now, cfg.StuckAfter)
	report.Truncated = truncated
	printReport(os.Stdout, report)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, report); err != nil {
			fmt.Printf("Warning: failed to write markdown file: %v\n", err)
			return
		}
		fmt.Printf("Report written to: %s\n", cfg.OutputFile)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.DurationVar(&cfg.Since, "since", 24*time.Hour, "Report on workflows started within this window")
	flag.DurationVar(&cfg.StuckAfter, "stuck-after", 30*time.Minute, "List running workflows older than this")
	flag.DurationVar(&cfg.QueryTimeout, "query-timeout", 30*time.Second, "Timeout for each Temporal query")
	flag.IntVar(&cfg.MaxWorkflows, "max-workflows", 10000, "Maximum workflows to collect (0 = unlimited)")
	flag.IntVar(&cfg.PageSize, "page-size", maxPageSize, "Page size for Temporal queries (max: 1000)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")

	flag.Parse()

	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		cfg.PageSize = maxPageSize
	}
	if cfg.Since <= 0 {
		cfg.Since = 24 * time.Hour
	}

	return cfg
}
