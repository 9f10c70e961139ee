// Package metrics exposes Prometheus collectors for the economy service
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "ff_economy"

var (
	// Registry holds the service collectors
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	ledgerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "calls_total",
			Help:      "Total number of value moving ledger calls.",
		},
		[]string{"operation", "success"},
	)

	ledgerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "call_duration_seconds",
			Help:      "Duration of value moving ledger calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"operation"},
	)

	inconsistencies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "inconsistencies_total",
			Help:      "Total number of journaled partial success conditions.",
		},
		[]string{"kind"},
	)

	rewardsMinted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewards",
			Name:      "minted_tokens_total",
			Help:      "Total amount of reward tokens minted.",
		},
		[]string{"source"},
	)

	reconciled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "processed_total",
			Help:      "Total number of inconsistencies processed by the sweeper.",
		},
		[]string{"kind", "result"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		ledgerCalls,
		ledgerDuration,
		inconsistencies,
		rewardsMinted,
		reconciled,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records a handled HTTP request. route is the route template.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveLedgerCall records a value moving ledger call
func ObserveLedgerCall(operation string, success bool, duration time.Duration) {
	ledgerCalls.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
	ledgerDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncInconsistency records a journaled inconsistency
func IncInconsistency(kind string) {
	inconsistencies.WithLabelValues(kind).Inc()
}

// IncReconciled records an inconsistency processed by the sweeper
func IncReconciled(kind, result string) {
	reconciled.WithLabelValues(kind, result).Inc()
}

// AddRewardsMinted records minted reward tokens by source (harvest, staking)
func AddRewardsMinted(source string, amount decimal.Decimal) {
	rewardsMinted.WithLabelValues(source).Add(amount.InexactFloat64())
}
