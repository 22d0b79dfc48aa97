package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for monitoring
var (
	FlowRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gasless_flow_runs_total",
		Help: "The total number of orchestration runs by outcome",
	}, []string{"chain_id", "outcome"})

	FlowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gasless_flow_duration_seconds",
		Help:    "End-to-end duration of orchestration runs",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10), // Start at 1s with 10 buckets doubling in size
	}, []string{"chain_id"})

	FundingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gasless_funding_requests_total",
		Help: "The total number of funding requests sent to the funding service",
	}, []string{"chain_id", "status"})

	FundingWaitPolls = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gasless_funding_wait_polls",
		Help:    "Balance poll attempts used before funding was observed",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	}, []string{"chain_id"})

	ApprovalsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gasless_approvals_submitted_total",
		Help: "The total number of approval transactions submitted",
	}, []string{"chain_id", "status"})

	ApprovalsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gasless_approvals_skipped_total",
		Help: "The total number of runs where the existing allowance was sufficient",
	}, []string{"chain_id"})

	RelaySubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gasless_relay_submissions_total",
		Help: "The total number of intents submitted to the relay service",
	}, []string{"chain_id", "status"})

	FlowFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gasless_flow_failures_total",
		Help: "Total number of failed runs by fault kind",
	}, []string{"chain_id", "kind"})
)
