package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	WebhooksReceived   prometheus.Counter
	MatchesProcessed   prometheus.Counter
	PipelineFailures   *prometheus.CounterVec
	ProcessingDuration prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	RelayCommands      prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
