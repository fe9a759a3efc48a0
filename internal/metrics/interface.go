package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncWebhooksReceived()
	IncMatchesProcessed()
	IncPipelineFailures(stage string)
	ObserveProcessingDuration(seconds float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncRelayCommands()
	SetStartupTime(seconds float64)
}
