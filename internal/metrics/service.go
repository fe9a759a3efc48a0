package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		WebhooksReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbot_webhooks_received_total",
			Help: "The total number of match-end webhooks received.",
		}),
		MatchesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbot_matches_processed_total",
			Help: "The total number of matches the pipeline processed to completion.",
		}),
		PipelineFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbot_pipeline_failures_total",
			Help: "The total number of pipeline failures, by failing stage.",
		}, []string{"stage"}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchbot_pipeline_duration_seconds",
			Help:    "The duration of individual match-end pipeline runs.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 240, 480},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbot_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbot_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		RelayCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbot_relay_commands_total",
			Help: "The total number of chat commands relayed to the game server.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchbot_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.WebhooksReceived,
		s.MatchesProcessed,
		s.PipelineFailures,
		s.ProcessingDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.RelayCommands,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncWebhooksReceived() {
	s.WebhooksReceived.Inc()
}

func (s *Service) IncMatchesProcessed() {
	s.MatchesProcessed.Inc()
}

func (s *Service) IncPipelineFailures(stage string) {
	s.PipelineFailures.WithLabelValues(stage).Inc()
}

func (s *Service) ObserveProcessingDuration(seconds float64) {
	s.ProcessingDuration.Observe(seconds)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncRelayCommands() {
	s.RelayCommands.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
