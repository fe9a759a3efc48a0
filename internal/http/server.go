package http

import (
	"net/http"

	"github.com/martige/matchbot/internal/config"
	"github.com/martige/matchbot/internal/dathost"
	"github.com/martige/matchbot/internal/metrics"
	"github.com/martige/matchbot/internal/processor"
	"github.com/martige/matchbot/internal/relay"
	"github.com/martige/matchbot/internal/stats"
)

func NewServer(store stats.MatchStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, gameServer dathost.GameServerClient, proc *processor.Processor, rel *relay.Relay) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		GameServer:     gameServer,
		Processor:      proc,
		Relay:          rel,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// The /api routes share the token auth middleware, except log ingestion:
	// game servers cannot attach the Authorization header, so that route is
	// gated on the client signature instead (see LogsHandler).
	auth := authMiddleware(s.Cfg.AuthToken)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), loggingMiddleware))
	s.Router.Handle("/api/webhooks/match-end", Chain(s.MatchEndHandler(), loggingMiddleware, auth))
	s.Router.Handle("/api/ingest/logs", Chain(s.LogsHandler(), loggingMiddleware))
	s.Router.Handle("/api/servers/stop", Chain(s.StopServerHandler(), loggingMiddleware, auth))
	s.Router.Handle("/api/matches", Chain(s.ListMatchesHandler(), loggingMiddleware, auth))
	s.Router.Handle("/api/stats/top", Chain(s.TopPlayersHandler(), loggingMiddleware, auth))
	s.Router.Handle("/api/stats/player", Chain(s.PlayerStatsHandler(), loggingMiddleware, auth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
