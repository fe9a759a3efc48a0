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

type Server struct {
	Store          stats.MatchStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	GameServer     dathost.GameServerClient
	Processor      *processor.Processor
	Relay          *relay.Relay
	Router         *http.ServeMux
}
