package processor

import (
	"time"

	"github.com/martige/matchbot/internal/archive"
	"github.com/martige/matchbot/internal/dathost"
	"github.com/martige/matchbot/internal/metrics"
	"github.com/martige/matchbot/internal/notifier"
	"github.com/martige/matchbot/internal/scoreboard"
	"github.com/martige/matchbot/internal/stats"
	"github.com/martige/matchbot/internal/steam"
)

// Stage identifies how far a pipeline run has advanced. The pipeline is a
// linear state machine: each stage is reached strictly after the previous
// one succeeded, and a failure freezes the run at the stage it died in.
type Stage string

const (
	StageReceived     Stage = "received"
	StagePersisted    Stage = "persisted"
	StageStatsWritten Stage = "stats_written"
	StageDemoFetched  Stage = "demo_fetched"
	StageArchived     Stage = "archived"
	StageSummarized   Stage = "summarized"
	StageNotified     Stage = "notified"
	StageDone         Stage = "done"
)

// Result describes a finished pipeline run. Earlier stages' side effects are
// never rolled back, so a Result alongside an error still reports real,
// durable work.
type Result struct {
	Stage        Stage
	Cancelled    bool
	CancelReason string
	MatchID      string
	DemoKey      string
	DemoURL      string
	Summary      *scoreboard.Summary
	// NotifyErr records a best-effort notification failure that did not
	// fail the run.
	NotifyErr error
}

// Processor owns the match-end pipeline.
type Processor struct {
	store          stats.MatchStore
	gameServer     dathost.GameServerClient
	archive        archive.BlobStore
	profiles       steam.ProfileClient
	notifier       notifier.Notifier
	metrics        metrics.Metrics
	broadcastDelay time.Duration

	// sleep is swappable so tests do not wait out the broadcast delay.
	sleep func(time.Duration)
}
