package processor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/martige/matchbot/internal/archive"
	"github.com/martige/matchbot/internal/dathost"
	"github.com/martige/matchbot/internal/metrics"
	"github.com/martige/matchbot/internal/notifier"
	"github.com/martige/matchbot/internal/scoreboard"
	"github.com/martige/matchbot/internal/stats"
	"github.com/martige/matchbot/internal/steam"
)

// broadcastSafetyMargin is added on top of the configured GOTV delay before
// the demo file is guaranteed fully written on the game server.
const broadcastSafetyMargin = 30 * time.Second

// New creates a new Processor. broadcastDelay is the configured GOTV delay;
// the safety margin is added per run.
func New(store stats.MatchStore, gameServer dathost.GameServerClient, archiveStore archive.BlobStore, profiles steam.ProfileClient, notif notifier.Notifier, metrics metrics.Metrics, broadcastDelay time.Duration) *Processor {
	return &Processor{
		store:          store,
		gameServer:     gameServer,
		archive:        archiveStore,
		profiles:       profiles,
		notifier:       notif,
		metrics:        metrics,
		broadcastDelay: broadcastDelay,
		sleep:          time.Sleep,
	}
}

// ProcessMatchEnd runs the match-end pipeline for one event. Steps execute
// strictly in order and the first failure aborts the run; work completed in
// earlier steps stays in place. A cancelled match short-circuits to success
// with nothing persisted. The notification step is best-effort: its failure
// is recorded on the Result but never returned as an error.
func (p *Processor) ProcessMatchEnd(ctx context.Context, ev *dathost.MatchEndEvent, waitForBroadcast bool) (*Result, error) {
	startTime := time.Now()
	res := &Result{Stage: StageReceived}

	if ev.CancelReason != "" {
		log.Info("Match was cancelled, skipping pipeline", "matchID", ev.ID, "reason", ev.CancelReason)
		res.Cancelled = true
		res.CancelReason = ev.CancelReason
		return res, nil
	}

	match, err := p.store.CreateMatch(ev)
	if err != nil {
		return p.fail(res, ErrPersistence, err)
	}
	res.Stage = StagePersisted
	res.MatchID = match.ID
	log.Info("Persisted match", "matchID", match.ID, "map", match.Map)

	if err := p.store.CreatePlayerStats(match.ID, ev); err != nil {
		return p.fail(res, ErrPersistence, err)
	}
	res.Stage = StageStatsWritten
	log.Info("Persisted player stats", "matchID", match.ID, "players", len(ev.Players))

	if waitForBroadcast {
		delay := p.broadcastDelay + broadcastSafetyMargin
		log.Info("Waiting for GOTV broadcast to finish", "delay", delay)
		p.sleep(delay)
	}

	demoKey := ev.ID + ".dem"
	demo, err := p.gameServer.GetFile(ctx, ev.GameServerID, demoKey)
	if err != nil {
		return p.fail(res, ErrUpstreamFetch, err)
	}
	res.Stage = StageDemoFetched
	res.DemoKey = demoKey

	if err := p.archive.Upload(ctx, demoKey, demo); err != nil {
		return p.fail(res, ErrDemoUpload, err)
	}
	res.Stage = StageArchived
	res.DemoURL = p.archive.PublicURL(demoKey)

	names, err := p.profiles.GetPlayerSummaries(ctx, ev.SteamIDs())
	if err != nil {
		return p.fail(res, ErrUpstreamFetch, err)
	}
	summary, err := scoreboard.Build(ev, names)
	if err != nil {
		return p.fail(res, err, err)
	}
	res.Stage = StageSummarized
	res.Summary = summary

	if err := p.notifier.SendMatchSummary(ctx, summary, res.DemoURL); err != nil {
		// The match is already persisted and archived; notification is
		// best-effort.
		log.Warn("Failed to send match summary notification", "matchID", match.ID, "error", err)
		res.NotifyErr = err
	} else {
		res.Stage = StageNotified
	}

	res.Stage = StageDone
	p.metrics.IncMatchesProcessed()
	p.metrics.ObserveProcessingDuration(time.Since(startTime).Seconds())
	log.Info("Match-end pipeline finished", "matchID", match.ID, "mvp", summary.MVPName)
	return res, nil
}

func (p *Processor) fail(res *Result, kind, err error) (*Result, error) {
	perr := failed(res.Stage, kind, err)
	p.metrics.IncPipelineFailures(string(res.Stage))
	log.Error("Match-end pipeline failed", "stage", res.Stage, "error", err)
	return res, perr
}
