// Package relay forwards a small allow-list of in-game chat commands from
// the log-ingestion webhook to the game server console.
package relay

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/martige/matchbot/internal/dathost"
	"github.com/martige/matchbot/internal/metrics"
)

// sayPattern matches chat lines in the game server's log output.
var sayPattern = regexp.MustCompile(`say "(.+?)"`)

const unpauseHint = `say Either team can type !unpause to immediately resume the match. Be sure both teams are ready before unpausing.`

// commands is the fixed allow-list of recognized chat commands.
var commands = map[string]string{
	"!tech":    "mp_pause_match",
	"!unpause": "mp_unpause_match",
}

// Relay matches chat commands in raw log text and forwards them to one
// configured game server.
type Relay struct {
	gameServer dathost.GameServerClient
	serverID   string
	metrics    metrics.Metrics
}

// New creates a new Relay targeting the given server.
func New(gameServer dathost.GameServerClient, serverID string, metrics metrics.Metrics) *Relay {
	return &Relay{
		gameServer: gameServer,
		serverID:   serverID,
		metrics:    metrics,
	}
}

// HandleLogLines scans newline-delimited log text for recognized chat
// commands and forwards each to the game server console. Unrecognized lines
// are ignored; a forwarding failure aborts the scan.
func (r *Relay) HandleLogLines(ctx context.Context, body string) error {
	for _, line := range strings.Split(body, "\n") {
		captures := sayPattern.FindStringSubmatch(line)
		if captures == nil {
			continue
		}

		cmd := captures[1]
		consoleLine, ok := commands[cmd]
		if !ok {
			continue
		}

		log.Info("Relaying chat command", "command", cmd, "serverID", r.serverID)
		if err := r.gameServer.SendConsoleCommand(ctx, r.serverID, consoleLine); err != nil {
			return fmt.Errorf("failed to relay %q: %w", cmd, err)
		}
		r.metrics.IncRelayCommands()

		// The pause trigger also broadcasts how to resume.
		if cmd == "!tech" {
			if err := r.gameServer.SendConsoleCommand(ctx, r.serverID, unpauseHint); err != nil {
				log.Error("Failed to broadcast unpause hint", "error", err)
			}
		}
	}
	return nil
}
