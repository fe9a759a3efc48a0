package stats

import "github.com/martige/matchbot/internal/dathost"

// MatchStore defines the persistence operations for completed matches and
// their per-player statistics.
type MatchStore interface {
	// CreateMatch persists the match row and returns it with its generated
	// id and completion timestamp.
	CreateMatch(ev *dathost.MatchEndEvent) (Match, error)
	// CreatePlayerStats persists one row per player, in event order. Each
	// insert is independent; rows written before a failure stay committed.
	CreatePlayerStats(matchID string, ev *dathost.MatchEndEvent) error
	GetAllMatches() ([]Match, error)
	GetPlayerStats(matchID string) ([]PlayerStat, error)
	GetTopPlayers(limit int) ([]PlayerAggregate, error)
	GetPlayerAggregate(steamID64 uint64) (*PlayerAggregate, error)
}
