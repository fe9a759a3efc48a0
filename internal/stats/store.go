package stats

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/martige/matchbot/internal/dathost"
)

// New creates a new MatchStore backed by the given database.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// CreateMatch persists the match row. The completion timestamp is assigned
// here, not taken from the event.
func (s *store) CreateMatch(ev *dathost.MatchEndEvent) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Match{
		ID:          uuid.NewString(),
		Map:         ev.Settings.Map,
		Team1Score:  ev.Team1.Stats.Score,
		Team2Score:  ev.Team2.Stats.Score,
		Team1Name:   ev.Team1.Name,
		Team2Name:   ev.Team2.Name,
		CompletedAt: time.Now().Unix(),
	}

	_, err := s.db.Exec(`
		INSERT INTO matches (id, map, team1_score, team2_score, team1_name, team2_name, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Map, m.Team1Score, m.Team2Score, m.Team1Name, m.Team2Name, m.CompletedAt)
	if err != nil {
		return Match{}, fmt.Errorf("failed to insert match: %w", err)
	}
	log.Debug("Persisted match", "matchID", m.ID, "map", m.Map)
	return m, nil
}

// CreatePlayerStats inserts one row per player in event order. Inserts are
// deliberately not wrapped in a transaction: rows committed before a failing
// insert stay committed.
func (s *store) CreatePlayerStats(matchID string, ev *dathost.MatchEndEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range ev.Players {
		adr := float64(max(p.Stats.DamageDealt, 1)) / float64(max(ev.RoundsPlayed, 1))
		_, err := s.db.Exec(`
			INSERT INTO match_stats (
				steam_id, match_id, team, kills, assists, deaths, adr,
				n2ks, n3ks, n4ks, n5ks,
				kills_with_headshot, kills_with_pistol, kills_with_sniper,
				damage_dealt, entry_attempts, entry_successes,
				flashes_thrown, flashes_successful, flashes_enemies_blinded,
				utility_thrown, utility_damage, n1vx_attempts, n1vx_wins
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			int64(p.SteamID64), matchID, p.Team,
			p.Stats.Kills, p.Stats.Assists, p.Stats.Deaths, adr,
			p.Stats.N2Ks, p.Stats.N3Ks, p.Stats.N4Ks, p.Stats.N5Ks,
			p.Stats.KillsWithHeadshot, p.Stats.KillsWithPistol, p.Stats.KillsWithSniper,
			p.Stats.DamageDealt, p.Stats.EntryAttempts, p.Stats.EntrySuccesses,
			p.Stats.FlashesThrown, p.Stats.FlashesSuccessful, p.Stats.FlashesEnemiesBlinded,
			p.Stats.UtilityThrown, p.Stats.UtilityDamage, p.Stats.N1vXAttempts, p.Stats.N1vXWins,
		)
		if err != nil {
			return fmt.Errorf("failed to insert stats for player %d: %w", p.SteamID64, err)
		}
	}
	log.Debug("Persisted player stats", "matchID", matchID, "players", len(ev.Players))
	return nil
}

// GetAllMatches returns every persisted match, most recent first.
func (s *store) GetAllMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, map, team1_score, team2_score, team1_name, team2_name, completed_at
		FROM matches
		ORDER BY completed_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.Map, &m.Team1Score, &m.Team2Score, &m.Team1Name, &m.Team2Name, &m.CompletedAt); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetPlayerStats returns the persisted rows for one match in insertion order.
func (s *store) GetPlayerStats(matchID string) ([]PlayerStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT steam_id, match_id, team, kills, assists, deaths, adr,
			n2ks, n3ks, n4ks, n5ks,
			kills_with_headshot, kills_with_pistol, kills_with_sniper,
			damage_dealt, entry_attempts, entry_successes,
			flashes_thrown, flashes_successful, flashes_enemies_blinded,
			utility_thrown, utility_damage, n1vx_attempts, n1vx_wins
		FROM match_stats
		WHERE match_id = ?
		ORDER BY rowid
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerStat
	for rows.Next() {
		var (
			p       PlayerStat
			steamID int64
		)
		if err := rows.Scan(&steamID, &p.MatchID, &p.Team, &p.Kills, &p.Assists, &p.Deaths, &p.ADR,
			&p.N2Ks, &p.N3Ks, &p.N4Ks, &p.N5Ks,
			&p.KillsWithHeadshot, &p.KillsWithPistol, &p.KillsWithSniper,
			&p.DamageDealt, &p.EntryAttempts, &p.EntrySuccesses,
			&p.FlashesThrown, &p.FlashesSuccessful, &p.FlashesEnemiesBlinded,
			&p.UtilityThrown, &p.UtilityDamage, &p.N1vXAttempts, &p.N1vXWins); err != nil {
			return nil, err
		}
		p.SteamID64 = uint64(steamID)
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetTopPlayers returns lifetime aggregates ordered by average ADR.
func (s *store) GetTopPlayers(limit int) ([]PlayerAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT steam_id, COUNT(*), SUM(kills), SUM(deaths), SUM(assists), AVG(adr), SUM(kills_with_headshot)
		FROM match_stats
		GROUP BY steam_id
		ORDER BY AVG(adr) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerAggregate
	for rows.Next() {
		agg, err := scanAggregate(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	return out, rows.Err()
}

// GetPlayerAggregate returns one player's lifetime totals, or nil if the
// player has no persisted matches.
func (s *store) GetPlayerAggregate(steamID64 uint64) (*PlayerAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT steam_id, COUNT(*), SUM(kills), SUM(deaths), SUM(assists), AVG(adr), SUM(kills_with_headshot)
		FROM match_stats
		WHERE steam_id = ?
		GROUP BY steam_id
	`, int64(steamID64))

	agg, err := scanAggregate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func scanAggregate(scan func(dest ...any) error) (PlayerAggregate, error) {
	var (
		agg     PlayerAggregate
		steamID int64
		hsKills int
	)
	if err := scan(&steamID, &agg.Matches, &agg.Kills, &agg.Deaths, &agg.Assists, &agg.AvgADR, &hsKills); err != nil {
		return PlayerAggregate{}, err
	}
	agg.SteamID64 = uint64(steamID)
	agg.HSPercent = float64(hsKills) / float64(max(agg.Kills, 1)) * 100
	return agg, nil
}
