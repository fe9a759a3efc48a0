package stats

import (
	"database/sql"
	"sync"
)

// store handles all database operations for match statistics.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Match is the durable record created from a match-end event. Exactly one
// row exists per successfully processed, non-cancelled event.
type Match struct {
	ID          string `json:"id"`
	Map         string `json:"map"`
	Team1Score  int    `json:"team1_score"`
	Team2Score  int    `json:"team2_score"`
	Team1Name   string `json:"team1_name"`
	Team2Name   string `json:"team2_name"`
	CompletedAt int64  `json:"completed_at"`
}

// PlayerStat is one persisted row per player per match.
type PlayerStat struct {
	SteamID64             uint64  `json:"steam_id"`
	MatchID               string  `json:"match_id"`
	Team                  string  `json:"team"`
	Kills                 int     `json:"kills"`
	Assists               int     `json:"assists"`
	Deaths                int     `json:"deaths"`
	ADR                   float64 `json:"adr"`
	N2Ks                  int     `json:"n2ks"`
	N3Ks                  int     `json:"n3ks"`
	N4Ks                  int     `json:"n4ks"`
	N5Ks                  int     `json:"n5ks"`
	KillsWithHeadshot     int     `json:"kills_with_headshot"`
	KillsWithPistol       int     `json:"kills_with_pistol"`
	KillsWithSniper       int     `json:"kills_with_sniper"`
	DamageDealt           int     `json:"damage_dealt"`
	EntryAttempts         int     `json:"entry_attempts"`
	EntrySuccesses        int     `json:"entry_successes"`
	FlashesThrown         int     `json:"flashes_thrown"`
	FlashesSuccessful     int     `json:"flashes_successful"`
	FlashesEnemiesBlinded int     `json:"flashes_enemies_blinded"`
	UtilityThrown         int     `json:"utility_thrown"`
	UtilityDamage         int     `json:"utility_damage"`
	N1vXAttempts          int     `json:"n1vx_attempts"`
	N1vXWins              int     `json:"n1vx_wins"`
}

// PlayerAggregate is a player's lifetime totals for the read API.
type PlayerAggregate struct {
	SteamID64 uint64  `json:"steam_id"`
	Matches   int     `json:"matches"`
	Kills     int     `json:"kills"`
	Deaths    int     `json:"deaths"`
	Assists   int     `json:"assists"`
	AvgADR    float64 `json:"avg_adr"`
	HSPercent float64 `json:"hs_percent"`
}
