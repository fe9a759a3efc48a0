package dathost

// MatchEndEvent is the payload DatHost posts to the match-end webhook when a
// match finishes. It is decoded once per request and never persisted as-is.
type MatchEndEvent struct {
	ID           string         `json:"id"`
	GameServerID string         `json:"game_server_id"`
	CancelReason string         `json:"cancel_reason"`
	Finished     bool           `json:"finished"`
	RoundsPlayed int            `json:"rounds_played"`
	Settings     MatchSettings  `json:"settings"`
	Team1        TeamResult     `json:"team1"`
	Team2        TeamResult     `json:"team2"`
	Players      []PlayerResult `json:"players"`
}

// MatchSettings carries the match configuration DatHost echoes back.
type MatchSettings struct {
	Map         string `json:"map"`
	ConnectTime int    `json:"connect_time"`
	WarmupTime  int    `json:"warmup_time"`
}

// TeamResult is one of exactly two per event.
type TeamResult struct {
	Name  string    `json:"name"`
	Stats TeamStats `json:"stats"`
}

type TeamStats struct {
	Score int `json:"score"`
}

// PlayerResult ties a steam id to a team tag ("team1"/"team2") and the full
// per-player stat bundle. SteamID64 must survive decoding without truncation;
// encoding/json reads integer tokens straight into uint64, so it does.
type PlayerResult struct {
	SteamID64 uint64      `json:"steam_id_64"`
	Team      string      `json:"team"`
	Connected bool        `json:"connected"`
	Kicked    bool        `json:"kicked"`
	Stats     PlayerStats `json:"stats"`
}

// PlayerStats are raw counters from the game server. Rates like ADR and HS%
// are always derived at read time, never carried on the wire.
type PlayerStats struct {
	Kills                 int `json:"kills"`
	Assists               int `json:"assists"`
	Deaths                int `json:"deaths"`
	N2Ks                  int `json:"2ks"`
	N3Ks                  int `json:"3ks"`
	N4Ks                  int `json:"4ks"`
	N5Ks                  int `json:"5ks"`
	KillsWithHeadshot     int `json:"kills_with_headshot"`
	KillsWithPistol       int `json:"kills_with_pistol"`
	KillsWithSniper       int `json:"kills_with_sniper"`
	DamageDealt           int `json:"damage_dealt"`
	EntryAttempts         int `json:"entry_attempts"`
	EntrySuccesses        int `json:"entry_successes"`
	FlashesThrown         int `json:"flashes_thrown"`
	FlashesSuccessful     int `json:"flashes_successful"`
	FlashesEnemiesBlinded int `json:"flashes_enemies_blinded"`
	UtilityThrown         int `json:"utility_thrown"`
	UtilityDamage         int `json:"utility_damage"`
	N1vXAttempts          int `json:"1vX_attempts"`
	N1vXWins              int `json:"1vX_wins"`
}

// SteamIDs returns every player's steam id in event order.
func (e *MatchEndEvent) SteamIDs() []uint64 {
	ids := make([]uint64, 0, len(e.Players))
	for _, p := range e.Players {
		ids = append(ids, p.SteamID64)
	}
	return ids
}
