package stats

import (
	"database/sql"
	"testing"

	"github.com/martige/matchbot/internal/database"
	"github.com/martige/matchbot/internal/dathost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (MatchStore, *sql.DB) {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	t.Cleanup(teardown)
	return New(db), db
}

func testEvent() *dathost.MatchEndEvent {
	return &dathost.MatchEndEvent{
		ID:           "dathost-match-1",
		GameServerID: "server-1",
		Finished:     true,
		RoundsPlayed: 16,
		Settings:     dathost.MatchSettings{Map: "de_ancient"},
		Team1:        dathost.TeamResult{Name: "Alpha", Stats: dathost.TeamStats{Score: 9}},
		Team2:        dathost.TeamResult{Name: "Bravo", Stats: dathost.TeamStats{Score: 7}},
		Players: []dathost.PlayerResult{
			{
				SteamID64: 76561198000000001,
				Team:      "team1",
				Connected: true,
				Stats: dathost.PlayerStats{
					Kills: 20, Assists: 4, Deaths: 12, DamageDealt: 1600,
					KillsWithHeadshot: 10, N2Ks: 3, EntryAttempts: 5, EntrySuccesses: 3,
					FlashesThrown: 8, FlashesSuccessful: 4, FlashesEnemiesBlinded: 6,
					UtilityThrown: 12, UtilityDamage: 240, N1vXAttempts: 2, N1vXWins: 1,
				},
			},
			{
				SteamID64: 76561198000000002,
				Team:      "team2",
				Connected: true,
				Stats: dathost.PlayerStats{
					Kills: 12, Assists: 6, Deaths: 15, DamageDealt: 960,
					KillsWithHeadshot: 3,
				},
			},
		},
	}
}

func TestCreateMatch(t *testing.T) {
	store, db := setupStore(t)

	m, err := store.CreateMatch(testEvent())
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID, "a fresh match id should be assigned")
	assert.NotEqual(t, "dathost-match-1", m.ID, "the match id is ours, not the upstream one")
	assert.Equal(t, "de_ancient", m.Map)
	assert.Equal(t, 9, m.Team1Score)
	assert.Equal(t, 7, m.Team2Score)
	assert.Equal(t, "Alpha", m.Team1Name)
	assert.Equal(t, "Bravo", m.Team2Name)
	assert.NotZero(t, m.CompletedAt)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestCreatePlayerStats(t *testing.T) {
	store, _ := setupStore(t)
	ev := testEvent()

	m, err := store.CreateMatch(ev)
	require.NoError(t, err)
	require.NoError(t, store.CreatePlayerStats(m.ID, ev))

	rows, err := store.GetPlayerStats(m.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2, "one row per player")

	first := rows[0]
	assert.Equal(t, uint64(76561198000000001), first.SteamID64)
	assert.Equal(t, m.ID, first.MatchID)
	assert.Equal(t, "team1", first.Team)
	assert.Equal(t, 20, first.Kills)
	assert.Equal(t, 4, first.Assists)
	assert.Equal(t, 12, first.Deaths)
	assert.InDelta(t, 100.0, first.ADR, 0.001, "1600 damage over 16 rounds")
	assert.Equal(t, 3, first.N2Ks)
	assert.Equal(t, 10, first.KillsWithHeadshot)
	assert.Equal(t, 3, first.EntrySuccesses)
	assert.Equal(t, 6, first.FlashesEnemiesBlinded)
	assert.Equal(t, 240, first.UtilityDamage)
	assert.Equal(t, 1, first.N1vXWins)

	second := rows[1]
	assert.Equal(t, uint64(76561198000000002), second.SteamID64)
	assert.InDelta(t, 60.0, second.ADR, 0.001)
}

func TestCreatePlayerStats_ZeroRoundsFloorsDivisor(t *testing.T) {
	store, _ := setupStore(t)
	ev := testEvent()
	ev.RoundsPlayed = 0
	ev.Players = ev.Players[:1]

	m, err := store.CreateMatch(ev)
	require.NoError(t, err)
	require.NoError(t, store.CreatePlayerStats(m.ID, ev))

	rows, err := store.GetPlayerStats(m.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 1600.0, rows[0].ADR, 0.001, "zero rounds is treated as one")
}

func TestCreatePlayerStats_UnknownMatchFails(t *testing.T) {
	store, _ := setupStore(t)

	err := store.CreatePlayerStats("no-such-match", testEvent())
	require.Error(t, err, "foreign key to matches should reject orphan rows")
}

func TestGetAllMatches(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.CreateMatch(testEvent())
	require.NoError(t, err)
	second := testEvent()
	second.Settings.Map = "de_vertigo"
	_, err = store.CreateMatch(second)
	require.NoError(t, err)

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestGetTopPlayers(t *testing.T) {
	store, _ := setupStore(t)
	ev := testEvent()

	m, err := store.CreateMatch(ev)
	require.NoError(t, err)
	require.NoError(t, store.CreatePlayerStats(m.ID, ev))

	t.Run("ordered by average adr descending", func(t *testing.T) {
		top, err := store.GetTopPlayers(10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, uint64(76561198000000001), top[0].SteamID64)
		assert.InDelta(t, 100.0, top[0].AvgADR, 0.001)
		assert.Equal(t, uint64(76561198000000002), top[1].SteamID64)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		top, err := store.GetTopPlayers(1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, uint64(76561198000000001), top[0].SteamID64)
	})
}

func TestGetPlayerAggregate(t *testing.T) {
	store, _ := setupStore(t)
	ev := testEvent()

	// Two matches for the same player; the second halves their damage.
	m1, err := store.CreateMatch(ev)
	require.NoError(t, err)
	require.NoError(t, store.CreatePlayerStats(m1.ID, ev))

	lower := testEvent()
	lower.Players = lower.Players[:1]
	lower.Players[0].Stats.DamageDealt = 800
	lower.Players[0].Stats.Kills = 10
	lower.Players[0].Stats.KillsWithHeadshot = 5
	m2, err := store.CreateMatch(lower)
	require.NoError(t, err)
	require.NoError(t, store.CreatePlayerStats(m2.ID, lower))

	agg, err := store.GetPlayerAggregate(76561198000000001)
	require.NoError(t, err)
	require.NotNil(t, agg)

	assert.Equal(t, uint64(76561198000000001), agg.SteamID64)
	assert.Equal(t, 2, agg.Matches)
	assert.Equal(t, 30, agg.Kills)
	assert.Equal(t, 8, agg.Assists)
	assert.InDelta(t, 75.0, agg.AvgADR, 0.001, "mean of 100 and 50")
	assert.InDelta(t, 50.0, agg.HSPercent, 0.001, "15 headshot kills of 30")
}

func TestGetPlayerAggregate_UnknownPlayer(t *testing.T) {
	store, _ := setupStore(t)

	agg, err := store.GetPlayerAggregate(123)
	require.NoError(t, err)
	assert.Nil(t, agg, "unknown player yields nil, not an error")
}
