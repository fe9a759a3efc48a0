// Package scoreboard renders a finished match into the end-of-match summary
// text and picks the MVP. It is pure: no I/O, deterministic for a given
// event and name set.
package scoreboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/martige/matchbot/internal/dathost"
)

const (
	// Display names longer than nameMaxChars are hard-truncated on a rune
	// boundary and padded to nameColWidth.
	nameMaxChars = 19
	nameColWidth = 20
)

// Summary is the formatted end-of-match message plus the MVP identity.
type Summary struct {
	Text    string
	MVPName string
	MVPADR  float64
}

// MissingProfileError reports a steam id the profile directory did not
// resolve. There is deliberately no raw-id fallback: a scoreboard with a
// bare 17-digit id is worse than a failed notification.
type MissingProfileError struct {
	SteamID64 uint64
}

func (e *MissingProfileError) Error() string {
	return fmt.Sprintf("no resolved profile for steam id %d", e.SteamID64)
}

// Build renders the scoreboard for a match. names must contain an entry for
// every player in the event.
func Build(ev *dathost.MatchEndEvent, names map[uint64]string) (*Summary, error) {
	for _, p := range ev.Players {
		if _, ok := names[p.SteamID64]; !ok {
			return nil, &MissingProfileError{SteamID64: p.SteamID64}
		}
	}

	team1 := rankedTeam(ev.Players, "team1")
	team2 := rankedTeam(ev.Players, "team2")
	if len(team1) == 0 && len(team2) == 0 {
		return nil, fmt.Errorf("match %s has no players to render", ev.ID)
	}

	mvp := pickMVP(team1, team2)
	mvpName := names[mvp.SteamID64]
	mvpADR := adr(mvp.Stats.DamageDealt, ev.RoundsPlayed)

	var b strings.Builder
	fmt.Fprintf(&b, "**%d - %d**  `%s`\n", ev.Team1.Stats.Score, ev.Team2.Stats.Score, ev.Settings.Map)
	b.WriteString("```\n")
	header := fmt.Sprintf(" %2s  %-*s%-4s%-4s%-4s%-8s%-8s%-5s%-5s%-3s", "#", nameColWidth, "Player", "K", "D", "A", "ADR", "HS%", "EF", "ENT", "CW")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")
	b.WriteString(ev.Team1.Name + "\n")
	for i, p := range team1 {
		b.WriteString(row(i+1, p, ev.RoundsPlayed, names[p.SteamID64]))
	}
	b.WriteString("\n")
	b.WriteString(ev.Team2.Name + "\n")
	for i, p := range team2 {
		b.WriteString(row(i+1, p, ev.RoundsPlayed, names[p.SteamID64]))
	}
	b.WriteString("```\n")
	fmt.Fprintf(&b, "Congrats to the MVP `%s` with the highest ADR of `%.1f`!", mvpName, mvpADR)

	return &Summary{
		Text:    b.String(),
		MVPName: mvpName,
		MVPADR:  mvpADR,
	}, nil
}

// rankedTeam filters players by team tag and orders them by damage dealt,
// highest first. The sort is stable so equal-damage players keep event order.
func rankedTeam(players []dathost.PlayerResult, team string) []dathost.PlayerResult {
	var out []dathost.PlayerResult
	for _, p := range players {
		if p.Team == team {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stats.DamageDealt > out[j].Stats.DamageDealt
	})
	return out
}

// pickMVP compares each team's top-damage player. Ties go to team1; the tie
// policy is arbitrary but fixed for determinism.
func pickMVP(team1, team2 []dathost.PlayerResult) dathost.PlayerResult {
	switch {
	case len(team1) == 0:
		return team2[0]
	case len(team2) == 0:
		return team1[0]
	case team2[0].Stats.DamageDealt > team1[0].Stats.DamageDealt:
		return team2[0]
	default:
		return team1[0]
	}
}

func row(rank int, p dathost.PlayerResult, roundsPlayed int, name string) string {
	return fmt.Sprintf(" %2d. %-*s%-4d%-4d%-4d%-8s%-8s%-5d%-5d%-3d\n",
		rank,
		nameColWidth, truncate(name, nameMaxChars),
		p.Stats.Kills,
		p.Stats.Deaths,
		p.Stats.Assists,
		fmt.Sprintf("%.1f", adr(p.Stats.DamageDealt, roundsPlayed)),
		fmt.Sprintf("%.1f%%", hsPercent(p.Stats.KillsWithHeadshot, p.Stats.Kills)),
		p.Stats.FlashesEnemiesBlinded,
		p.Stats.EntrySuccesses,
		p.Stats.N1vXWins,
	)
}

// adr is average damage per round, with rounds floored to 1 so a forfeited
// match cannot divide by zero.
func adr(damageDealt, roundsPlayed int) float64 {
	return float64(max(damageDealt, 1)) / float64(max(roundsPlayed, 1))
}

func hsPercent(headshotKills, kills int) float64 {
	return float64(headshotKills) / float64(max(kills, 1)) * 100
}

// truncate cuts s to at most maxChars runes, never splitting a glyph.
func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
