package stats

import (
	"sync"

	"github.com/martige/matchbot/internal/dathost"
)

// Mock is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	CreateMatchFunc        func(ev *dathost.MatchEndEvent) (Match, error)
	CreatePlayerStatsFunc  func(matchID string, ev *dathost.MatchEndEvent) error
	GetAllMatchesFunc      func() ([]Match, error)
	GetPlayerStatsFunc     func(matchID string) ([]PlayerStat, error)
	GetTopPlayersFunc      func(limit int) ([]PlayerAggregate, error)
	GetPlayerAggregateFunc func(steamID64 uint64) (*PlayerAggregate, error)

	// Call records
	CreateMatchCalls       []*dathost.MatchEndEvent
	CreatePlayerStatsCalls []struct {
		MatchID string
		Event   *dathost.MatchEndEvent
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = nil
	m.CreatePlayerStatsCalls = nil
}

func (m *Mock) CreateMatch(ev *dathost.MatchEndEvent) (Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, ev)
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(ev)
	}
	return Match{ID: "mock-match-id"}, nil
}

func (m *Mock) CreatePlayerStats(matchID string, ev *dathost.MatchEndEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerStatsCalls = append(m.CreatePlayerStatsCalls, struct {
		MatchID string
		Event   *dathost.MatchEndEvent
	}{matchID, ev})
	if m.CreatePlayerStatsFunc != nil {
		return m.CreatePlayerStatsFunc(matchID, ev)
	}
	return nil
}

func (m *Mock) GetAllMatches() ([]Match, error) {
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *Mock) GetPlayerStats(matchID string) ([]PlayerStat, error) {
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(matchID)
	}
	return nil, nil
}

func (m *Mock) GetTopPlayers(limit int) ([]PlayerAggregate, error) {
	if m.GetTopPlayersFunc != nil {
		return m.GetTopPlayersFunc(limit)
	}
	return nil, nil
}

func (m *Mock) GetPlayerAggregate(steamID64 uint64) (*PlayerAggregate, error) {
	if m.GetPlayerAggregateFunc != nil {
		return m.GetPlayerAggregateFunc(steamID64)
	}
	return nil, nil
}
