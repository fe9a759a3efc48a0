package notifier

import (
	"context"
	"sync"

	"github.com/martige/matchbot/internal/scoreboard"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spy for method calls
	SendMatchSummaryFunc func(summary *scoreboard.Summary, demoURL string) error

	// Call records
	SendMatchSummaryCalls []struct {
		Summary *scoreboard.Summary
		DemoURL string
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
	m.SendMatchSummaryCalls = nil
}

func (m *Mock) SendMatchSummary(_ context.Context, summary *scoreboard.Summary, demoURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchSummaryCalls = append(m.SendMatchSummaryCalls, struct {
		Summary *scoreboard.Summary
		DemoURL string
	}{summary, demoURL})
	if m.SendMatchSummaryFunc != nil {
		return m.SendMatchSummaryFunc(summary, demoURL)
	}
	return nil
}
