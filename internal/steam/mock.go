package steam

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the ProfileClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spy for method calls
	GetPlayerSummariesFunc func(steamIDs []uint64) (map[uint64]string, error)

	// Call records
	GetPlayerSummariesCalls [][]uint64
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerSummariesCalls = nil
}

func (m *MockClient) GetPlayerSummaries(_ context.Context, steamIDs []uint64) (map[uint64]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerSummariesCalls = append(m.GetPlayerSummariesCalls, steamIDs)
	if m.GetPlayerSummariesFunc != nil {
		return m.GetPlayerSummariesFunc(steamIDs)
	}
	return map[uint64]string{}, nil
}
