package dathost

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the GameServerClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetFileFunc            func(serverID, path string) ([]byte, error)
	SendConsoleCommandFunc func(serverID, line string) error
	StopServerFunc         func(serverID string) error

	// Call records
	GetFileCalls []struct{ ServerID, Path string }
	ConsoleCalls []struct{ ServerID, Line string }
	StopCalls    []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetFileCalls = nil
	m.ConsoleCalls = nil
	m.StopCalls = nil
}

func (m *MockClient) GetFile(_ context.Context, serverID, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetFileCalls = append(m.GetFileCalls, struct{ ServerID, Path string }{serverID, path})
	if m.GetFileFunc != nil {
		return m.GetFileFunc(serverID, path)
	}
	return []byte{}, nil
}

func (m *MockClient) SendConsoleCommand(_ context.Context, serverID, line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConsoleCalls = append(m.ConsoleCalls, struct{ ServerID, Line string }{serverID, line})
	if m.SendConsoleCommandFunc != nil {
		return m.SendConsoleCommandFunc(serverID, line)
	}
	return nil
}

func (m *MockClient) StopServer(_ context.Context, serverID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StopCalls = append(m.StopCalls, serverID)
	if m.StopServerFunc != nil {
		return m.StopServerFunc(serverID)
	}
	return nil
}
