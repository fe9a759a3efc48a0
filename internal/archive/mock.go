package archive

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the BlobStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UploadFunc    func(key string, data []byte) error
	PublicURLFunc func(key string) string

	// Call records
	UploadCalls []struct {
		Key  string
		Data []byte
	}
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UploadCalls = nil
}

func (m *MockStore) Upload(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UploadCalls = append(m.UploadCalls, struct {
		Key  string
		Data []byte
	}{key, data})
	if m.UploadFunc != nil {
		return m.UploadFunc(key, data)
	}
	return nil
}

func (m *MockStore) PublicURL(key string) string {
	if m.PublicURLFunc != nil {
		return m.PublicURLFunc(key)
	}
	return "https://demos.example.com/" + key
}
