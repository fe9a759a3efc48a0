package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	WebhooksReceivedCount   int
	MatchesProcessedCount   int
	PipelineFailureStages   []string
	ProcessingDurations     []float64
	SlackNotifSentCount     int
	SlackNotifFailedCount   int
	RelayCommandsCount      int
	StartupTimeObservations []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncWebhooksReceived() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WebhooksReceivedCount++
}

func (m *Mock) IncMatchesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesProcessedCount++
}

func (m *Mock) IncPipelineFailures(stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PipelineFailureStages = append(m.PipelineFailureStages, stage)
}

func (m *Mock) ObserveProcessingDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessingDurations = append(m.ProcessingDurations, seconds)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *Mock) IncRelayCommands() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RelayCommandsCount++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimeObservations = append(m.StartupTimeObservations, seconds)
}
