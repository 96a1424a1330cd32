package ai

import (
	"context"
	"sync"
)

// MockClient is a test double recording every batch it receives.
type MockClient struct {
	mu      sync.Mutex
	Results []BatchResult
	Err     error
	Calls   [][]BatchItem
}

// Name returns the provider name.
func (m *MockClient) Name() string {
	return "mock"
}

// CategorizeBatch records the call and returns the configured results
// or error.
func (m *MockClient) CategorizeBatch(_ context.Context, items []BatchItem) ([]BatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, items)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

// CallCount returns how many batches were sent.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
