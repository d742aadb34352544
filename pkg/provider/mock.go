package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider is a simple provider that returns pre-configured responses in
// sequence. It is safe for concurrent use and makes no network calls.
type MockProvider struct {
	responses []Response
	mu        sync.Mutex
	idx       int
}

// NewMockProvider creates a MockProvider that returns the given responses in
// order. Once all responses are consumed, subsequent calls return an error.
func NewMockProvider(responses ...Response) *MockProvider {
	return &MockProvider{
		responses: responses,
	}
}

// Complete returns the next pre-configured response. It ignores the request
// contents entirely; responses are returned in the order they were provided.
func (m *MockProvider) Complete(_ context.Context, _ *Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.idx >= len(m.responses) {
		return nil, fmt.Errorf("mock provider: no more responses (consumed %d/%d)", m.idx, len(m.responses))
	}

	resp := m.responses[m.idx]
	m.idx++
	return &resp, nil
}

// Name returns "mock".
func (m *MockProvider) Name() string { return "mock" }
