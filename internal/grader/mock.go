package grader

import (
	"context"
	"encoding/json"
	"sync"
)

// MockCompletion is a canned completion for the MockClient.
type MockCompletion struct {
	JSON json.RawMessage
	Err  error
}

// MockClient is a deterministic Client for testing.
// It returns canned completions in FIFO order and records all prompts.
type MockClient struct {
	mu          sync.Mutex
	completions []MockCompletion
	Prompts     []Prompt
}

// NewMockClient creates a MockClient with the given canned completions.
func NewMockClient(completions ...MockCompletion) *MockClient {
	return &MockClient{completions: completions}
}

// Complete returns the next canned completion or ErrUnavailable if the
// queue is empty.
func (m *MockClient) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, p)

	if len(m.completions) == 0 {
		return nil, &ErrUnavailable{Err: nil}
	}

	next := m.completions[0]
	m.completions = m.completions[1:]

	if next.Err != nil {
		return nil, next.Err
	}

	return &Completion{
		JSON:  next.JSON,
		Model: "mock",
	}, nil
}

// ModelID returns "mock".
func (m *MockClient) ModelID() string {
	return "mock"
}

// AddCompletion appends a canned completion to the queue.
func (m *MockClient) AddCompletion(c MockCompletion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completions = append(m.completions, c)
}

// CallCount returns the number of Complete calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
