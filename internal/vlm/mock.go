package vlm

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockExtractor.
type MockResult struct {
	Extraction Extraction
	Err        error
}

// MockExtractor is a deterministic Extractor for testing. It returns canned
// results in FIFO order and records all images it was given.
type MockExtractor struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []Image
}

// NewMockExtractor creates a MockExtractor with the given canned results.
func NewMockExtractor(results ...MockResult) *MockExtractor {
	return &MockExtractor{results: results}
}

// Extract returns the next canned result or ErrProviderUnavailable if the
// queue is empty.
func (m *MockExtractor) Extract(_ context.Context, img Image) (*Extraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, img)

	if len(m.results) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	r := m.results[0]
	m.results = m.results[1:]

	if r.Err != nil {
		return nil, r.Err
	}
	out := r.Extraction
	return &out, nil
}

// ModelID returns "mock".
func (m *MockExtractor) ModelID() string {
	return "mock"
}

// AddResult appends a canned result to the queue.
func (m *MockExtractor) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

// CallCount returns the number of Extract calls made.
func (m *MockExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
