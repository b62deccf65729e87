package recognize

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockRecognizer.
type MockResult struct {
	Korean string
	Err    error
}

// MockRecognizer is a deterministic Recognizer for testing.
// It returns canned results in FIFO order and records all images
// it was asked to recognize.
type MockRecognizer struct {
	mu      sync.Mutex
	results []MockResult
	Calls   [][]byte
}

// NewMockRecognizer creates a MockRecognizer with the given canned results.
func NewMockRecognizer(results ...MockResult) *MockRecognizer {
	return &MockRecognizer{results: results}
}

// Recognize returns the next canned result or ErrProviderUnavailable if
// the queue is empty.
func (m *MockRecognizer) Recognize(_ context.Context, png []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, png)

	if len(m.results) == 0 {
		return "", &ErrProviderUnavailable{Err: nil}
	}

	res := m.results[0]
	m.results = m.results[1:]

	if res.Err != nil {
		return "", res.Err
	}
	return res.Korean, nil
}

// ModelID returns "mock".
func (m *MockRecognizer) ModelID() string {
	return "mock"
}
