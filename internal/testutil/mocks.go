package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"codeberg.org/snonux/kirtis/internal/accent"
)

// MockAnalyzer mocks the external phonological analyzer
type MockAnalyzer struct {
	Options     map[string][]accent.StressOption
	Errors      map[string]error
	ProviderErr error
	Label       string

	mu    sync.Mutex
	calls []string
}

// NewMockAnalyzer creates a mock answering from options
func NewMockAnalyzer(options map[string][]accent.StressOption) *MockAnalyzer {
	return &MockAnalyzer{
		Options: options,
		Errors:  make(map[string]error),
	}
}

// Analyze mocks an analyzer lookup
func (m *MockAnalyzer) Analyze(ctx context.Context, word string) ([]accent.StressOption, error) {
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errors[word]; ok {
		return nil, err
	}
	if opts, ok := m.Options[word]; ok {
		return slices.Clone(opts), nil
	}
	return nil, fmt.Errorf("mock analyzer has no options for %q", word)
}

// Name returns the mock's label
func (m *MockAnalyzer) Name() string {
	if m.Label == "" {
		return "mock"
	}
	return m.Label
}

// IsAvailable returns ProviderErr
func (m *MockAnalyzer) IsAvailable() error {
	return m.ProviderErr
}

// Calls returns the words Analyze was called with, in order
func (m *MockAnalyzer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// SampleOptions returns the analyzer output for the sample words gera and žodį
func SampleOptions() map[string][]accent.StressOption {
	return map[string][]accent.StressOption{
		"gera": {
			{GrammaticalCase: "Vardininkas", StressType: accent.StressShort, StressedLetterIndex: 3},
			{GrammaticalCase: "UNKNOWN", StressType: accent.StressCircumflex, StressedLetterIndex: 1},
		},
		"žodį": {
			{GrammaticalCase: "Galininkas", StressType: accent.StressCircumflex, StressedLetterIndex: 1},
		},
	}
}
