package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/vierbure/internal/dependencies/ids"
)

// MockIDs is a mock implementation of Generator for testing
type MockIDs struct {
	mu sync.Mutex

	// Results is a queue of IDs to return from NewID
	Results []string
	index   int

	// generated counts fallback IDs handed out once the queue is empty
	generated int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewID returns the next queued ID, or a sequential "player-N" once the queue is drained
func (g *MockIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.index < len(g.Results) {
		id := g.Results[g.index]
		g.index++
		return id
	}
	g.generated++
	return fmt.Sprintf("player-%d", g.generated)
}

// Queue adds values to the result queue
func (g *MockIDs) Queue(values ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Results = append(g.Results, values...)
}
