package factory

import (
	"context"
	"time"

	"github.com/mcoot/vierbure/internal/dependencies/mocks"
	"github.com/mcoot/vierbure/internal/services/autosave"
	"github.com/mcoot/vierbure/internal/storage"
	"github.com/mcoot/vierbure/internal/storage/memory"
	"github.com/mcoot/vierbure/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
}

// NewTestApp creates an App on fresh in-memory storage with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates an App with mocked dependencies on the given
// storage, restoring whatever it already holds
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(context.Background(), store, mockClock, mockIDs, autosave.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}

// Reopen builds a new App on the same storage, as a later session would
func (t *TestApp) Reopen() *TestApp {
	t.Scoreboard.Flush(context.Background())
	return NewTestAppWithStorage(t.Storage)
}
