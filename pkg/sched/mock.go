package sched

import (
	"testing"

	"github.com/joe/async-mocks/pkg/expect"
)

// MockSpawner implements Spawner for tests. Every Spawn call succeeds,
// discards the token without running it, and is counted against the
// expectation given at construction. If Check is never called, the count is
// verified when the test finishes and a mismatch fails the test fatally.
type MockSpawner struct {
	calls *expect.Recorder
}

// NewMockSpawner returns a MockSpawner expecting Spawn to be called n times
// before t finishes.
func NewMockSpawner(t testing.TB, n uint64) *MockSpawner {
	t.Helper()

	return &MockSpawner{calls: expect.Calls(t, n)}
}

// Spawn records the call and discards tok. The work is never executed.
func (m *MockSpawner) Spawn(tok Token) error {
	_ = tok
	m.calls.Record()

	return nil
}

// Check verifies the call count now, returning a *expect.Mismatch on
// disagreement, and suppresses the end-of-test verification.
func (m *MockSpawner) Check() error {
	return m.calls.Check()
}

// Count returns the number of Spawn calls recorded so far.
func (m *MockSpawner) Count() uint64 {
	return m.calls.Count()
}
