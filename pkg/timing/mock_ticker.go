package timing

import (
	"testing"
	"time"

	"github.com/joe/async-mocks/pkg/expect"
)

// MockTicker implements Ticker for tests. Next returns immediately — a call
// observes a logical tick, never elapsed time — and every call is counted.
//
// Tickers built with NewMockTicker verify the count via Check or, failing
// that, when the test finishes. Tickers built through MockProvider.Every
// carry no expectation and are never verified: that construction site
// mirrors production code, which cannot say how often it will tick.
type MockTicker struct {
	calls *expect.Recorder
}

// NewMockTicker returns a MockTicker expecting Next to be called n times
// before t finishes.
func NewMockTicker(t testing.TB, n uint64) *MockTicker {
	t.Helper()

	return &MockTicker{calls: expect.Calls(t, n)}
}

// Next records one tick and returns immediately.
func (m *MockTicker) Next() {
	m.calls.Record()
}

// Check verifies the tick count now, returning a *expect.Mismatch on
// disagreement, and suppresses the end-of-test verification.
func (m *MockTicker) Check() error {
	return m.calls.Check()
}

// Count returns the ticks observed so far.
func (m *MockTicker) Count() uint64 {
	return m.calls.Count()
}

// MockProvider implements Provider for tests.
type MockProvider struct{}

// Every returns an unverified MockTicker. The period is ignored entirely;
// the mock never paces itself.
func (MockProvider) Every(period time.Duration) Ticker {
	_ = period

	return &MockTicker{calls: expect.Unchecked()}
}

// After returns a MockTimer holding d. Construction has no side effect; the
// duration is only offered to the capture channel when the timer resolves.
func (MockProvider) After(d time.Duration) Timer {
	return NewMockTimer(d)
}
