// Package expect provides call-count accounting for test doubles.
//
// A Recorder pairs an expected call count with an atomically maintained
// actual count. Mocks call Record on every intercepted call. Tests verify
// the count one of two ways: explicitly with Check, which returns a
// structured Mismatch suitable for table-driven assertions, or implicitly
// through the cleanup hook registered at construction, which fails the test
// fatally if the counts still disagree when the test finishes. The cleanup
// hook is the safety net for tests that forget to check: it runs on every
// exit path, including early returns and failed assertions.
package expect

import (
	"fmt"
	"sync/atomic"
	"testing"
)

// Mismatch reports a disagreement between the expected and actual number of
// recorded calls. The struct is comparable, so table-driven tests can match
// on it directly.
type Mismatch struct {
	Expected uint64
	Actual   uint64
}

// Error implements the error interface.
func (m *Mismatch) Error() string {
	return fmt.Sprintf("expected %d call(s), actually recorded %d", m.Expected, m.Actual)
}

// Recorder counts calls against an expected total. All methods are safe for
// concurrent use. The zero value is not usable; construct with Calls or
// Unchecked.
type Recorder struct {
	expected uint64
	actual   atomic.Uint64
	checked  atomic.Bool
}

// Calls returns a Recorder expecting exactly n calls before t finishes.
//
// If Check is never called, a cleanup hook re-compares the counts when the
// test ends and fails the test fatally on mismatch. Calling Check suppresses
// the hook regardless of Check's outcome.
func Calls(t testing.TB, n uint64) *Recorder {
	t.Helper()

	r := &Recorder{expected: n}

	t.Cleanup(func() {
		if r.checked.Load() {
			return
		}

		if actual := r.actual.Load(); actual != n {
			t.Fatalf("expected %d call(s), actually recorded %d", n, actual)
		}
	})

	return r
}

// Unchecked returns a pre-finalized Recorder: calls are still counted but
// never verified. It backs mock constructors that mirror production call
// sites, where the caller has no expectation to supply.
func Unchecked() *Recorder {
	r := &Recorder{}
	r.checked.Store(true)

	return r
}

// Record counts one call. The increment is a single lock-free atomic add, so
// Record may be called from any goroutine, including ones standing in for
// interrupt-style contexts. The counter never wraps silently.
func (r *Recorder) Record() {
	if r.actual.Add(1) == 0 {
		panic("expect: call counter overflowed")
	}
}

// Check finalizes the Recorder and compares the counts. It returns a
// *Mismatch carrying both counts when they disagree, and nil otherwise.
// After Check, the cleanup-time verification never fires.
func (r *Recorder) Check() error {
	r.checked.Store(true)

	if actual := r.actual.Load(); actual != r.expected {
		return &Mismatch{Expected: r.expected, Actual: actual}
	}

	return nil
}

// Count returns the number of calls recorded so far.
func (r *Recorder) Count() uint64 {
	return r.actual.Load()
}

// Expected returns the count the Recorder was constructed with.
func (r *Recorder) Expected() uint64 {
	return r.expected
}
