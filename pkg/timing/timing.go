// Package timing abstracts periodic tickers and one-shot timers behind
// capability interfaces with deterministic mock implementations.
//
// Production code takes a Provider and never names a concrete clock. At run
// time it gets Clock, which defers to the time package; in tests it gets
// MockProvider, whose tickers and timers are always immediately ready — a
// test observes logical ticks and requested durations, never elapsed time.
package timing

import "time"

// Ticker delivers a steady beat.
type Ticker interface {
	// Next blocks until the next beat. Mock tickers are always immediately
	// ready, so Next returns at once and only the call itself is observable.
	Next()
}

// Timer is a one-shot wait.
type Timer interface {
	// Wait blocks until the timer's duration has elapsed. Mock timers
	// resolve immediately.
	Wait()
}

// Provider constructs tickers and timers. It stands in for the trait-level
// constructors: Go interfaces cannot carry them, so production code asks a
// Provider instead.
type Provider interface {
	// Every returns a Ticker beating once per period.
	Every(period time.Duration) Ticker

	// After returns a Timer that completes once d has elapsed.
	After(d time.Duration) Timer
}
