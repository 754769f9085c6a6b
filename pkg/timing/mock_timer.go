package timing

import (
	"errors"
	"time"
)

// CaptureCapacity is the fixed size of the shared duration capture channel.
const CaptureCapacity = 5

// ErrNoDuration is returned by Receiver.TryReceive when no captured
// duration is pending.
var ErrNoDuration = errors.New("no captured duration pending")

// captured is shared by every MockTimer in the process. Producers never
// block: a send against a full channel drops the duration.
var captured = make(chan time.Duration, CaptureCapacity)

// MockTimer implements Timer for tests. Wait returns immediately and, as a
// side effect, offers the duration the timer was built with to the shared
// capture channel, so tests can assert on what was requested and in what
// order. The channel records resolution order, not construction order: a
// timer built first but resolved second appears second.
//
// The channel lives for the whole process and is shared across every
// MockTimer. Tests that assert on its contents must not run in parallel
// with other timer-resolving tests and should call ClearDurations first.
type MockTimer struct {
	duration time.Duration
}

// NewMockTimer returns a MockTimer holding d. MockProvider.After is the
// provider-shaped way to get one.
func NewMockTimer(d time.Duration) *MockTimer {
	return &MockTimer{duration: d}
}

// Duration returns the duration the timer was built with.
func (m *MockTimer) Duration() time.Duration {
	return m.duration
}

// Wait resolves the timer immediately. The duration is offered to the
// capture channel without blocking; when the channel is full it is silently
// dropped, so a full channel never delays or fails a resolution. Every call
// offers the duration again — resolve each instance exactly once.
func (m *MockTimer) Wait() {
	select {
	case captured <- m.duration:
	default:
	}
}

// Receiver is the consuming side of the shared capture channel.
type Receiver struct {
	ch <-chan time.Duration
}

// DurationReceiver returns the consumer handle for the shared capture
// channel. Every MockTimer in the process feeds the same channel.
func DurationReceiver() Receiver {
	return Receiver{ch: captured}
}

// TryReceive pops the oldest captured duration without blocking. It returns
// ErrNoDuration when nothing is pending.
func (r Receiver) TryReceive() (time.Duration, error) {
	select {
	case d := <-r.ch:
		return d, nil
	default:
		return 0, ErrNoDuration
	}
}

// ClearDurations drains the capture channel. Call it at the start of any
// test that asserts on captured durations: the channel is process-wide and
// nothing else isolates tests from one another.
func ClearDurations() {
	for {
		select {
		case <-captured:
		default:
			return
		}
	}
}
