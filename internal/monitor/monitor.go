// Package monitor implements a heartbeat monitor written only against the
// sched and timing capabilities, so the same code runs on the real runtime
// and, in tests, on the mocks with zero elapsed time.
package monitor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joe/async-mocks/pkg/sched"
	"github.com/joe/async-mocks/pkg/timing"
)

// Default pacing for a monitor constructed with New.
const (
	DefaultWarmup = 500 * time.Millisecond
	DefaultPeriod = time.Second
)

// Beat is emitted once per heartbeat.
type Beat struct {
	Seq int64 // 1-based beat number
	At  time.Time
}

// Status is a snapshot of monitor progress.
type Status struct {
	Beats   int64
	Target  int64 // 0 means no target; run until cancelled
	Running bool
	Done    bool
}

// Monitor paces heartbeats on a ticker after an initial warmup wait. All
// timing goes through a timing.Provider and the run loop is handed to a
// sched.Spawner, so tests drive the whole lifecycle with mocks.
type Monitor struct {
	Warmup time.Duration
	Period time.Duration
	Count  int64 // beats to emit; 0 means run until Cancel

	spawner sched.Spawner
	clock   timing.Provider

	mu         sync.RWMutex
	sink       func(Beat)
	beats      atomic.Int64
	running    atomic.Bool
	done       atomic.Bool
	cancelChan chan struct{}
	cancelOnce sync.Once
}

// New creates a monitor with default pacing. Adjust Warmup, Period, and
// Count before calling Start.
func New(spawner sched.Spawner, clock timing.Provider) *Monitor {
	return &Monitor{
		Warmup:     DefaultWarmup,
		Period:     DefaultPeriod,
		spawner:    spawner,
		clock:      clock,
		cancelChan: make(chan struct{}),
	}
}

// SetEventSink registers fn to be called on every beat. Set it before
// starting the monitor; fn runs on the loop's goroutine.
func (m *Monitor) SetEventSink(fn func(Beat)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sink = fn
}

// Start hands the run loop to the spawner as a single task.
func (m *Monitor) Start() error {
	return m.spawner.Spawn(sched.Task(m.Run))
}

// Run executes the heartbeat loop on the calling goroutine: wait out the
// warmup, then emit one beat per tick until the beat budget is exhausted or
// Cancel fires. Start spawns it; tests may call it directly to stay
// single-threaded.
func (m *Monitor) Run() {
	m.running.Store(true)
	defer m.running.Store(false)
	defer m.done.Store(true)

	m.clock.After(m.Warmup).Wait()

	ticker := m.clock.Every(m.Period)

	for {
		select {
		case <-m.cancelChan:
			return
		default:
		}

		ticker.Next()

		seq := m.beats.Add(1)
		m.emit(Beat{Seq: seq, At: time.Now()})

		if m.Count > 0 && seq >= m.Count {
			return
		}
	}
}

// Cancel stops the loop before its next beat. Safe to call more than once
// and from any goroutine.
func (m *Monitor) Cancel() {
	m.cancelOnce.Do(func() {
		close(m.cancelChan)
	})
}

// GetStatus returns a snapshot of monitor progress.
func (m *Monitor) GetStatus() Status {
	return Status{
		Beats:   m.beats.Load(),
		Target:  m.Count,
		Running: m.running.Load(),
		Done:    m.done.Load(),
	}
}

func (m *Monitor) emit(beat Beat) {
	m.mu.RLock()
	sink := m.sink
	m.mu.RUnlock()

	if sink != nil {
		sink(beat)
	}
}
