package timing

import "time"

// Clock is the real Provider, a pure passthrough to the time package.
type Clock struct{}

// Every returns a Ticker wrapping a time.Ticker.
func (Clock) Every(period time.Duration) Ticker {
	return &clockTicker{ticker: time.NewTicker(period)}
}

// After returns a Timer that sleeps for d when waited on.
func (Clock) After(d time.Duration) Timer {
	return clockTimer{d: d}
}

type clockTicker struct {
	ticker *time.Ticker
}

func (t *clockTicker) Next() {
	<-t.ticker.C
}

type clockTimer struct {
	d time.Duration
}

func (t clockTimer) Wait() {
	time.Sleep(t.d)
}
