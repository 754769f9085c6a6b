package sched

import "sync"

// Runtime is the real Spawner: every token's work runs on its own goroutine.
// The zero value is ready to use.
type Runtime struct {
	wg sync.WaitGroup
}

// Spawn starts the token's work on a new goroutine.
func (r *Runtime) Spawn(tok Token) error {
	if tok.run == nil {
		return ErrEmptyToken
	}

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		tok.run()
	}()

	return nil
}

// Wait blocks until every spawned token has finished.
func (r *Runtime) Wait() {
	r.wg.Wait()
}
