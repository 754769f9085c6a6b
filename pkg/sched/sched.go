// Package sched abstracts task spawning behind a small capability interface
// so code that hands work to a scheduler can be unit tested without running
// any of it. Production code accepts a Spawner; the real implementation is
// Runtime, and MockSpawner stands in for it in tests, counting calls and
// discarding the submitted work.
package sched

import "errors"

// ErrEmptyToken is returned when a token carrying no work is spawned.
var ErrEmptyToken = errors.New("token carries no work")

// Token is an opaque unit of work handed to a Spawner. Produce one with
// Task. A token's work runs at most once; a Spawner that intercepts the call
// may discard the token without running it.
type Token struct {
	run func()
}

// Task wraps fn into a Token ready to hand to a Spawner.
func Task(fn func()) Token {
	return Token{run: fn}
}

// Spawner accepts units of work for asynchronous execution.
type Spawner interface {
	// Spawn hands the token to the scheduler. The error surface exists for
	// schedulers that can refuse work; call sites keep one signature across
	// real and mock implementations.
	Spawn(tok Token) error
}
