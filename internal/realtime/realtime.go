// internal/realtime/realtime.go
// Package realtime runs measurement callbacks on dedicated OS threads under
// the best scheduling class the platform will grant.
package realtime

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
)

// ErrSpent is returned by Run when a Context is used more than once.
var ErrSpent = errors.New("realtime: context already used")

// Hints carries the advisory scheduling figures derived from a benchmark
// configuration. Period is the wall-clock duration of one audio block;
// Budget is the expected processing time within one period.
type Hints struct {
	Period time.Duration
	Budget time.Duration
}

// Grant reports the scheduling class a Context actually obtained.
type Grant struct {
	Policy   string `json:"policy"`
	Realtime bool   `json:"realtime"`
}

// Context executes exactly one callback on its own OS thread. The thread is
// discarded when the callback returns, so a Context cannot be reused; the
// caller builds a fresh one per measurement.
type Context struct {
	hints Hints
	used  atomic.Bool
	grant Grant
}

// New builds a context for one measurement.
func New(hints Hints) *Context {
	return &Context{hints: hints}
}

// Run blocks until fn completes on the dedicated thread. A panic inside fn
// is trapped and returned as an error; it never propagates to the caller.
func (c *Context) Run(fn func() error) error {
	if c.used.Swap(true) {
		return ErrSpent
	}

	done := make(chan error, 1)
	go func() {
		// Never unlocked: the runtime retires the thread when the goroutine
		// exits, taking the elevated scheduling state with it.
		runtime.LockOSThread()
		c.grant = elevate(c.hints)
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("measurement callback panicked: %v", r)
			}
		}()
		done <- fn()
	}()
	return <-done
}

// Grant is valid once Run has returned.
func (c *Context) Grant() Grant {
	return c.grant
}
