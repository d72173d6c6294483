// Package scheduler abstracts one-shot and repeating callbacks so the
// training simulation can run on wall-clock timers in production and on a
// virtual clock in tests.
package scheduler

import (
	"sync"
	"time"
)

// Timer cancels a scheduled callback. Stop is safe to call more than once.
type Timer interface {
	Stop()
}

// Scheduler schedules callbacks. Callbacks may run on any goroutine.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// Every runs fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}

// Real schedules callbacks on wall-clock timers.
type Real struct{}

// NewReal returns a wall-clock scheduler.
func NewReal() Real {
	return Real{}
}

func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return realTimer{t: time.AfterFunc(d, fn)}
}

func (Real) Every(d time.Duration, fn func()) Timer {
	t := &realTicker{
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTimer struct {
	t *time.Timer
}

func (r realTimer) Stop() {
	r.t.Stop()
}

type realTicker struct {
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

func (r *realTicker) run(fn func()) {
	defer r.ticker.Stop()
	for {
		select {
		case <-r.ticker.C:
			fn()
		case <-r.stop:
			return
		}
	}
}

func (r *realTicker) Stop() {
	r.once.Do(func() { close(r.stop) })
}
