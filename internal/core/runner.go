// Package core hosts the scheduling loop that drives a simulation for
// frontends without their own tick source.
package core

import (
	"sync"
	"time"
)

// DefaultInterval is the step period used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Runner drives a step function at a fixed interval. A single
// goroutine owns the timer and executes every submitted command, so at
// most one step is in flight at any time and manual steps never race
// timed ones. Stopping only prevents future steps; it never interrupts
// one in progress.
type Runner struct {
	step     func()
	interval time.Duration
	timer    *time.Timer
	running  bool

	cmds      chan func()
	intervals chan time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// NewRunner starts the command loop for the provided step function.
// The runner begins stopped; call Start to begin timed stepping.
func NewRunner(step func(), interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	r := &Runner{
		step:     step,
		interval: interval,
		timer:    time.NewTimer(interval),
		cmds:      make(chan func(), 16),
		intervals: make(chan time.Duration, 1),
		done:      make(chan struct{}),
	}
	r.disarm()
	go r.loop()
	return r
}

func (r *Runner) loop() {
	for {
		select {
		case fn := <-r.cmds:
			fn()
		case d := <-r.intervals:
			r.interval = d
			if r.running {
				r.arm()
			}
		case <-r.timer.C:
			if r.running {
				r.step()
				r.timer.Reset(r.interval)
			}
		case <-r.done:
			r.timer.Stop()
			return
		}
	}
}

// arm cancels any pending tick and schedules the next one, so interval
// changes swap the schedule atomically instead of stacking timers.
func (r *Runner) arm() {
	r.disarm()
	r.timer.Reset(r.interval)
}

func (r *Runner) disarm() {
	if !r.timer.Stop() {
		select {
		case <-r.timer.C:
		default:
		}
	}
}

// Do runs fn on the runner goroutine, serialized with stepping. It is
// the safe way for input handlers to mutate the simulation. Calls made
// after Close are dropped.
func (r *Runner) Do(fn func()) {
	select {
	case r.cmds <- fn:
	case <-r.done:
	}
}

// Start begins timed stepping. Starting a running runner is a no-op.
func (r *Runner) Start() {
	r.Do(func() {
		if r.running {
			return
		}
		r.running = true
		r.arm()
	})
}

// Stop halts timed stepping after any step already underway completes.
func (r *Runner) Stop() {
	r.Do(func() {
		r.running = false
		r.disarm()
	})
}

// StepOnce performs a single step, serialized with timed stepping.
func (r *Runner) StepOnce() {
	r.Do(r.step)
}

// SetInterval changes the step period. When running, the pending tick
// is cancelled and rescheduled with the new period. The request goes
// through its own one-slot channel rather than the command queue, so
// it never blocks; a newer period simply replaces an unapplied one.
// That also makes it safe to call from inside a Do closure, where a
// send to the command queue could deadlock the loop.
func (r *Runner) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	for {
		select {
		case r.intervals <- d:
			return
		case <-r.done:
			return
		default:
		}
		// Stale unapplied period; drop it and retry.
		select {
		case <-r.intervals:
		default:
		}
	}
}

// Interval reports the current step period via the runner goroutine.
func (r *Runner) Interval() time.Duration {
	out := make(chan time.Duration, 1)
	r.Do(func() { out <- r.interval })
	select {
	case d := <-out:
		return d
	case <-r.done:
		return 0
	}
}

// Close shuts the command loop down. It never interrupts an in-flight
// step and is safe to call more than once.
func (r *Runner) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}
