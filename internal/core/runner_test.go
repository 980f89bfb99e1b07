package core

import (
	"testing"
	"time"
)

func waitSteps(t *testing.T, steps <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-steps:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for step %d of %d", i+1, n)
		}
	}
}

func drain(steps <-chan struct{}) {
	for {
		select {
		case <-steps:
		default:
			return
		}
	}
}

func TestRunnerTimedSteps(t *testing.T) {
	steps := make(chan struct{}, 64)
	r := NewRunner(func() { steps <- struct{}{} }, 5*time.Millisecond)
	defer r.Close()

	r.Start()
	waitSteps(t, steps, 3)

	r.Stop()
	// A tick already fired may still land; settle, then require quiet.
	time.Sleep(50 * time.Millisecond)
	drain(steps)
	select {
	case <-steps:
		t.Fatal("runner stepped after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRunnerStepOnce(t *testing.T) {
	steps := make(chan struct{}, 8)
	r := NewRunner(func() { steps <- struct{}{} }, time.Hour)
	defer r.Close()

	r.StepOnce()
	waitSteps(t, steps, 1)

	select {
	case <-steps:
		t.Fatal("stopped runner stepped on its own")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRunnerDoSerializes(t *testing.T) {
	r := NewRunner(func() {}, time.Hour)
	defer r.Close()

	// Unsynchronized counter; only command-loop serialization protects it.
	n := 0
	const workers, perWorker = 8, 50
	for w := 0; w < workers; w++ {
		go func() {
			for i := 0; i < perWorker; i++ {
				r.Do(func() { n++ })
			}
		}()
	}

	deadline := time.After(2 * time.Second)
	for {
		got := make(chan int, 1)
		r.Do(func() { got <- n })
		select {
		case v := <-got:
			if v == workers*perWorker {
				return
			}
		case <-deadline:
			t.Fatalf("commands lost: counter never reached %d", workers*perWorker)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRunnerSetInterval(t *testing.T) {
	steps := make(chan struct{}, 64)
	r := NewRunner(func() { steps <- struct{}{} }, time.Hour)
	defer r.Close()

	r.Start()
	// With an hour interval nothing fires; rescheduling must take
	// effect without waiting out the old timer.
	r.SetInterval(5 * time.Millisecond)
	waitSteps(t, steps, 2)

	if got := r.Interval(); got != 5*time.Millisecond {
		t.Fatalf("Interval() = %v, want 5ms", got)
	}
}

func TestRunnerSetIntervalFromCommand(t *testing.T) {
	steps := make(chan struct{}, 64)
	r := NewRunner(func() { steps <- struct{}{} }, time.Hour)
	defer r.Close()

	r.Start()
	// Rescheduling from inside a command runs on the loop goroutine
	// itself; it must never block there, no matter how often it is
	// called while the loop cannot drain its own queue.
	applied := make(chan struct{})
	r.Do(func() {
		for i := 0; i < 100; i++ {
			r.SetInterval(5 * time.Millisecond)
		}
		close(applied)
	})
	select {
	case <-applied:
	case <-time.After(2 * time.Second):
		t.Fatal("rescheduling from a command blocked the loop")
	}
	waitSteps(t, steps, 2)
}

func TestRunnerCloseIdempotent(t *testing.T) {
	r := NewRunner(func() {}, time.Hour)
	r.Close()
	r.Close()
	// Do after Close must not block.
	done := make(chan struct{})
	go func() {
		r.Do(func() {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Do blocked after Close")
	}
}
