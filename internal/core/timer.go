package core

import "time"

// TPS bounds for the fixed-step pacer.
const (
	MinTPS = 1
	MaxTPS = 240
)

// FixedStep paces simulation updates at a steady steps-per-second rate
// inside a frame-driven loop, decoupling simulation speed from the
// frame rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep pacer targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the step rate, clamped to [MinTPS, MaxTPS]. It is
// safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps < MinTPS {
		tps = MinTPS
	}
	if tps > MaxTPS {
		tps = MaxTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current step rate.
func (f *FixedStep) TPS() int { return f.tps }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
