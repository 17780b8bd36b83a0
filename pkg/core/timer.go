package core

import (
	"context"
	"time"
)

// DefaultTickDelay is the pause between generations.
const DefaultTickDelay = time.Second

// FixedStep gates simulation updates inside a frame-driven loop (such as
// ebiten's Update) so that they happen once per interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once every interval. The
// first call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick spacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickDelay
	}
	f.step = interval
}

// SetClock replaces the time source, mainly for tests.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop any backlog left by a stall so the next tick is a full step away.
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}

// Scheduler runs a tick function at a fixed delay until its context ends.
type Scheduler struct {
	delay time.Duration
	after func(time.Duration) <-chan time.Time
}

// NewScheduler returns a Scheduler waiting delay between ticks.
func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultTickDelay
	}
	return &Scheduler{delay: delay, after: time.After}
}

// Run invokes tick immediately, then again each time the delay elapses after
// the previous tick returned. Ticks never overlap. Run returns ctx.Err() once
// the context is done, or the first error returned by tick.
func (s *Scheduler) Run(ctx context.Context, tick func() error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := tick(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.after(s.delay):
		}
	}
}

// RunTicks invokes tick n times back to back without any timer.
func RunTicks(n int, tick func()) {
	for i := 0; i < n; i++ {
		tick()
	}
}
