package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	fs := NewFixedStep(time.Second)
	fs.SetClock(func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	now = now.Add(500 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	now = now.Add(500 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice for one interval")
	}
}

func TestFixedStepStallDoesNotBurst(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(time.Second)
	fs.SetClock(func() time.Time { return now })
	fs.ShouldStep()

	now = now.Add(10 * time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 1 {
		t.Fatalf("expected stall to yield 1 step, got %d", steps)
	}
}

func TestFixedStepStallThenNextFrame(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(time.Second)
	fs.SetClock(func() time.Time { return now })
	fs.ShouldStep()

	now = now.Add(10 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a stall")
	}
	now = now.Add(16 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped again one frame after the stall")
	}
	now = now.Add(time.Second)
	if !fs.ShouldStep() {
		t.Fatal("did not resume the normal cadence after the stall")
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	s := NewScheduler(time.Hour)
	fire := make(chan time.Time)
	s.after = func(time.Duration) <-chan time.Time { return fire }

	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func() error {
			ticks++
			if ticks == 3 {
				cancel()
			}
			return nil
		})
	}()

	fire <- time.Time{}
	fire <- time.Time{}

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}
}

func TestSchedulerRunReturnsTickError(t *testing.T) {
	s := NewScheduler(time.Millisecond)
	boom := errors.New("boom")
	calls := 0
	err := s.Run(context.Background(), func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Fatalf("tick called %d times", calls)
	}
}

func TestSchedulerDefaultDelay(t *testing.T) {
	if d := NewScheduler(0).delay; d != DefaultTickDelay {
		t.Fatalf("delay = %v, want %v", d, DefaultTickDelay)
	}
}

func TestRunTicks(t *testing.T) {
	n := 0
	RunTicks(7, func() { n++ })
	if n != 7 {
		t.Fatalf("RunTicks ran %d ticks, want 7", n)
	}
}
