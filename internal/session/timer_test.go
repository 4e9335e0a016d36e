package session

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdownTicks(t *testing.T) {
	var ticks atomic.Int32
	c := NewCountdown(5*time.Millisecond, func() { ticks.Add(1) })
	defer c.Stop()

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("Expected at least 3 ticks, got %d", ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCountdownPauseStopsTicks(t *testing.T) {
	var ticks atomic.Int32
	c := NewCountdown(5*time.Millisecond, func() { ticks.Add(1) })
	defer c.Stop()

	c.Pause()
	// Allow in-flight ticks to drain before sampling.
	time.Sleep(20 * time.Millisecond)
	before := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	if after := ticks.Load(); after != before {
		t.Errorf("Countdown ticked while paused: %d -> %d", before, after)
	}

	c.Resume()
	deadline := time.After(2 * time.Second)
	for ticks.Load() == before {
		select {
		case <-deadline:
			t.Fatal("Countdown did not resume ticking")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	c := NewCountdown(time.Millisecond, func() {})
	c.Stop()
	c.Stop() // must not panic
}
