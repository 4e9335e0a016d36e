package session

import (
	"sync"
	"time"
)

// Countdown drives the once-per-second tick of a running session. It is an
// explicit scheduled task owned by the session's service: pausable,
// resumable, and idempotently stoppable. Paused intervals are simply
// skipped, so wall-clock time spent paused never counts against the quiz
// clock and resuming never replays missed ticks.
type Countdown struct {
	mu      sync.Mutex
	paused  bool
	stopped bool
	stopCh  chan struct{}
}

// NewCountdown starts a countdown invoking onTick once per interval until
// stopped.
func NewCountdown(interval time.Duration, onTick func()) *Countdown {
	c := &Countdown{stopCh: make(chan struct{})}
	go c.run(interval, onTick)
	return c
}

func (c *Countdown) run(interval time.Duration, onTick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			if !c.isPaused() {
				onTick()
			}
		}
	}
}

// Pause suspends ticking until Resume.
func (c *Countdown) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume re-enables ticking. Ticks missed while paused are not replayed.
func (c *Countdown) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

func (c *Countdown) isPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Stop terminates the countdown. Stopping twice is safe.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.stopped {
		c.stopped = true
		close(c.stopCh)
	}
}
