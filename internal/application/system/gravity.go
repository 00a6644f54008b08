package system

import "time"

// GravityTimer fires once per fixed interval of elapsed game time.
// It is a pure function of the clock passed in; nothing runs in the background.
type GravityTimer struct {
	interval time.Duration
	last     time.Duration
}

// NewGravityTimer creates a timer armed at time zero
func NewGravityTimer(interval time.Duration) *GravityTimer {
	return &GravityTimer{interval: interval}
}

// Due reports whether a full interval has passed since the last tick.
// When it has, the timer re-arms from now: a long stall yields one tick, not
// a burst of catch-up ticks.
func (t *GravityTimer) Due(now time.Duration) bool {
	if now-t.last < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset re-arms the timer from now
func (t *GravityTimer) Reset(now time.Duration) {
	t.last = now
}
