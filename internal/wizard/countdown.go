package wizard

import "time"

// StepSeconds is the countdown shown on entry to every step.
const StepSeconds = 50

// Countdown is the per-step urgency cue. It is purely presentational:
// reaching zero blocks nothing, advances nothing and submits nothing.
type Countdown struct {
	duration int
	resetAt  time.Time
	now      func() time.Time
}

// NewCountdown starts a countdown at the full duration. A nil clock uses
// wall time; tests inject a fixed clock.
func NewCountdown(now func() time.Time) *Countdown {
	if now == nil {
		now = time.Now
	}
	c := &Countdown{duration: StepSeconds, now: now}
	c.Reset()
	return c
}

// Reset restarts the countdown at the full duration.
func (c *Countdown) Reset() {
	c.resetAt = c.now()
}

// Remaining returns the seconds left, clamped at zero.
func (c *Countdown) Remaining() int {
	elapsed := int(c.now().Sub(c.resetAt) / time.Second)
	if elapsed >= c.duration {
		return 0
	}
	return c.duration - elapsed
}
