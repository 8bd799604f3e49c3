package gesture

import "time"

// Clock reports uptime, the time base shared with MotionSample timestamps.
type Clock interface {
	Now() time.Duration
}

// UptimeClock measures uptime from the moment it was created.
type UptimeClock struct {
	start time.Time
}

// NewUptimeClock returns a clock starting at zero now.
func NewUptimeClock() *UptimeClock {
	return &UptimeClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created. It never returns
// zero, since zero is reserved as "no timestamp".
func (c *UptimeClock) Now() time.Duration {
	d := time.Since(c.start)
	if d <= 0 {
		d = 1
	}
	return d
}

// ManualClock is a clock that only moves when told to. Useful in tests and
// for replaying recorded input.
type ManualClock struct {
	now time.Duration
}

// NewManualClock returns a clock set to now.
func NewManualClock(now time.Duration) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Set moves the clock to now.
func (c *ManualClock) Set(now time.Duration) {
	c.now = now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
