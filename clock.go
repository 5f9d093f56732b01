package vfx

import "time"

// Clock is a millisecond stopwatch. Each Tick returns the time elapsed
// since the previous Tick and rearms the stopwatch.
//
// The first Tick measures from construction, so the very first frame's
// delta includes setup cost. That is intentional: the monitor treats an
// expensive first frame like any other slow frame.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock creates a Clock armed at the current time.
func NewClock() *Clock {
	return newClockAt(time.Now)
}

// newClockAt creates a Clock with an injectable time source for tests.
func newClockAt(now func() time.Time) *Clock {
	return &Clock{last: now(), now: now}
}

// Tick returns the duration since the previous Tick (or since
// construction for the first call) and stores the current instant.
//
// The result is non-negative barring host clock anomalies; time.Since
// on a monotonic reading never goes backwards.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	return dt
}
