package core

import "time"

// Clock supplies monotonic time in milliseconds.
type Clock interface {
	NowMillis() uint64
}

// SystemClock reads the monotonic wall clock relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() uint64 {
	return uint64(time.Since(c.start).Milliseconds()) //#nosec G115 -- monotonic elapsed time is never negative
}

// ManualClock is advanced explicitly. Used by tests.
type ManualClock struct {
	Millis uint64
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() uint64 {
	return c.Millis
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.Millis += uint64(d.Milliseconds()) //#nosec G115 -- callers pass positive durations
}

// TickClock derives time from a tick counter at a fixed tick rate, so a
// headless run sees the same timings as a real-time one.
type TickClock struct {
	Rate  int
	ticks uint64
}

// NewTickClock creates a tick-driven clock. Non-positive rates default to 60.
func NewTickClock(rate int) *TickClock {
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{Rate: rate}
}

// Tick advances the clock by one simulation tick.
func (c *TickClock) Tick() {
	c.ticks++
}

// NowMillis returns ticks converted to milliseconds.
func (c *TickClock) NowMillis() uint64 {
	return c.ticks * 1000 / uint64(c.Rate) //#nosec G115 -- rate is positive
}
