package logging

import "time"

// Clock supplies line timestamps as nanoseconds since the Unix epoch.
type Clock interface {
	TimestampNs() uint64
}

// LiveClock reads the wall clock.
type LiveClock struct{}

func (LiveClock) TimestampNs() uint64 {
	return toUnixNanos(time.Now())
}

// TestClock is a controllable clock for tests and backtests.
type TestClock struct {
	timestampNs uint64
}

// NewTestClock creates a TestClock set to timestampNs.
func NewTestClock(timestampNs uint64) *TestClock {
	return &TestClock{timestampNs: timestampNs}
}

func (c *TestClock) TimestampNs() uint64 {
	return c.timestampNs
}

// Set moves the clock to an absolute time.
func (c *TestClock) Set(timestampNs uint64) {
	c.timestampNs = timestampNs
}

// Advance moves the clock forward by d.
func (c *TestClock) Advance(d time.Duration) {
	if d > 0 {
		c.timestampNs += uint64(d)
	}
}

// toUnixNanos clamps times before the epoch to zero.
func toUnixNanos(t time.Time) uint64 {
	ns := t.UnixNano()
	if ns < 0 {
		return 0
	}

	return uint64(ns)
}
