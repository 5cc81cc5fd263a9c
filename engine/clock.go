package engine

import "time"

// TimeSource produces the logical playback position in seconds. Position is
// monotonic except for explicit pause freezes; queries must return
// immediately and never block the tick loop.
type TimeSource interface {
	Start() error
	Pause()
	Resume()
	Stop()
	Position() float64
	Err() error
}

// Clock is the wall-clock TimeSource used when no audio backend is
// available. Elapsed time excludes paused spans, so resumption is
// drift-free. Single-writer: only the tick loop touches it.
type Clock struct {
	offset      float64 // position at Start, for mid-show handover
	start       time.Time
	pauseStart  time.Time
	totalPaused time.Duration
	paused      bool
}

// NewClock creates a stopped clock at position zero
func NewClock() *Clock {
	return &Clock{}
}

// NewClockFrom creates a stopped clock that will resume counting from the
// given position, used when audio dies mid-show.
func NewClockFrom(position float64) *Clock {
	return &Clock{offset: position}
}

// Start begins counting from the configured offset
func (c *Clock) Start() error {
	c.start = time.Now()
	c.totalPaused = 0
	c.paused = false
	return nil
}

// Pause freezes the reported position
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = time.Now()
}

// Resume unfreezes, excluding the paused span from elapsed time
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += time.Since(c.pauseStart)
	c.paused = false
}

// Stop is a no-op; the clock holds no resources
func (c *Clock) Stop() {}

// Position returns elapsed seconds excluding paused spans
func (c *Clock) Position() float64 {
	if c.start.IsZero() {
		return c.offset
	}
	var elapsed time.Duration
	if c.paused {
		elapsed = c.pauseStart.Sub(c.start) - c.totalPaused
	} else {
		elapsed = time.Since(c.start) - c.totalPaused
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return c.offset + elapsed.Seconds()
}

// Err always reports nil; wall time cannot fail
func (c *Clock) Err() error { return nil }
