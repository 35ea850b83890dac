// Package physics holds the deterministic simulation primitives: the
// fixed-timestep clock and the per-tick integration step. Nothing here
// touches the terminal, so everything is testable headless.
package physics

import "time"

// DefaultMaxSteps caps how many ticks a single frame may run.
const DefaultMaxSteps = 6

// Clock turns variable wall-clock frame times into whole fixed ticks.
// Time that does not fill a tick is carried to the next frame.
type Clock struct {
	step     time.Duration
	maxSteps int

	accumulator time.Duration
	last        time.Time
	started     bool

	ticks   uint64 // Total ticks released
	dropped uint64 // Ticks discarded by the per-frame cap
}

// NewClock creates a clock releasing tickRate ticks per second and at most
// maxSteps ticks per frame. Non-positive arguments fall back to 60 and
// DefaultMaxSteps.
func NewClock(tickRate, maxSteps int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Clock{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Advance reports how many ticks are due at wall-clock time now.
// The first call only anchors the clock and returns 0.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	return c.AdvanceBy(elapsed)
}

// AdvanceBy adds elapsed time and reports how many ticks are due.
// Whole ticks beyond the cap are dropped rather than simulated; the sub-tick
// remainder is always kept.
func (c *Clock) AdvanceBy(elapsed time.Duration) int {
	total := elapsed + c.accumulator
	steps := 0
	for total >= c.step {
		total -= c.step
		if steps < c.maxSteps {
			steps++
		} else {
			c.dropped++
		}
	}
	c.accumulator = total
	c.ticks += uint64(steps)
	return steps
}

// Step returns the fixed tick length.
func (c *Clock) Step() time.Duration {
	return c.step
}

// DT returns the fixed tick length in seconds.
func (c *Clock) DT() float64 {
	return c.step.Seconds()
}

// MaxSteps returns the per-frame tick cap.
func (c *Clock) MaxSteps() int {
	return c.maxSteps
}

// Accumulator returns the carried-over time not yet consumed by a tick.
func (c *Clock) Accumulator() time.Duration {
	return c.accumulator
}

// Alpha returns how far the carried remainder is into the next tick, in [0, 1).
func (c *Clock) Alpha() float64 {
	return float64(c.accumulator) / float64(c.step)
}

// Ticks returns the total number of ticks released so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Dropped returns the total number of ticks discarded by the cap.
func (c *Clock) Dropped() uint64 {
	return c.dropped
}

// Reset clears the accumulator and re-anchors the clock on the next Advance.
// Use it after pauses so the paused time is not replayed.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.started = false
}
