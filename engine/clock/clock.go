package clock

import (
	"time"
)

// Frame is the timing snapshot handed to every per-frame update.
type Frame struct {
	// Index counts ticks since the clock started, starting at 1 for the first tick.
	Index uint64
	// Delta is the time since the previous tick, never negative.
	Delta time.Duration
	// Elapsed is the total time accumulated by the clock.
	Elapsed time.Duration
}

// DeltaSeconds returns Delta in seconds.
func (f Frame) DeltaSeconds() float32 {
	return float32(f.Delta.Seconds())
}

// ElapsedSeconds returns Elapsed in seconds.
func (f Frame) ElapsedSeconds() float32 {
	return float32(f.Elapsed.Seconds())
}

// TimeSource reports the current time. time.Now is the default.
type TimeSource func() time.Time

// clock is the implementation of the Clock interface.
type clock struct {
	now     TimeSource
	started bool
	last    time.Time
	elapsed time.Duration
	delta   time.Duration
	index   uint64
}

// Clock supplies monotonically increasing elapsed time and per-frame deltas.
// It is not safe for concurrent use; the frame loop is its only caller.
type Clock interface {
	// Tick advances the clock and returns the time since the previous tick.
	// The first tick after creation or Reset returns 0. If the time source
	// reports a time earlier than the previous tick the delta is clamped to 0.
	//
	// Returns:
	//   - time.Duration: the non-negative delta
	Tick() time.Duration

	// Frame returns the snapshot produced by the most recent Tick.
	//
	// Returns:
	//   - Frame: index, delta and elapsed time of the last tick
	Frame() Frame

	// Elapsed returns the total accumulated time.
	Elapsed() time.Duration

	// Reset restarts the clock at zero elapsed time.
	Reset()
}

var _ Clock = &clock{}

// NewClock creates a Clock reading wall-clock time unless a different source is configured.
//
// Parameters:
//   - options: functional options for clock configuration
//
// Returns:
//   - Clock: the newly created clock
func NewClock(options ...ClockBuilderOption) Clock {
	c := &clock{
		now: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *clock) Tick() time.Duration {
	now := c.now()
	c.index++

	if !c.started {
		c.started = true
		c.last = now
		c.delta = 0
		return 0
	}

	d := now.Sub(c.last)
	if d < 0 {
		d = 0
	}
	c.last = now
	c.delta = d
	c.elapsed += d
	return d
}

func (c *clock) Frame() Frame {
	return Frame{
		Index:   c.index,
		Delta:   c.delta,
		Elapsed: c.elapsed,
	}
}

func (c *clock) Elapsed() time.Duration {
	return c.elapsed
}

func (c *clock) Reset() {
	c.started = false
	c.elapsed = 0
	c.delta = 0
	c.index = 0
}
