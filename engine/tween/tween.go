package tween

import "time"

// Phase is one timed step of a Chain.
type Phase struct {
	// Name identifies the phase, e.g. for state reporting.
	Name string
	// Duration of the phase. A zero duration completes on entry.
	Duration time.Duration
	// Enter runs when the phase becomes active, before the first Apply.
	Enter func()
	// Apply receives linear progress in [0, 1].
	Apply func(progress float32)
	// Complete runs once after Apply(1).
	Complete func()
}

func (p Phase) enter() {
	if p.Enter != nil {
		p.Enter()
	}
}

func (p Phase) apply(progress float32) {
	if p.Apply != nil {
		p.Apply(progress)
	}
}

func (p Phase) complete() {
	if p.Complete != nil {
		p.Complete()
	}
}

// chain is the implementation of the Chain interface.
type chain struct {
	phases  []Phase
	loop    bool
	index   int
	elapsed time.Duration
	started bool
	done    bool
	cycles  uint64
	total   time.Duration
}

// Chain runs an ordered list of phases one after another, driven purely by
// the time handed to Advance. Exactly one phase is active at a time. Time left
// over when a phase completes carries into the next phase, so a long delta
// walks through every intermediate phase in order. A looping chain wraps from
// its last phase back to the first and never finishes.
type Chain interface {
	// Start activates the first phase without consuming time. Calling Start on a
	// running chain does nothing. Advance starts the chain implicitly.
	Start()

	// Advance moves the chain forward by dt. Negative values are treated as 0.
	//
	// Parameters:
	//   - dt: time to consume
	Advance(dt time.Duration)

	// Started reports whether the first phase has been entered.
	Started() bool

	// Done reports whether a non-looping chain has completed its last phase.
	//
	// Returns:
	//   - bool: true once finished, always false for looping chains
	Done() bool

	// Phase returns the index and name of the active phase.
	//
	// Returns:
	//   - int: index of the active phase, -1 before Start or after Done
	//   - string: the phase name, "" before Start or after Done
	Phase() (int, string)

	// Elapsed returns the time spent in the active phase.
	Elapsed() time.Duration

	// Progress returns the linear progress of the active phase in [0, 1].
	Progress() float32

	// Cycles returns how many times a looping chain has wrapped around.
	Cycles() uint64

	// CycleDuration returns the summed duration of all phases.
	CycleDuration() time.Duration

	// Reset returns the chain to its unstarted state without running any hooks.
	Reset()
}

var _ Chain = &chain{}

// NewChain creates a Chain over the given phases.
//
// Parameters:
//   - phases: the ordered phases, copied
//   - options: functional options for chain configuration
//
// Returns:
//   - Chain: the new chain
func NewChain(phases []Phase, options ...ChainBuilderOption) Chain {
	c := &chain{
		phases: append([]Phase(nil), phases...),
	}
	for _, p := range c.phases {
		c.total += p.Duration
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *chain) Start() {
	if c.started || len(c.phases) == 0 {
		return
	}
	c.started = true
	c.index = 0
	c.elapsed = 0
	c.phases[0].enter()
	c.phases[0].apply(0)
	c.settle()
}

func (c *chain) Advance(dt time.Duration) {
	if len(c.phases) == 0 || c.done {
		return
	}
	if !c.started {
		c.Start()
		if c.done {
			return
		}
	}
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	c.settle()
	if c.done {
		return
	}
	c.phases[c.index].apply(c.Progress())
}

// settle completes every phase whose duration has been consumed.
func (c *chain) settle() {
	for !c.done {
		p := c.phases[c.index]
		if c.elapsed < p.Duration {
			return
		}
		p.apply(1)
		p.complete()
		c.elapsed -= p.Duration

		c.index++
		if c.index == len(c.phases) {
			if !c.loop {
				c.done = true
				c.elapsed = 0
				return
			}
			c.index = 0
			c.cycles++
			// a loop of zero-duration phases would never consume time
			if c.total == 0 {
				c.phases[0].enter()
				c.phases[0].apply(0)
				return
			}
		}
		c.phases[c.index].enter()
		c.phases[c.index].apply(0)
	}
}

func (c *chain) Started() bool {
	return c.started
}

func (c *chain) Done() bool {
	return c.done
}

func (c *chain) Phase() (int, string) {
	if !c.started || c.done {
		return -1, ""
	}
	return c.index, c.phases[c.index].Name
}

func (c *chain) Elapsed() time.Duration {
	return c.elapsed
}

func (c *chain) Progress() float32 {
	if !c.started || c.done {
		return 0
	}
	d := c.phases[c.index].Duration
	if d <= 0 {
		return 1
	}
	p := float32(c.elapsed) / float32(d)
	if p > 1 {
		return 1
	}
	return p
}

func (c *chain) Cycles() uint64 {
	return c.cycles
}

func (c *chain) CycleDuration() time.Duration {
	return c.total
}

func (c *chain) Reset() {
	c.started = false
	c.done = false
	c.index = 0
	c.elapsed = 0
	c.cycles = 0
}
