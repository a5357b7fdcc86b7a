package profiler

import (
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/rs/zerolog"
)

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithLogger sets the logger stats are written to.
func WithLogger(logger zerolog.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// WithInterval sets how often stats are sampled. Non-positive values keep the default.
//
// Parameters:
//   - d: the sampling interval
//
// Returns:
//   - ProfilerBuilderOption: functional option to set the interval
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithTimeSource replaces the wall clock, used by tests.
func WithTimeSource(src clock.TimeSource) ProfilerBuilderOption {
	return func(p *Profiler) {
		if src != nil {
			p.now = src
		}
	}
}
