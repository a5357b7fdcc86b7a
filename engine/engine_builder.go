package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/animator"
	"github.com/Carmen-Shannon/oxy-diorama/engine/camera"
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/daynight"
	"github.com/Carmen-Shannon/oxy-diorama/engine/loader"
	"github.com/Carmen-Shannon/oxy-diorama/engine/profiler"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/rs/zerolog"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the headless tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.tickInterval = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow runs the engine on the given host message loop instead of a ticker.
//
// Parameters:
//   - h: the host, usually a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(h Host) EngineBuilderOption {
	return func(e *engine) {
		e.host = h
	}
}

// WithScene sets the scene the engine animates and spawns into.
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithClock sets the frame clock. Tests pass a clock driven by clock.ManualClock.
func WithClock(c clock.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithLoader sets the asset loader drained at the start of each frame.
func WithLoader(l loader.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.loader = l
	}
}

// WithCamera sets the camera updated before the animators each frame.
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithWave sets the river wave animator.
func WithWave(w animator.WaveSimulator) EngineBuilderOption {
	return func(e *engine) {
		e.wave = w
	}
}

// WithOrbit sets the plane orbit animator.
func WithOrbit(o animator.OrbitAnimator) EngineBuilderOption {
	return func(e *engine) {
		e.orbit = o
	}
}

// WithSpinner sets the carousel spinner.
func WithSpinner(s *animator.Spinner) EngineBuilderOption {
	return func(e *engine) {
		if s != nil {
			e.spinner = s
		}
	}
}

// WithClipPlayer sets the clip player.
func WithClipPlayer(p *animator.ClipPlayer) EngineBuilderOption {
	return func(e *engine) {
		if p != nil {
			e.clips = p
		}
	}
}

// WithDriveLoops appends drive loops. They run in the order given.
//
// Parameters:
//   - loops: the drive loops to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDriveLoops(loops ...animator.DriveLoop) EngineBuilderOption {
	return func(e *engine) {
		for _, d := range loops {
			if d != nil {
				e.drives = append(e.drives, d)
			}
		}
	}
}

// WithAnimators appends extra animators run after the drive loops.
func WithAnimators(animators ...animator.Animator) EngineBuilderOption {
	return func(e *engine) {
		for _, a := range animators {
			if a != nil {
				e.extra = append(e.extra, a)
			}
		}
	}
}

// WithDayNight sets the toggle driven by ToggleDayNight.
func WithDayNight(t daynight.Toggle) EngineBuilderOption {
	return func(e *engine) {
		e.dayNight = t
	}
}

// WithRenderCallback sets the function called at the end of each frame.
func WithRenderCallback(callback func(frame clock.Frame)) EngineBuilderOption {
	return func(e *engine) {
		e.renderCallback = callback
	}
}

// WithLogger sets the engine logger. The default profiler inherits it.
func WithLogger(logger zerolog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger
	}
}
