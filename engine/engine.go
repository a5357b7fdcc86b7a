package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
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

// ErrNoScene is returned by Spawn when the engine was built without a scene.
var ErrNoScene = errors.New("engine has no scene")

// Host is the message loop the engine runs on in windowed mode.
// window.Window satisfies it.
type Host interface {
	SetUpdateCallback(callback func())
	ProcessMessages(done <-chan struct{})
	IsRunning() bool
}

// engine implements the Engine interface.
// All registry mutation happens on the goroutine running Frame.
type engine struct {
	mu sync.Mutex

	logger zerolog.Logger

	clock  clock.Clock
	scene  scene.Scene
	loader loader.Loader
	camera camera.Camera
	host   Host

	wave    animator.Animator
	orbit   animator.Animator
	spinner animator.Animator
	clips   animator.Animator
	drives  []animator.Animator
	extra   []animator.Animator

	dayNight       daynight.Toggle
	toggleRequests atomic.Int32

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickInterval   time.Duration
	renderCallback func(frame clock.Frame)
}

// Engine drives the diorama one frame at a time.
type Engine interface {
	// Frame runs one iteration: drains asset completions into the scene, ticks the
	// clock, updates the camera, runs every animator in order, calls the render
	// callback and ticks the profiler.
	//
	// Returns:
	//   - clock.Frame: the frame that was produced
	Frame() clock.Frame

	// Run produces frames until ctx is cancelled. With a Host it runs one frame per
	// message-loop iteration; closing the window cancels the run. Without a Host it
	// runs on a ticker at the configured tick rate.
	//
	// Parameters:
	//   - ctx: controls the lifetime of the loop
	//
	// Returns:
	//   - error: ctx.Err() once the loop stops
	Run(ctx context.Context) error

	// ToggleDayNight requests a day/night switch. The switch is applied at the start
	// of the next frame. No-op when the engine has no toggle.
	ToggleDayNight()

	// AddAnimator registers an extra animator. Extra animators run after the drive
	// loops in registration order.
	//
	// Parameters:
	//   - a: the animator to add
	AddAnimator(a animator.Animator)

	// AddDriveLoop registers another drive loop, run after the existing ones.
	//
	// Parameters:
	//   - d: the drive loop to add
	AddDriveLoop(d animator.DriveLoop)

	// Spawn queues asynchronous loads for every placement. As each load completes
	// (during a later Frame) the object is placed, attached to the scene under the
	// placement role and, for roles with clips, picked up by the clip player.
	// Failed loads are logged and skipped.
	//
	// Parameters:
	//   - placements: asset-backed placements, typically from scene.Populate
	//
	// Returns:
	//   - error: ErrNoScene or a loader-less configuration error
	Spawn(placements []scene.Placement) error

	// SetTickRate sets the headless tick rate in frames per second.
	// Values <= 0 are treated as 60.
	//
	// Parameters:
	//   - fps: target frames per second
	SetTickRate(fps float64)

	// SetRenderCallback registers the function called at the end of each frame.
	//
	// Parameters:
	//   - callback: receives the frame just produced
	SetRenderCallback(callback func(frame clock.Frame))

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Scene returns the scene the engine animates, or nil.
	Scene() scene.Scene

	// Clock returns the engine clock.
	Clock() clock.Clock
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// The clock defaults to a wall clock, the tick rate to 60Hz and the logger to zerolog.Nop().
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:       zerolog.Nop(),
		tickInterval: time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.clock == nil {
		e.clock = clock.NewClock()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	e.logger = e.logger.With().Str("component", "Engine").Logger()

	return e
}

func (e *engine) Frame() clock.Frame {
	e.applyToggles()

	if e.loader != nil {
		e.loader.Drain()
	}

	e.clock.Tick()
	frame := e.clock.Frame()

	if e.camera != nil {
		e.camera.Update()
	}

	for _, a := range e.animators() {
		a.Update(frame)
	}

	e.mu.Lock()
	render := e.renderCallback
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if render != nil {
		render(frame)
	}
	if profiling {
		e.profiler.Tick()
	}
	return frame
}

func (e *engine) Run(ctx context.Context) error {
	if e.host != nil {
		return e.runHosted(ctx)
	}
	return e.runHeadless(ctx)
}

// runHosted drives frames from the host message loop.
func (e *engine) runHosted(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.host.SetUpdateCallback(func() {
		e.safeFrame()
	})
	e.logger.Info().Msg("running windowed")
	e.host.ProcessMessages(ctx.Done())

	if !e.host.IsRunning() {
		e.logger.Info().Msg("window closed")
		cancel()
	}
	return ctx.Err()
}

// runHeadless drives frames from a ticker until ctx is done.
func (e *engine) runHeadless(ctx context.Context) error {
	e.mu.Lock()
	interval := e.tickInterval
	e.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info().Dur("interval", interval).Msg("running headless")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.safeFrame()

			e.mu.Lock()
			next := e.tickInterval
			e.mu.Unlock()
			if next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}

// safeFrame runs one frame and logs a recovered panic.
func (e *engine) safeFrame() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Str("panic", fmt.Sprint(r)).Msg("frame recovered from panic")
		}
	}()
	e.Frame()
}

func (e *engine) ToggleDayNight() {
	e.toggleRequests.Add(1)
}

// applyToggles flips the toggle once per pending request.
func (e *engine) applyToggles() {
	n := e.toggleRequests.Swap(0)
	if e.dayNight == nil {
		return
	}
	for ; n > 0; n-- {
		e.dayNight.Toggle()
	}
}

func (e *engine) AddAnimator(a animator.Animator) {
	if a == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.extra = append(e.extra, a)
}

func (e *engine) AddDriveLoop(d animator.DriveLoop) {
	if d == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.drives = append(e.drives, d)
}

// animators returns the per-frame update order: wave, orbit, spinner, clips,
// drive loops, then extra animators.
func (e *engine) animators() []animator.Animator {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]animator.Animator, 0, 4+len(e.drives)+len(e.extra))
	for _, a := range []animator.Animator{e.wave, e.orbit, e.spinner, e.clips} {
		if a != nil {
			out = append(out, a)
		}
	}
	out = append(out, e.drives...)
	out = append(out, e.extra...)
	return out
}

func (e *engine) Spawn(placements []scene.Placement) error {
	if e.scene == nil {
		return ErrNoScene
	}
	if e.loader == nil {
		return fmt.Errorf("spawn %d placements: engine has no loader", len(placements))
	}
	for _, p := range placements {
		e.loader.LoadAsync(p.Asset, func(res loader.Result) {
			e.place(p, res)
		})
	}
	return nil
}

// place attaches a completed load to the scene. Runs on the frame goroutine.
func (e *engine) place(p scene.Placement, res loader.Result) {
	if res.Err != nil {
		e.logger.Warn().Err(res.Err).Str("asset", p.Asset).Str("role", string(p.Role)).Msg("placement skipped")
		return
	}
	obj := res.Object
	obj.SetTransform(p.Transform())
	e.scene.Register(p.Role, obj)
	e.logger.Debug().Str("asset", p.Asset).Str("role", string(p.Role)).Int("clips", len(obj.Clips())).Msg("placed")
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickInterval = time.Duration(float64(time.Second) / fps)
}

func (e *engine) SetRenderCallback(callback func(frame clock.Frame)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Clock() clock.Clock {
	return e.clock
}
