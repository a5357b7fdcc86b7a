package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/animator"
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/daynight"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/Carmen-Shannon/oxy-diorama/engine/loader"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const carGLTF = `{
  "asset": {"version": "2.0"},
  "nodes": [{"name": "Chassis", "children": [1]}, {"name": "Wheel"}]
}`

type fakeHost struct {
	mu      sync.Mutex
	update  func()
	frames  int
	running bool
	closeAt int
}

func (h *fakeHost) SetUpdateCallback(callback func()) {
	h.update = callback
}

func (h *fakeHost) ProcessMessages(done <-chan struct{}) {
	for h.IsRunning() {
		select {
		case <-done:
			return
		default:
		}
		h.update()
		h.mu.Lock()
		h.frames++
		if h.closeAt > 0 && h.frames >= h.closeAt {
			h.running = false
		}
		h.mu.Unlock()
	}
}

func (h *fakeHost) IsRunning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

func manualEngine(t *testing.T, options ...EngineBuilderOption) (Engine, *clock.ManualClock) {
	t.Helper()
	mc := clock.NewManualClock()
	options = append([]EngineBuilderOption{WithClock(clock.NewClock(clock.WithTimeSource(mc.Now)))}, options...)
	return NewEngine(options...), mc
}

func TestFrameRunsAnimatorsInRegistrationOrder(t *testing.T) {
	var order []string
	record := func(name string) animator.Animator {
		return animator.Func(func(clock.Frame) { order = append(order, name) })
	}

	e, _ := manualEngine(t,
		WithAnimators(record("first"), record("second")),
		WithRenderCallback(func(clock.Frame) { order = append(order, "render") }),
	)
	e.AddAnimator(record("third"))
	e.AddAnimator(nil)

	e.Frame()

	assert.Equal(t, []string{"first", "second", "third", "render"}, order)
}

func TestFrameTicksClock(t *testing.T) {
	var seen []clock.Frame
	e, mc := manualEngine(t, WithRenderCallback(func(f clock.Frame) { seen = append(seen, f) }))

	first := e.Frame()
	mc.Advance(16 * time.Millisecond)
	second := e.Frame()

	assert.Equal(t, time.Duration(0), first.Delta)
	assert.Equal(t, 16*time.Millisecond, second.Delta)
	assert.Equal(t, first.Index+1, second.Index)
	assert.Equal(t, []clock.Frame{first, second}, seen)
}

func TestFrameDriveLoopsRunBeforeExtras(t *testing.T) {
	sc := scene.NewScene("test")
	sc.Register(scene.RoleCar, game_object.NewGameObject())
	loop := animator.NewDriveLoop(sc)

	var seen []animator.DriveState
	e, _ := manualEngine(t,
		WithScene(sc),
		WithAnimators(animator.Func(func(clock.Frame) {
			seen = append(seen, loop.State())
		})),
	)
	e.AddDriveLoop(loop)

	e.Frame()

	assert.Equal(t, []animator.DriveState{animator.DriveDrivingIn}, seen)
}

func TestToggleDayNightAppliesOnNextFrame(t *testing.T) {
	sc := scene.NewScene("test")
	toggle := daynight.NewToggle(sc)
	e, _ := manualEngine(t, WithScene(sc), WithDayNight(toggle))

	e.ToggleDayNight()
	assert.False(t, toggle.IsNight())

	e.Frame()
	assert.True(t, toggle.IsNight())

	e.ToggleDayNight()
	e.ToggleDayNight()
	e.Frame()
	assert.True(t, toggle.IsNight())
}

func TestToggleDayNightWithoutToggle(t *testing.T) {
	e, _ := manualEngine(t)
	e.ToggleDayNight()
	assert.NotPanics(t, func() { e.Frame() })
}

func TestSpawnRegistersLoadedObjects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "car.gltf"), []byte(carGLTF), 0o644))

	l := loader.NewLoader(loader.WithAssetDir(dir), loader.WithWorkers(1))
	defer l.Close()

	sc := scene.NewScene("test")
	e, _ := manualEngine(t, WithScene(sc), WithLoader(l))

	err := e.Spawn([]scene.Placement{
		{Asset: "car.gltf", Role: scene.RoleCar, Position: [3]float32{1, 0, 2}},
		{Asset: "missing.gltf", Role: scene.RolePlane},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		e.Frame()
		return l.Pending() == 0
	}, 2*time.Second, 5*time.Millisecond)

	car, ok := sc.Object(scene.RoleCar)
	require.True(t, ok)
	assert.Equal(t, "car", car.Name())
	assert.Equal(t, [3]float32{1, 0, 2}, car.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, car.Scale())

	_, ok = sc.Object(scene.RolePlane)
	assert.False(t, ok)
}

func TestSpawnRequiresSceneAndLoader(t *testing.T) {
	e, _ := manualEngine(t)
	assert.ErrorIs(t, e.Spawn(nil), ErrNoScene)

	e, _ = manualEngine(t, WithScene(scene.NewScene("test")))
	assert.Error(t, e.Spawn(nil))
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	var frames atomic.Int32
	e := NewEngine(
		WithTickRate(500),
		WithRenderCallback(func(clock.Frame) { frames.Add(1) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool { return frames.Load() >= 3 }, 2*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunHeadlessRecoversFromPanic(t *testing.T) {
	var frames atomic.Int32
	e := NewEngine(
		WithTickRate(500),
		WithAnimators(animator.Func(func(clock.Frame) {
			if frames.Add(1) == 1 {
				panic("boom")
			}
		})),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { _ = e.Run(ctx) }()

	assert.Eventually(t, func() bool { return frames.Load() >= 3 }, 2*time.Second, time.Millisecond)
}

func TestRunHostedFramePerIteration(t *testing.T) {
	host := &fakeHost{running: true, closeAt: 5}
	var frames int
	e, _ := manualEngine(t,
		WithWindow(host),
		WithRenderCallback(func(clock.Frame) { frames++ }),
	)

	err := e.Run(context.Background())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, frames)
}

func TestRunHostedStopsOnCancel(t *testing.T) {
	host := &fakeHost{running: true}
	ctx, cancel := context.WithCancel(context.Background())
	var frames int
	e, _ := manualEngine(t,
		WithWindow(host),
		WithRenderCallback(func(clock.Frame) {
			frames++
			if frames == 3 {
				cancel()
			}
		}),
	)

	err := e.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, frames)
	assert.True(t, host.IsRunning())
}

func TestSetTickRateDefaults(t *testing.T) {
	e := NewEngine().(*engine)
	assert.Equal(t, time.Second/60, e.tickInterval)

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.tickInterval)

	e.SetTickRate(100)
	assert.Equal(t, 10*time.Millisecond, e.tickInterval)
}

func TestProfilerToggles(t *testing.T) {
	e := NewEngine().(*engine)
	assert.False(t, e.profilingEnabled)
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled)
	e.Frame()
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled)
}
