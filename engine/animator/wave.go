package animator

import (
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/model"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/chewxy/math32"
)

const (
	DefaultWaveAmplitudeX float32 = 0.05
	DefaultWaveAmplitudeY float32 = 0.08
	DefaultWaveFrequency  float32 = 1.5
	DefaultWaveIncrement  float32 = 0.02
	DefaultWaveSpeed      float32 = 1.2 // per second, DefaultWaveIncrement at 60 FPS
)

// waveSimulator is the implementation of the WaveSimulator interface.
type waveSimulator struct {
	scene     scene.Scene
	ampX      float32
	ampY      float32
	frequency float32
	stepper   stepper
	time      float32
}

// WaveSimulator ripples the river mesh. Each vertex height is set to
//
//	z = ampX·sin(x·k + t) + ampY·cos(y·k + t)
//
// from the vertex's fixed planar coordinates (x, y). Planar coordinates and
// vertex count are never changed.
type WaveSimulator interface {
	Animator

	// Evaluate sets every river vertex height for wave time t. It does not
	// change the simulator's own wave time. No-op without a river mesh.
	//
	// Parameters:
	//   - t: wave time
	Evaluate(t float32)

	// Height returns the wave height at planar position (x, y) for wave time t.
	Height(x, y, t float32) float32

	// Time returns the current wave time.
	Time() float32
}

var _ WaveSimulator = &waveSimulator{}

// NewWaveSimulator creates a WaveSimulator driving the river of sc.
//
// Parameters:
//   - sc: the scene holding the river mesh
//   - options: functional options for wave configuration
//
// Returns:
//   - WaveSimulator: the new simulator
func NewWaveSimulator(sc scene.Scene, options ...WaveBuilderOption) WaveSimulator {
	w := &waveSimulator{
		scene:     sc,
		ampX:      DefaultWaveAmplitudeX,
		ampY:      DefaultWaveAmplitudeY,
		frequency: DefaultWaveFrequency,
		stepper: stepper{
			mode:  StepFixed,
			fixed: DefaultWaveIncrement,
			rate:  DefaultWaveSpeed,
		},
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *waveSimulator) Update(frame clock.Frame) {
	mesh, ok := w.scene.River()
	if !ok {
		return
	}
	w.time += w.stepper.step(frame)
	w.evaluate(mesh, w.time)
}

func (w *waveSimulator) Evaluate(t float32) {
	mesh, ok := w.scene.River()
	if !ok {
		return
	}
	w.evaluate(mesh, t)
}

func (w *waveSimulator) evaluate(mesh model.Mesh, t float32) {
	mesh.UpdateHeights(func(_ int, x, y float32) float32 {
		return w.Height(x, y, t)
	})
}

func (w *waveSimulator) Height(x, y, t float32) float32 {
	return math32.Sin(x*w.frequency+t)*w.ampX + math32.Cos(y*w.frequency+t)*w.ampY
}

func (w *waveSimulator) Time() float32 {
	return w.time
}
