package animator

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/Carmen-Shannon/oxy-diorama/engine/model"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(d time.Duration) clock.Frame {
	return clock.Frame{Delta: d}
}

func riverScene(mesh model.Mesh) scene.Scene {
	s := scene.NewScene("test")
	s.Register(scene.RoleRiver, game_object.NewGameObject(game_object.WithMesh(mesh)))
	return s
}

func TestParseStepMode(t *testing.T) {
	m, err := ParseStepMode("")
	require.NoError(t, err)
	assert.Equal(t, StepFixed, m)

	m, err = ParseStepMode("Delta")
	require.NoError(t, err)
	assert.Equal(t, StepDelta, m)
	assert.Equal(t, "delta", m.String())

	_, err = ParseStepMode("wall")
	assert.Error(t, err)
}

func TestFuncAdapter(t *testing.T) {
	calls := 0
	var a Animator = Func(func(clock.Frame) { calls++ })
	a.Update(frame(0))
	assert.Equal(t, 1, calls)
}

func TestWaveAtZeroMatchesFormula(t *testing.T) {
	mesh := model.NewPlaneMesh(2, 1, 2, 1)
	require.Equal(t, 6, mesh.VertexCount())
	w := NewWaveSimulator(riverScene(mesh))

	w.Evaluate(0)

	for i := 0; i < mesh.VertexCount(); i++ {
		x, y := mesh.Planar(i)
		want := 0.05*math.Sin(float64(x)*1.5) + 0.08*math.Cos(float64(y)*1.5)
		assert.InDelta(t, want, mesh.Height(i), 1e-6, "vertex %d", i)
	}
}

func TestWaveKeepsPlanarCoordinates(t *testing.T) {
	mesh := model.NewPlaneMesh(2, 11.2, 5, 15)
	before := mesh.Vertices()
	w := NewWaveSimulator(riverScene(mesh))

	w.Evaluate(0.5)
	h1 := mesh.Vertices()
	w.Evaluate(1.5)
	h2 := mesh.Vertices()

	require.Len(t, h2, len(before))
	changed := false
	for i := range before {
		assert.Equal(t, before[i].X, h2[i].X)
		assert.Equal(t, before[i].Y, h2[i].Y)
		if h1[i].Z != h2[i].Z {
			changed = true
		}
	}
	assert.True(t, changed)
}

func TestWaveDeterministic(t *testing.T) {
	a := model.NewPlaneMesh(2, 11.2, 5, 15)
	b := model.NewPlaneMesh(2, 11.2, 5, 15)
	NewWaveSimulator(riverScene(a)).Evaluate(3.7)
	NewWaveSimulator(riverScene(b)).Evaluate(3.7)

	assert.Equal(t, a.Vertices(), b.Vertices())
}

func TestWaveFixedStep(t *testing.T) {
	mesh := model.NewPlaneMesh(2, 1, 2, 1)
	w := NewWaveSimulator(riverScene(mesh))

	w.Update(frame(time.Second))
	w.Update(frame(0))

	assert.InDelta(t, 0.04, w.Time(), 1e-6)
	assert.InDelta(t, w.Height(-1, 0.5, w.Time()), mesh.Height(0), 1e-7)
}

func TestWaveDeltaStep(t *testing.T) {
	mesh := model.NewPlaneMesh(2, 1, 2, 1)
	w := NewWaveSimulator(riverScene(mesh), WithWaveStep(StepDelta, 0, 0))

	w.Update(frame(500 * time.Millisecond))

	assert.InDelta(t, 0.6, w.Time(), 1e-6)
}

func TestWaveWithoutRiverIsNoop(t *testing.T) {
	w := NewWaveSimulator(scene.NewScene("empty"))

	w.Update(frame(time.Second))
	w.Evaluate(1)

	assert.Equal(t, float32(0), w.Time())
}

func TestOrbitRadiusAndAltitude(t *testing.T) {
	s := scene.NewScene("test")
	plane := game_object.NewGameObject()
	s.Register(scene.RolePlane, plane)
	o := NewOrbitAnimator(s)

	for i := 0; i < 700; i++ {
		o.Update(frame(16 * time.Millisecond))
		pos := plane.Position()
		r := math.Hypot(float64(pos[0]), float64(pos[2]))
		assert.InDelta(t, 6, r, 1e-4)
		assert.Equal(t, float32(9), pos[1])
	}
	assert.InDelta(t, 7.0, o.Angle(), 1e-3)
}

func TestOrbitFacesAlongPath(t *testing.T) {
	s := scene.NewScene("test")
	plane := game_object.NewGameObject()
	s.Register(scene.RolePlane, plane)
	o := NewOrbitAnimator(s)

	o.Advance(0.01)

	// the look-ahead chord points at angle θ+ε/2 past the tangent
	assert.InDelta(t, -(0.01 + 0.05), plane.Rotation()[1], 1e-5)
	pos, yaw := o.PoseAt(o.Angle())
	assert.Equal(t, plane.Position(), pos)
	assert.Equal(t, plane.Rotation()[1], yaw)
}

func TestOrbitAbsentNodeDoesNotAdvance(t *testing.T) {
	s := scene.NewScene("test")
	o := NewOrbitAnimator(s)

	o.Update(frame(time.Second))
	o.Advance(1)

	assert.Equal(t, float32(0), o.Angle())
}

func TestOrbitNeverUpdatedLeavesNode(t *testing.T) {
	s := scene.NewScene("test")
	plane := game_object.NewGameObject(game_object.WithScale(1.8, 1.8, 1.8))
	_ = NewOrbitAnimator(s)
	s.Register(scene.RolePlane, plane)

	assert.Equal(t, [3]float32{}, plane.Position())
	assert.Equal(t, [3]float32{}, plane.Rotation())
}

func TestOrbitDeltaStep(t *testing.T) {
	s := scene.NewScene("test")
	s.Register(scene.RolePlane, game_object.NewGameObject())
	o := NewOrbitAnimator(s, WithOrbitStep(StepDelta, 0, 0), WithOrbitPath(3, 2, 0.1))

	o.Update(frame(time.Second))

	assert.InDelta(t, 0.6, o.Angle(), 1e-6)
}

func TestSpinner(t *testing.T) {
	s := scene.NewScene("test")
	sp := NewSpinner(s)
	sp.Update(frame(0))

	carousel := game_object.NewGameObject(game_object.WithPosition(2, 0.3, 7.5))
	s.Register(scene.RoleCarousel, carousel)
	for i := 0; i < 10; i++ {
		sp.Update(frame(0))
	}

	assert.InDelta(t, 0.1, carousel.Rotation()[1], 1e-6)
	assert.Equal(t, [3]float32{2, 0.3, 7.5}, carousel.Position())
}

func TestClipPlayerLoops(t *testing.T) {
	s := scene.NewScene("test")
	plane := game_object.NewGameObject(game_object.WithClips(game_object.Clip{Name: "Propeller", Duration: 1}))
	s.Register(scene.RolePlane, plane)
	p := NewClipPlayer(s)

	p.Update(frame(700 * time.Millisecond))
	p.Update(frame(700 * time.Millisecond))

	idx, tm := plane.ClipTime()
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0.4, tm, 1e-5)
}

func TestClipPlayerWithoutClips(t *testing.T) {
	s := scene.NewScene("test")
	plane := game_object.NewGameObject()
	s.Register(scene.RolePlane, plane)

	NewClipPlayer(s).Update(frame(time.Second))

	_, tm := plane.ClipTime()
	assert.Equal(t, float32(0), tm)
}
