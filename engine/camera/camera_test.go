package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestDefaultControllerStartsAtReferencePosition(t *testing.T) {
	cc := NewCameraController()
	assertVec(t, [3]float32{0, 5, 15}, cc.Position())
	assertVec(t, [3]float32{}, cc.Target())
	assert.InDelta(t, math32.Sqrt(250), cc.Radius(), 1e-4)
}

func TestEyePositionRelativeToTarget(t *testing.T) {
	cc := NewCameraController(WithEyePosition(10, 10, 0), WithTarget(0, 0, 0), WithRadiusBounds(1, 100))
	assertVec(t, [3]float32{10, 10, 0}, cc.Position())
	assert.InDelta(t, math32.Pi/2, cc.Azimuth(), 1e-5)
	assert.InDelta(t, math32.Pi/4, cc.Elevation(), 1e-5)
}

func TestDampedRotateConvergesToInput(t *testing.T) {
	cc := NewCameraController(WithDamping(0.1), WithMouseSensitivity(0.01))
	start := cc.Position()

	cc.Rotate(-50, 0)
	assertVec(t, start, cc.Position())

	cc.Update()
	assert.InDelta(t, 0.05, cc.Azimuth(), 1e-5)

	for range 500 {
		cc.Update()
	}
	assert.InDelta(t, 0.5, cc.Azimuth(), 1e-3)
	assert.InDelta(t, math32.Sqrt(250), cc.Radius(), 1e-4)
}

func TestUndampedInputAppliesImmediately(t *testing.T) {
	cc := NewCameraController(WithDamping(0), WithOrbitSpeed(0.25))
	cc.OrbitRight()
	assert.InDelta(t, 0.25, cc.Azimuth(), 1e-6)
	cc.OrbitLeft()
	cc.OrbitLeft()
	assert.InDelta(t, -0.25, cc.Azimuth(), 1e-6)

	cc.Update()
	assert.InDelta(t, -0.25, cc.Azimuth(), 1e-6)
}

func TestZoomAndElevationClamp(t *testing.T) {
	cc := NewCameraController(WithDamping(0), WithRadiusBounds(5, 20), WithElevationBounds(0.1, 1))

	cc.Zoom(100)
	assert.Equal(t, float32(5), cc.Radius())
	cc.Zoom(-100)
	assert.Equal(t, float32(20), cc.Radius())

	cc.SetElevation(3)
	assert.Equal(t, float32(1), cc.Elevation())
	cc.SetElevation(-3)
	assert.Equal(t, float32(0.1), cc.Elevation())
}

func TestPanMovesTargetAndPosition(t *testing.T) {
	cc := NewCameraController(WithPanSpeed(1))
	before := cc.Position()

	cc.PanRight(2)
	assertVec(t, [3]float32{2, 0, 0}, cc.Target())
	assertVec(t, [3]float32{before[0] + 2, before[1], before[2]}, cc.Position())

	cc.PanUp(1)
	assert.Greater(t, cc.Target()[1], float32(0))
}

func TestCameraViewMatrixFollowsController(t *testing.T) {
	cc := NewCameraController(WithDamping(0))
	cam := NewCamera(WithController(cc), WithAspect(16.0/9.0))
	require.NotNil(t, cam.Controller())

	// The eye maps to the view-space origin.
	m := cam.ViewMatrix()
	eye := cc.Position()
	for row := 0; row < 3; row++ {
		v := m[row]*eye[0] + m[4+row]*eye[1] + m[8+row]*eye[2] + m[12+row]
		assert.InDelta(t, 0, v, 1e-4)
	}

	cc.OrbitRight()
	before := cam.ViewMatrix()
	cam.Update()
	assert.NotEqual(t, before, cam.ViewMatrix())

	cam.SetAspect(0)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), 1e-6)
}

func TestCameraWithoutControllerKeepsIdentityView(t *testing.T) {
	cam := NewCamera()
	cam.Update()
	v := cam.ViewMatrix()
	assert.Equal(t, float32(1), v[0])
	assert.Equal(t, float32(1), v[15])
	assert.Equal(t, float32(0), v[12])
}
