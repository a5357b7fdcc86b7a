package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex(0xB2DDF7)
	assert.InDelta(t, float32(0xB2)/255, c[0], 1e-6)
	assert.InDelta(t, float32(0xDD)/255, c[1], 1e-6)
	assert.InDelta(t, float32(0xF7)/255, c[2], 1e-6)
	assert.Equal(t, uint32(0xB2DDF7), c.Hex())
	assert.Equal(t, "#161636", ColorFromHex(0x161636).String())
}

func TestLerp3(t *testing.T) {
	a := [3]float32{0, 0.15, -9.5}
	b := [3]float32{0, 0.15, 0}
	assert.Equal(t, a, Lerp3(a, b, 0))
	assert.Equal(t, b, Lerp3(a, b, 1))
	assert.InDelta(t, -4.75, Lerp3(a, b, 0.5)[2], 1e-6)
}

func TestYawTowards(t *testing.T) {
	origin := [3]float32{}
	assert.InDelta(t, 0, YawTowards(origin, [3]float32{0, 0, 1}), 1e-6)
	assert.InDelta(t, math32.Pi/2, YawTowards(origin, [3]float32{1, 0, 0}), 1e-6)
	assert.InDelta(t, -math32.Pi/2, YawTowards(origin, [3]float32{-1, 5, 0}), 1e-6)
	assert.Equal(t, float32(0), YawTowards(origin, [3]float32{0, 3, 0}))
}

func TestUnitScaleIfZero(t *testing.T) {
	assert.Equal(t, [3]float32{1, 1, 1}, UnitScaleIfZero([3]float32{}))
	assert.Equal(t, [3]float32{2, 2, 2}, UnitScaleIfZero([3]float32{2, 2, 2}))
}

func TestLookAtTranslatesEye(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, [3]float32{0, 5, 15}, [3]float32{}, [3]float32{0, 1, 0})
	// The eye maps to the view-space origin.
	eye := [3]float32{0, 5, 15}
	for row := 0; row < 3; row++ {
		v := m[row]*eye[0] + m[4+row]*eye[1] + m[8+row]*eye[2] + m[12+row]
		assert.InDelta(t, 0, v, 1e-5)
	}
}

func TestQuatToEuler(t *testing.T) {
	assert.Equal(t, [3]float32{}, QuatToEuler([4]float32{0, 0, 0, 1}))

	// 90 degrees around Y.
	s := math32.Sin(math32.Pi / 4)
	e := QuatToEuler([4]float32{0, s, 0, s})
	assert.InDelta(t, 0, e[0], 1e-4)
	assert.InDelta(t, math32.Pi/2, e[1], 1e-3)
	assert.InDelta(t, 0, e[2], 1e-4)

	// 90 degrees around X.
	e = QuatToEuler([4]float32{s, 0, 0, s})
	assert.InDelta(t, math32.Pi/2, e[0], 1e-4)
	assert.InDelta(t, 0, e[1], 1e-4)
}

func TestEulerFromMatrixMatchesQuat(t *testing.T) {
	s := math32.Sin(math32.Pi / 8)
	c := math32.Cos(math32.Pi / 8)
	// 45 degrees around Z.
	fromQuat := QuatToEuler([4]float32{0, 0, s, c})
	fromMatrix := EulerFromMatrix([3][3]float32{
		{math32.Cos(math32.Pi / 4), -math32.Sin(math32.Pi / 4), 0},
		{math32.Sin(math32.Pi / 4), math32.Cos(math32.Pi / 4), 0},
		{0, 0, 1},
	})
	assert.InDeltaSlice(t, fromQuat[:], fromMatrix[:], 1e-5)
	assert.InDelta(t, math32.Pi/4, fromMatrix[2], 1e-5)
}
