package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneMeshLayout(t *testing.T) {
	m := NewPlaneMesh(2, 1, 2, 1, WithName("river"))

	require.Equal(t, 6, m.VertexCount())
	assert.Equal(t, "river", m.Name())

	want := []Vertex{
		{X: -1, Y: 0.5}, {X: 0, Y: 0.5}, {X: 1, Y: 0.5},
		{X: -1, Y: -0.5}, {X: 0, Y: -0.5}, {X: 1, Y: -0.5},
	}
	assert.Equal(t, want, m.Vertices())
}

func TestNewPlaneMeshRiverSize(t *testing.T) {
	m := NewPlaneMesh(2, 11.2, 5, 15)

	assert.Equal(t, 96, m.VertexCount())
	ws, hs := m.Segments()
	assert.Equal(t, 5, ws)
	assert.Equal(t, 15, hs)

	x, y := m.Planar(0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 5.6, y, 1e-5)
	x, y = m.Planar(95)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -5.6, y, 1e-5)
}

func TestNewPlaneMeshClampsSegments(t *testing.T) {
	m := NewPlaneMesh(1, 1, 0, -3)
	assert.Equal(t, 4, m.VertexCount())
}

func TestSetHeightOnlyTouchesZ(t *testing.T) {
	m := NewPlaneMesh(2, 2, 1, 1)
	before := m.Vertex(2)

	m.SetHeight(2, 0.4)

	after := m.Vertex(2)
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
	assert.Equal(t, float32(0.4), m.Height(2))
	assert.Equal(t, uint64(1), m.Revision())
}

func TestUpdateHeightsBumpsRevisionOnce(t *testing.T) {
	m := NewPlaneMesh(2, 2, 2, 2)

	m.UpdateHeights(func(i int, x, y float32) float32 {
		return x + y
	})

	assert.Equal(t, uint64(1), m.Revision())
	for i := 0; i < m.VertexCount(); i++ {
		x, y := m.Planar(i)
		assert.Equal(t, x+y, m.Height(i))
	}
}

func TestVerticesReturnsCopy(t *testing.T) {
	m := NewPlaneMesh(1, 1, 1, 1)
	vs := m.Vertices()
	vs[0].Z = 9

	assert.Equal(t, float32(0), m.Height(0))
}

func TestIndicesCoverGrid(t *testing.T) {
	m := NewPlaneMesh(2, 1, 2, 1)
	idx := m.Indices()

	assert.Len(t, idx, 12)
	for _, i := range idx {
		assert.Less(t, int(i), m.VertexCount())
	}
}
