package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOrbiter struct {
	rotations [][2]float32
	zooms     []float32
}

func (r *recordingOrbiter) Rotate(dx, dy float32) { r.rotations = append(r.rotations, [2]float32{dx, dy}) }
func (r *recordingOrbiter) Zoom(delta float32) { r.zooms = append(r.zooms, delta) }

type fakeSource struct {
	scroll    func(float32)
	keyDown   func(uint32)
	keyUp     func(uint32)
	midDown   func(int32, int32)
	midUp     func(int32, int32)
	mouseMove func(int32, int32)
}

func (f *fakeSource) SetScrollCallback(cb func(float32)) { f.scroll = cb }
func (f *fakeSource) SetKeyDownCallback(cb func(uint32)) { f.keyDown = cb }
func (f *fakeSource) SetKeyUpCallback(cb func(uint32)) { f.keyUp = cb }
func (f *fakeSource) SetMiddleMouseDownCallback(cb func(x, y int32)) { f.midDown = cb }
func (f *fakeSource) SetMiddleMouseUpCallback(cb func(x, y int32)) { f.midUp = cb }
func (f *fakeSource) SetMouseMoveCallback(cb func(x, y int32)) { f.mouseMove = cb }

func TestMiddleDragOrbits(t *testing.T) {
	orb := &recordingOrbiter{}
	c := NewControls(orb)
	src := &fakeSource{}
	c.Attach(src)
	require.NotNil(t, src.mouseMove)

	// Moves without the button held are ignored.
	src.mouseMove(10, 10)
	assert.Empty(t, orb.rotations)

	src.midDown(100, 100)
	assert.True(t, c.Dragging())
	src.mouseMove(110, 95)
	src.mouseMove(110, 95)
	src.mouseMove(105, 100)
	src.midUp(105, 100)
	src.mouseMove(200, 200)

	assert.Equal(t, [][2]float32{{10, -5}, {-5, 5}}, orb.rotations)
	assert.False(t, c.Dragging())
}

func TestScrollZooms(t *testing.T) {
	orb := &recordingOrbiter{}
	c := NewControls(orb)
	c.Scroll(1)
	c.Scroll(-2)
	assert.Equal(t, []float32{1, -2}, orb.zooms)
}

func TestKeyBindings(t *testing.T) {
	c := NewControls(nil)
	toggles := 0
	c.Bind(common.KeyT, func() { toggles++ })

	c.KeyDown(common.KeyT)
	c.KeyDown(common.KeySpace)
	assert.Equal(t, 1, toggles)

	c.Bind(common.KeyT, nil)
	c.KeyDown(common.KeyT)
	assert.Equal(t, 1, toggles)

	// Mouse input without an orbiter is a no-op.
	c.MiddleDown(0, 0)
	assert.NotPanics(t, func() { c.MouseMove(5, 5) })
	assert.NotPanics(t, func() { c.Scroll(1) })
}

func TestKeyUpBindingsThroughSource(t *testing.T) {
	c := NewControls(nil)
	src := &fakeSource{}
	c.Attach(src)
	require.NotNil(t, src.keyUp)

	var events []string
	c.Bind(common.KeyT, func() { events = append(events, "toggle") })
	c.BindUp(common.KeyEsc, func() { events = append(events, "close") })

	src.keyDown(common.KeyEsc)
	src.keyDown(common.KeyT)
	src.keyUp(common.KeyT)
	assert.Equal(t, []string{"toggle"}, events)

	src.keyUp(common.KeyEsc)
	assert.Equal(t, []string{"toggle", "close"}, events)

	c.BindUp(common.KeyEsc, nil)
	src.keyUp(common.KeyEsc)
	assert.Len(t, events, 2)
}
