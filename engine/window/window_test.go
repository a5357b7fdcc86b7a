package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureDefaults(t *testing.T) {
	w := configure()
	assert.Equal(t, "Diorama", w.title)
	assert.Equal(t, Size{Width: 1280, Height: 720}, w.size)
	assert.Equal(t, DefaultLimits, w.limits)
}

func TestConfigureClampsInitialSize(t *testing.T) {
	w := configure(
		WithTitle("Island"),
		WithSize(5000, 100),
		WithLimits(640, 480, 1920, 1080),
	)
	assert.Equal(t, "Island", w.title)
	assert.Equal(t, Size{Width: 1920, Height: 480}, w.size)
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 480, w.Height())
}

func TestLimitsNormalized(t *testing.T) {
	l := Limits{Min: Size{Width: 0, Height: 600}, Max: Size{Width: 100, Height: -1}}.normalized()
	assert.Equal(t, Limits{
		Min: Size{Width: 320, Height: 600},
		Max: Size{Width: 320, Height: 2160},
	}, l)
}

func TestLimitsClamp(t *testing.T) {
	l := Limits{Min: Size{Width: 10, Height: 10}, Max: Size{Width: 20, Height: 20}}
	assert.Equal(t, Size{Width: 15, Height: 10}, l.Clamp(Size{Width: 15, Height: 5}))
	assert.Equal(t, Size{Width: 20, Height: 20}, l.Clamp(Size{Width: 99, Height: 99}))
}

func TestEventDispatch(t *testing.T) {
	w := configure()
	var down, up []uint32
	var presses, releases int
	var resized Size

	w.SetKeyDownCallback(func(k uint32) { down = append(down, k) })
	w.SetKeyUpCallback(func(k uint32) { up = append(up, k) })
	w.SetMiddleMouseDownCallback(func(x, y int32) { presses++ })
	w.SetMiddleMouseUpCallback(func(x, y int32) { releases++ })
	w.SetResizeCallback(func(width, height int) { resized = Size{Width: width, Height: height} })

	w.key(84, true)
	w.key(84, false)
	w.key(256, false)
	w.middleButton(1, 2, true)
	w.middleButton(1, 2, false)
	w.resized(800, 600)

	assert.Equal(t, []uint32{84}, down)
	assert.Equal(t, []uint32{84, 256}, up)
	assert.Equal(t, 1, presses)
	assert.Equal(t, 1, releases)
	assert.Equal(t, Size{Width: 800, Height: 600}, resized)
	assert.Equal(t, 800, w.Width())
}

func TestEventDispatchWithoutCallbacks(t *testing.T) {
	w := configure()
	assert.NotPanics(t, func() {
		w.key(84, true)
		w.key(84, false)
		w.middleButton(0, 0, true)
		w.resized(640, 480)
	})
}

func TestUnopenedWindow(t *testing.T) {
	w := configure()
	updates := 0
	w.SetUpdateCallback(func() { updates++ })

	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.NotPanics(t, w.RequestClose)
	w.ProcessMessages(nil)
	assert.Zero(t, updates)
	assert.ErrorIs(t, w.Close(), ErrNotOpen)
}
