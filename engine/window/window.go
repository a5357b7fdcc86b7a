// Package window hosts the diorama in a GLFW window and forwards its input
// events to whoever registered for them.
package window

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Size is a client area size in pixels.
type Size struct {
	Width  int
	Height int
}

// Limits bounds the client area while the user resizes the window.
type Limits struct {
	Min Size
	Max Size
}

// DefaultLimits are applied when no limits are configured.
var DefaultLimits = Limits{
	Min: Size{Width: 320, Height: 240},
	Max: Size{Width: 3840, Height: 2160},
}

// normalized returns l with non-positive bounds replaced by the defaults and
// the maximum raised to the minimum where they cross.
func (l Limits) normalized() Limits {
	if l.Min.Width <= 0 {
		l.Min.Width = DefaultLimits.Min.Width
	}
	if l.Min.Height <= 0 {
		l.Min.Height = DefaultLimits.Min.Height
	}
	if l.Max.Width <= 0 {
		l.Max.Width = DefaultLimits.Max.Width
	}
	if l.Max.Height <= 0 {
		l.Max.Height = DefaultLimits.Max.Height
	}
	l.Max.Width = max(l.Max.Width, l.Min.Width)
	l.Max.Height = max(l.Max.Height, l.Min.Height)
	return l
}

// Clamp constrains s to the limits.
//
// Parameters:
//   - s: the requested size
//
// Returns:
//   - Size: s with each dimension clamped to [Min, Max]
func (l Limits) Clamp(s Size) Size {
	return Size{
		Width:  min(max(s.Width, l.Min.Width), l.Max.Width),
		Height: min(max(s.Height, l.Min.Height), l.Max.Height),
	}
}

// Window is the diorama's host window. It owns the message loop the engine
// runs frames on and delivers mouse and keyboard input through callbacks.
// All methods must be called from the goroutine that created the window.
type Window interface {
	// SetUpdateCallback sets the function called once per message loop iteration.
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called with the new framebuffer size
	// after a resize.
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for vertical scroll; positive is up.
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key presses and repeats.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key releases.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMiddleMouseDownCallback sets the callback for middle button presses.
	SetMiddleMouseDownCallback(callback func(x, y int32))

	// SetMiddleMouseUpCallback sets the callback for middle button releases.
	SetMiddleMouseUpCallback(callback func(x, y int32))

	// SetMouseMoveCallback sets the callback for cursor movement.
	SetMouseMoveCallback(callback func(x, y int32))

	// SurfaceDescriptor returns the platform surface the renderer draws into.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil once the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open and no close was requested.
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	// Unlike Close it is safe to call from an input callback.
	RequestClose()

	// Close destroys the window and releases the platform.
	//
	// Returns:
	//   - error: ErrNotOpen if the window was already closed
	Close() error

	// ProcessMessages polls events and calls the update callback until the
	// window stops running or done is closed.
	//
	// Parameters:
	//   - done: closing it ends the loop, may be nil
	ProcessMessages(done <-chan struct{})

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// events holds the registered input callbacks. Nil entries are skipped.
type events struct {
	update    func()
	resize    func(width, height int)
	scroll    func(delta float32)
	keyDown   func(keyCode uint32)
	keyUp     func(keyCode uint32)
	middleDn  func(x, y int32)
	middleUp  func(x, y int32)
	mouseMove func(x, y int32)
}

// engineWindow implements Window on top of a platform window.
type engineWindow struct {
	title  string
	size   Size
	limits Limits
	on     events

	platform *glfwWindow
}

var _ Window = &engineWindow{}

// configure applies options over the defaults and fits the initial size into
// the limits.
func configure(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:  "Diorama",
		size:   Size{Width: 1280, Height: 720},
		limits: DefaultLimits,
	}
	for _, opt := range options {
		opt(w)
	}
	w.limits = w.limits.normalized()
	w.size = w.limits.Clamp(w.size)
	return w
}

// NewWindow opens and shows a window. Must be called from the main goroutine;
// the calling OS thread stays locked to it.
//
// Parameters:
//   - options: functional options for title, size and limits
//
// Returns:
//   - Window: the open window
//   - error: error if the platform window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := configure(options...)
	if err := openPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.on.update = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.on.resize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.on.scroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.on.keyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.on.keyUp = callback
}

func (w *engineWindow) SetMiddleMouseDownCallback(callback func(x, y int32)) {
	w.on.middleDn = callback
}

func (w *engineWindow) SetMiddleMouseUpCallback(callback func(x, y int32)) {
	w.on.middleUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.on.mouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if w.platform == nil {
		return nil
	}
	return w.platform.surfaceDescriptor()
}

func (w *engineWindow) IsRunning() bool {
	return w.platform != nil && w.platform.running()
}

func (w *engineWindow) RequestClose() {
	if w.platform != nil {
		w.platform.requestClose()
	}
}

func (w *engineWindow) Close() error {
	if w.platform == nil {
		return ErrNotOpen
	}
	w.platform.destroy()
	w.platform = nil
	return nil
}

func (w *engineWindow) ProcessMessages(done <-chan struct{}) {
	for w.IsRunning() {
		select {
		case <-done:
			return
		default:
		}

		if !w.platform.poll() {
			return
		}
		if w.on.update != nil {
			w.on.update()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.size.Width
}

func (w *engineWindow) Height() int {
	return w.size.Height
}

// resized records a framebuffer size change and notifies the resize callback.
func (w *engineWindow) resized(width, height int) {
	w.size = Size{Width: width, Height: height}
	if w.on.resize != nil {
		w.on.resize(width, height)
	}
}

// key dispatches a key event to the down or up callback.
func (w *engineWindow) key(keyCode uint32, pressed bool) {
	cb := w.on.keyUp
	if pressed {
		cb = w.on.keyDown
	}
	if cb != nil {
		cb(keyCode)
	}
}

// middleButton dispatches a middle button event at the cursor position.
func (w *engineWindow) middleButton(x, y int32, pressed bool) {
	cb := w.on.middleUp
	if pressed {
		cb = w.on.middleDn
	}
	if cb != nil {
		cb(x, y)
	}
}
