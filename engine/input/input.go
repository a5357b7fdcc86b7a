// Package input routes window events to the orbit camera and key bindings.
package input

import (
	"sync"
)

// Source is the part of a window that delivers input events.
type Source interface {
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetMiddleMouseDownCallback(callback func(x, y int32))
	SetMiddleMouseUpCallback(callback func(x, y int32))
	SetMouseMoveCallback(callback func(x, y int32))
}

// Orbiter receives camera orbit and zoom requests.
type Orbiter interface {
	Rotate(dx, dy float32)
	Zoom(delta float32)
}

// Controls translates middle-drag into orbit, scroll into zoom and key
// presses or releases into bound actions.
type Controls struct {
	mu       sync.Mutex
	orbiter  Orbiter
	bindings map[uint32]func()
	released map[uint32]func()
	dragging bool
	lastX    int32
	lastY    int32
}

// NewControls creates Controls driving the given orbiter, which may be nil.
//
// Parameters:
//   - orbiter: the camera controller to feed, or nil to ignore mouse input
//
// Returns:
//   - *Controls: the new controls with no key bindings
func NewControls(orbiter Orbiter) *Controls {
	return &Controls{
		orbiter:  orbiter,
		bindings: make(map[uint32]func()),
		released: make(map[uint32]func()),
	}
}

// Bind runs action whenever keyCode is pressed. A nil action removes the binding.
//
// Parameters:
//   - keyCode: the virtual key code, see common.Key*
//   - action: the function to run on key down
func (c *Controls) Bind(keyCode uint32, action func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if action == nil {
		delete(c.bindings, keyCode)
		return
	}
	c.bindings[keyCode] = action
}

// BindUp runs action whenever keyCode is released. A nil action removes the binding.
func (c *Controls) BindUp(keyCode uint32, action func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if action == nil {
		delete(c.released, keyCode)
		return
	}
	c.released[keyCode] = action
}

// Attach registers the controls' handlers on src.
func (c *Controls) Attach(src Source) {
	src.SetKeyDownCallback(c.KeyDown)
	src.SetKeyUpCallback(c.KeyUp)
	src.SetScrollCallback(c.Scroll)
	src.SetMiddleMouseDownCallback(c.MiddleDown)
	src.SetMiddleMouseUpCallback(c.MiddleUp)
	src.SetMouseMoveCallback(c.MouseMove)
}

// KeyDown runs the action bound to keyCode, if any.
func (c *Controls) KeyDown(keyCode uint32) {
	c.mu.Lock()
	action := c.bindings[keyCode]
	c.mu.Unlock()
	if action != nil {
		action()
	}
}

// KeyUp runs the release action bound to keyCode, if any.
func (c *Controls) KeyUp(keyCode uint32) {
	c.mu.Lock()
	action := c.released[keyCode]
	c.mu.Unlock()
	if action != nil {
		action()
	}
}

// Scroll zooms the orbiter; positive delta zooms in.
func (c *Controls) Scroll(delta float32) {
	if c.orbiter != nil {
		c.orbiter.Zoom(delta)
	}
}

// MiddleDown starts a drag at (x, y).
func (c *Controls) MiddleDown(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// MiddleUp ends the current drag.
func (c *Controls) MiddleUp(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = false
}

// MouseMove orbits by the cursor movement since the last event while dragging.
func (c *Controls) MouseMove(x, y int32) {
	c.mu.Lock()
	if !c.dragging {
		c.mu.Unlock()
		return
	}
	dx, dy := float32(x-c.lastX), float32(y-c.lastY)
	c.lastX, c.lastY = x, y
	c.mu.Unlock()

	if c.orbiter != nil && (dx != 0 || dy != 0) {
		c.orbiter.Rotate(dx, dy)
	}
}

// Dragging reports whether a middle-button drag is in progress.
func (c *Controls) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}
