package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrNotOpen is returned by Close when the window has no platform window.
var ErrNotOpen = errors.New("window is not open")

// glfwWindow is the GLFW side of an engineWindow.
type glfwWindow struct {
	win     *glfw.Window
	closing bool
}

// openPlatformWindow creates the GLFW window for w and routes its callbacks
// into w. GLFW is initialised here and terminated by destroy.
//
// Reference: https://www.glfw.org/docs/latest/window_guide.html
func openPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU draws through its own surface; no OpenGL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.size.Width, w.size.Height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.limits.Min.Width, w.limits.Min.Height, w.limits.Max.Width, w.limits.Max.Height)

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.key(uint32(key), action != glfw.Release)
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.on.scroll != nil {
			w.on.scroll(float32(yoff))
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonMiddle {
			return
		}
		x, y := win.GetCursorPos()
		w.middleButton(int32(x), int32(y), action == glfw.Press)
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.on.mouseMove != nil {
			w.on.mouseMove(int32(x), int32(y))
		}
	})

	// Framebuffer size, not window size: on high-DPI displays they differ and
	// the renderer surface needs pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.size = Size{Width: fbWidth, Height: fbHeight}
	w.platform = &glfwWindow{win: win}
	return nil
}

// surfaceDescriptor builds the wgpu surface descriptor for the current platform.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func (g *glfwWindow) surfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) running() bool {
	return !g.closing && !g.win.ShouldClose()
}

func (g *glfwWindow) requestClose() {
	g.closing = true
	g.win.SetShouldClose(true)
}

// poll processes pending events without blocking.
//
// Returns:
//   - bool: false once a close was requested
func (g *glfwWindow) poll() bool {
	glfw.PollEvents()
	return g.running()
}

func (g *glfwWindow) destroy() {
	g.requestClose()
	g.win.Destroy()
	glfw.Terminate()
}
