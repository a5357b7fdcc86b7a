package renderer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	frames atomic.Uint64

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
}

// Renderer presents the diorama backdrop. Each frame clears the surface to the
// scene's current background, so the day/night palette shows up immediately.
// Geometry drawing belongs to an external render callback.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: error if the surface cannot be configured
	Resize(width, height int) error

	// RenderScene draws one frame of the given scene.
	//
	// Parameters:
	//   - s: the scene to draw
	//
	// Returns:
	//   - error: error if the frame could not be presented
	RenderScene(s scene.Scene) error

	// Frames returns the number of frames presented.
	Frames() uint64

	// Release frees the backend's GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer on the given surface and configures it for the
// initial size.
//
// Parameters:
//   - surfaceDescriptor: the platform surface, see window.Window.SurfaceDescriptor
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//   - options: functional options applied before the backend is created
//
// Returns:
//   - Renderer: the ready renderer
//   - error: error if the GPU backend cannot be initialized
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: BackendTypeWGPU,
		presentMode: PresentModeVSync,
	}
	for _, option := range options {
		option(r)
	}

	switch r.backendType {
	case BackendTypeWGPU:
		b, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter)
		if err != nil {
			return nil, err
		}
		r.backend = b
	default:
		return nil, fmt.Errorf("unknown renderer backend %d", r.backendType)
	}

	r.backend.SetPresentMode(r.presentMode)
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to configure surface: %w", err)
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Minimized windows report a zero framebuffer; keep the old swapchain.
	if width == 0 || height == 0 {
		return nil
	}
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) RenderScene(s scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.backend.ClearFrame(s.Background()); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	r.frames.Add(1)
	return nil
}

func (r *renderer) Frames() uint64 {
	return r.frames.Load()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
