package renderer

import "github.com/Carmen-Shannon/oxy-diorama/common"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the GPU API the Renderer drives.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain for the given pixel size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	//
	// Returns:
	//   - error: error if the surface cannot be configured
	ConfigureSurface(width, height int) error

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// ClearFrame acquires the next surface image, clears it to color and presents it.
	//
	// Parameters:
	//   - color: the linear RGB clear color
	//
	// Returns:
	//   - error: error if the frame could not be acquired or submitted
	ClearFrame(color common.Color) error

	// Release frees every GPU object held by the backend.
	Release()
}
