package scene

import (
	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithBackground sets the initial clear color.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(c common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.background = c
	}
}

// WithMainLight sets the directional key light.
//
// Parameters:
//   - l: the main light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMainLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.mainLight = l
	}
}

// WithAmbientLight sets the uniform fill light.
//
// Parameters:
//   - l: the ambient light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.ambientLight = l
	}
}

// WithStreetLights adds lights to the street light set.
//
// Parameters:
//   - lights: the street lamp lights
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStreetLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			s.streetLights.Add(l)
		}
	}
}
