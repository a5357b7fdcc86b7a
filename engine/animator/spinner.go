package animator

import (
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
)

const (
	DefaultSpinIncrement float32 = 0.01
	DefaultSpinSpeed     float32 = 0.6
)

// Spinner turns a node about its vertical axis, like the playground carousel.
type Spinner struct {
	scene   scene.Scene
	role    scene.Role
	stepper stepper
}

var _ Animator = &Spinner{}

// NewSpinner creates a Spinner for the RoleCarousel node of sc.
//
// Parameters:
//   - sc: the scene holding the node
//   - options: functional options for spinner configuration
//
// Returns:
//   - *Spinner: the new spinner
func NewSpinner(sc scene.Scene, options ...SpinnerBuilderOption) *Spinner {
	s := &Spinner{
		scene: sc,
		role:  scene.RoleCarousel,
		stepper: stepper{
			mode:  StepFixed,
			fixed: DefaultSpinIncrement,
			rate:  DefaultSpinSpeed,
		},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Update adds one step to the node's yaw. No-op while the node is absent.
func (s *Spinner) Update(frame clock.Frame) {
	node, ok := s.scene.Object(s.role)
	if !ok {
		return
	}
	node.SetYaw(node.Rotation()[1] + s.stepper.step(frame))
}
