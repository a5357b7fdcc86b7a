package animator

import (
	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/chewxy/math32"
)

const (
	DefaultOrbitRadius    float32 = 6
	DefaultOrbitAltitude  float32 = 9
	DefaultOrbitLookAhead float32 = 0.1
	DefaultOrbitIncrement float32 = 0.01
	DefaultOrbitSpeed     float32 = 0.6 // rad/s, DefaultOrbitIncrement at 60 FPS
)

// orbitAnimator is the implementation of the OrbitAnimator interface.
type orbitAnimator struct {
	scene     scene.Scene
	role      scene.Role
	radius    float32
	altitude  float32
	lookAhead float32
	stepper   stepper
	angle     float32
}

// OrbitAnimator flies a node on a horizontal circle around the origin.
//
// Position and facing are pure functions of the orbit angle: the node sits at
// (r·cos θ, altitude, r·sin θ) and its yaw points its local +Z axis at the
// look-ahead point on the circle at θ+ε.
type OrbitAnimator interface {
	Animator

	// Advance adds increment to the orbit angle and poses the node. When the
	// node is absent nothing happens and the angle is left unchanged.
	//
	// Parameters:
	//   - increment: angle to add in radians
	Advance(increment float32)

	// Angle returns the current orbit angle in radians.
	Angle() float32

	// PoseAt returns the position and yaw for an orbit angle without touching the node.
	//
	// Parameters:
	//   - angle: orbit angle in radians
	//
	// Returns:
	//   - [3]float32: the position on the circle
	//   - float32: the yaw in radians
	PoseAt(angle float32) ([3]float32, float32)
}

var _ OrbitAnimator = &orbitAnimator{}

// NewOrbitAnimator creates an OrbitAnimator for the RolePlane node of sc.
//
// Parameters:
//   - sc: the scene holding the node
//   - options: functional options for orbit configuration
//
// Returns:
//   - OrbitAnimator: the new animator
func NewOrbitAnimator(sc scene.Scene, options ...OrbitBuilderOption) OrbitAnimator {
	o := &orbitAnimator{
		scene:     sc,
		role:      scene.RolePlane,
		radius:    DefaultOrbitRadius,
		altitude:  DefaultOrbitAltitude,
		lookAhead: DefaultOrbitLookAhead,
		stepper: stepper{
			mode:  StepFixed,
			fixed: DefaultOrbitIncrement,
			rate:  DefaultOrbitSpeed,
		},
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

func (o *orbitAnimator) Update(frame clock.Frame) {
	o.Advance(o.stepper.step(frame))
}

func (o *orbitAnimator) Advance(increment float32) {
	node, ok := o.scene.Object(o.role)
	if !ok {
		return
	}
	o.angle += increment
	pos, yaw := o.PoseAt(o.angle)
	node.SetPosition(pos[0], pos[1], pos[2])
	node.SetYaw(yaw)
}

func (o *orbitAnimator) Angle() float32 {
	return o.angle
}

func (o *orbitAnimator) PoseAt(angle float32) ([3]float32, float32) {
	pos := o.pointAt(angle)
	return pos, common.YawTowards(pos, o.pointAt(angle+o.lookAhead))
}

func (o *orbitAnimator) pointAt(angle float32) [3]float32 {
	s, c := math32.Sincos(angle)
	return [3]float32{c * o.radius, o.altitude, s * o.radius}
}
