package animator

import (
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/Carmen-Shannon/oxy-diorama/engine/tween"
	"github.com/chewxy/math32"
)

// DriveState is the phase of a DriveLoop.
type DriveState int

const (
	DriveIdle DriveState = iota
	DriveDrivingIn
	DriveRotating
	DriveDrivingOut
	DriveHiddenWaiting
)

// String returns the state name.
func (s DriveState) String() string {
	switch s {
	case DriveIdle:
		return "Idle"
	case DriveDrivingIn:
		return "DrivingIn"
	case DriveRotating:
		return "Rotating"
	case DriveDrivingOut:
		return "DrivingOut"
	case DriveHiddenWaiting:
		return "HiddenWaiting"
	default:
		return "Unknown"
	}
}

// Reference route and timings of the island car.
var (
	DefaultDriveStart  = [3]float32{0, 0.15, -9.5}
	DefaultDriveCenter = [3]float32{0, 0.15, 0}
	DefaultDriveExit   = [3]float32{-9.5, 0.15, 0}
)

const (
	DefaultDriveInDuration  = 2000 * time.Millisecond
	DefaultRotateDuration   = 500 * time.Millisecond
	DefaultDriveOutDuration = 2000 * time.Millisecond
	DefaultHiddenDuration   = 1000 * time.Millisecond
)

// DefaultTurnAngle is the yaw reached at the end of the Rotating phase.
const DefaultTurnAngle = -math32.Pi / 2

// driveLoop is the implementation of the DriveLoop interface.
type driveLoop struct {
	scene scene.Scene
	role  scene.Role

	start, center, exit [3]float32
	turn                float32

	inDuration, rotateDuration, outDuration, hiddenDuration time.Duration

	chain tween.Chain
	node  game_object.GameObject
}

// DriveLoop moves a node through an endless four-phase trip:
//
//	Idle → DrivingIn → Rotating → DrivingOut → HiddenWaiting → DrivingIn → …
//
// DrivingIn moves the node from the start point to the centre, Rotating turns
// it in place, DrivingOut moves it to the exit and HiddenWaiting hides it,
// then restores the start pose. Only x and z are interpolated; y is kept.
// Transitions depend only on the frame deltas fed to Update, so the loop is
// exactly periodic: the state after CycleDuration equals the current state.
//
// The loop stays Idle until its node is present in the scene. The first
// Update that finds the node applies the start pose and enters DrivingIn
// without consuming that frame's delta.
type DriveLoop interface {
	Animator

	// State returns the current phase.
	//
	// Returns:
	//   - DriveState: DriveIdle until started
	State() DriveState

	// Elapsed returns the time spent in the current phase.
	Elapsed() time.Duration

	// CycleDuration returns the duration of one full trip.
	CycleDuration() time.Duration

	// Cycles returns the number of completed trips.
	Cycles() uint64
}

var _ DriveLoop = &driveLoop{}

// NewDriveLoop creates a DriveLoop for the RoleCar node of sc.
//
// Parameters:
//   - sc: the scene holding the node
//   - options: functional options for route and timing
//
// Returns:
//   - DriveLoop: the new loop
func NewDriveLoop(sc scene.Scene, options ...DriveLoopBuilderOption) DriveLoop {
	d := &driveLoop{
		scene:          sc,
		role:           scene.RoleCar,
		start:          DefaultDriveStart,
		center:         DefaultDriveCenter,
		exit:           DefaultDriveExit,
		turn:           DefaultTurnAngle,
		inDuration:     DefaultDriveInDuration,
		rotateDuration: DefaultRotateDuration,
		outDuration:    DefaultDriveOutDuration,
		hiddenDuration: DefaultHiddenDuration,
	}
	for _, opt := range options {
		opt(d)
	}

	d.chain = tween.NewChain([]tween.Phase{
		{
			Name:     DriveDrivingIn.String(),
			Duration: d.inDuration,
			Apply:    func(p float32) { d.moveXZ(d.start, d.center, p) },
		},
		{
			Name:     DriveRotating.String(),
			Duration: d.rotateDuration,
			Apply:    func(p float32) { d.node.SetYaw(common.Lerp(0, d.turn, p)) },
		},
		{
			Name:     DriveDrivingOut.String(),
			Duration: d.outDuration,
			Apply:    func(p float32) { d.moveXZ(d.center, d.exit, p) },
		},
		{
			Name:     DriveHiddenWaiting.String(),
			Duration: d.hiddenDuration,
			Enter:    func() { d.node.SetVisible(false) },
			Complete: d.resetPose,
		},
	}, tween.WithLoop(true))

	return d
}

func (d *driveLoop) Update(frame clock.Frame) {
	node, ok := d.scene.Object(d.role)
	if !ok {
		return
	}
	d.node = node

	if !d.chain.Started() {
		d.resetPose()
		d.chain.Start()
		return
	}
	d.chain.Advance(frame.Delta)
}

func (d *driveLoop) moveXZ(from, to [3]float32, p float32) {
	pos := common.Lerp3(from, to, p)
	d.node.SetPosition(pos[0], d.node.Position()[1], pos[2])
}

func (d *driveLoop) resetPose() {
	d.node.SetPosition(d.start[0], d.start[1], d.start[2])
	d.node.SetYaw(0)
	d.node.SetVisible(true)
}

func (d *driveLoop) State() DriveState {
	idx, _ := d.chain.Phase()
	if idx < 0 {
		return DriveIdle
	}
	return DriveState(idx + 1)
}

func (d *driveLoop) Elapsed() time.Duration {
	return d.chain.Elapsed()
}

func (d *driveLoop) CycleDuration() time.Duration {
	return d.chain.CycleDuration()
}

func (d *driveLoop) Cycles() uint64 {
	return d.chain.Cycles()
}
