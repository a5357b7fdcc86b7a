package animator

import (
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
)

// WaveBuilderOption is a functional option for configuring a WaveSimulator.
type WaveBuilderOption func(*waveSimulator)

// WithWaveAmplitudes sets the sine (x) and cosine (y) amplitudes.
//
// Parameters:
//   - ampX: amplitude of the x term
//   - ampY: amplitude of the y term
//
// Returns:
//   - WaveBuilderOption: option function to apply
func WithWaveAmplitudes(ampX, ampY float32) WaveBuilderOption {
	return func(w *waveSimulator) {
		w.ampX = ampX
		w.ampY = ampY
	}
}

// WithWaveFrequency sets the spatial frequency k.
func WithWaveFrequency(k float32) WaveBuilderOption {
	return func(w *waveSimulator) {
		w.frequency = k
	}
}

// WithWaveStep sets how wave time advances per Update.
//
// Parameters:
//   - mode: StepFixed or StepDelta
//   - increment: wave time added per call in StepFixed (<= 0 keeps the default)
//   - speed: wave time added per second in StepDelta (<= 0 keeps the default)
//
// Returns:
//   - WaveBuilderOption: option function to apply
func WithWaveStep(mode StepMode, increment, speed float32) WaveBuilderOption {
	return func(w *waveSimulator) {
		w.stepper = withStep(w.stepper, mode, increment, speed)
	}
}

// OrbitBuilderOption is a functional option for configuring an OrbitAnimator.
type OrbitBuilderOption func(*orbitAnimator)

// WithOrbitRole sets the role of the node to fly.
func WithOrbitRole(role scene.Role) OrbitBuilderOption {
	return func(o *orbitAnimator) {
		o.role = role
	}
}

// WithOrbitPath sets the circle the node flies on.
//
// Parameters:
//   - radius: horizontal distance from the origin
//   - altitude: constant height
//   - lookAhead: angle ahead of the node used to compute its facing
//
// Returns:
//   - OrbitBuilderOption: option function to apply
func WithOrbitPath(radius, altitude, lookAhead float32) OrbitBuilderOption {
	return func(o *orbitAnimator) {
		o.radius = radius
		o.altitude = altitude
		o.lookAhead = lookAhead
	}
}

// WithOrbitStep sets how the orbit angle advances per Update.
//
// Parameters:
//   - mode: StepFixed or StepDelta
//   - increment: radians per call in StepFixed (<= 0 keeps the default)
//   - speed: radians per second in StepDelta (<= 0 keeps the default)
//
// Returns:
//   - OrbitBuilderOption: option function to apply
func WithOrbitStep(mode StepMode, increment, speed float32) OrbitBuilderOption {
	return func(o *orbitAnimator) {
		o.stepper = withStep(o.stepper, mode, increment, speed)
	}
}

// SpinnerBuilderOption is a functional option for configuring a Spinner.
type SpinnerBuilderOption func(*Spinner)

// WithSpinnerRole sets the role of the node to spin.
func WithSpinnerRole(role scene.Role) SpinnerBuilderOption {
	return func(s *Spinner) {
		s.role = role
	}
}

// WithSpinnerStep sets how the yaw advances per Update.
//
// Parameters:
//   - mode: StepFixed or StepDelta
//   - increment: radians per call in StepFixed (<= 0 keeps the default)
//   - speed: radians per second in StepDelta (<= 0 keeps the default)
//
// Returns:
//   - SpinnerBuilderOption: option function to apply
func WithSpinnerStep(mode StepMode, increment, speed float32) SpinnerBuilderOption {
	return func(s *Spinner) {
		s.stepper = withStep(s.stepper, mode, increment, speed)
	}
}

// ClipPlayerBuilderOption is a functional option for configuring a ClipPlayer.
type ClipPlayerBuilderOption func(*ClipPlayer)

// WithClipRole sets the role of the node whose clip is played.
func WithClipRole(role scene.Role) ClipPlayerBuilderOption {
	return func(p *ClipPlayer) {
		p.role = role
	}
}

// WithClipIndex selects which clip to play. Defaults to the first.
func WithClipIndex(i int) ClipPlayerBuilderOption {
	return func(p *ClipPlayer) {
		if i >= 0 {
			p.clip = i
		}
	}
}

// WithClipSpeed scales playback speed.
func WithClipSpeed(speed float32) ClipPlayerBuilderOption {
	return func(p *ClipPlayer) {
		p.speed = speed
	}
}

// DriveLoopBuilderOption is a functional option for configuring a DriveLoop.
type DriveLoopBuilderOption func(*driveLoop)

// WithDriveRole sets the role of the node to drive.
func WithDriveRole(role scene.Role) DriveLoopBuilderOption {
	return func(d *driveLoop) {
		d.role = role
	}
}

// WithRoute sets the three waypoints of the trip.
//
// Parameters:
//   - start: start pose position, restored after every trip
//   - center: where the node turns
//   - exit: where the node disappears
//
// Returns:
//   - DriveLoopBuilderOption: option function to apply
func WithRoute(start, center, exit [3]float32) DriveLoopBuilderOption {
	return func(d *driveLoop) {
		d.start = start
		d.center = center
		d.exit = exit
	}
}

// WithTurnAngle sets the yaw reached by the end of the Rotating phase.
func WithTurnAngle(rad float32) DriveLoopBuilderOption {
	return func(d *driveLoop) {
		d.turn = rad
	}
}

// WithDurations sets the phase durations. Non-positive values keep the defaults.
//
// Parameters:
//   - in: DrivingIn duration
//   - rotate: Rotating duration
//   - out: DrivingOut duration
//   - hidden: HiddenWaiting duration
//
// Returns:
//   - DriveLoopBuilderOption: option function to apply
func WithDurations(in, rotate, out, hidden time.Duration) DriveLoopBuilderOption {
	return func(d *driveLoop) {
		if in > 0 {
			d.inDuration = in
		}
		if rotate > 0 {
			d.rotateDuration = rotate
		}
		if out > 0 {
			d.outDuration = out
		}
		if hidden > 0 {
			d.hiddenDuration = hidden
		}
	}
}

func withStep(s stepper, mode StepMode, increment, speed float32) stepper {
	s.mode = mode
	if increment > 0 {
		s.fixed = increment
	}
	if speed > 0 {
		s.rate = speed
	}
	return s
}
