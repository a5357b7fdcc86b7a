package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Orbit methods modify spherical coordinates and recompute position; planar
// methods translate both position and target along local camera axes.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32
	eye      *[3]float32

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Orbit speed settings
	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32

	// Damping state
	damping           float32
	azimuthVelocity   float32
	elevationVelocity float32
	radiusVelocity    float32
}

// DefaultEyePosition is the camera position a new controller starts from.
var DefaultEyePosition = [3]float32{0, 5, 15}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller looking at the origin from
// (0, 5, 15) with damping enabled.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		minRadius:    2,
		maxRadius:    60,
		minElevation: 0.05,
		maxElevation: math32.Pi/2 - 0.1,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        1,
		panSpeed:         0.05,

		damping: 0.05,
	}
	cc.sphericalFrom(DefaultEyePosition)

	for _, option := range options {
		option(cc)
	}

	if cc.eye != nil {
		cc.sphericalFrom(*cc.eye)
	}
	cc.clamp()
	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// sphericalFrom derives radius, azimuth and elevation from a world-space eye position.
func (cc *cameraControllerImpl) sphericalFrom(eye [3]float32) {
	dx := eye[0] - cc.target[0]
	dy := eye[1] - cc.target[1]
	dz := eye[2] - cc.target[2]
	cc.radius = math32.Sqrt(dx*dx + dy*dy + dz*dz)
	cc.azimuth = math32.Atan2(dx, dz)
	cc.elevation = math32.Atan2(dy, math32.Hypot(dx, dz))
}

// clamp keeps radius and elevation inside their bounds. Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	cc.radius = math32.Max(cc.minRadius, math32.Min(cc.maxRadius, cc.radius))
	cc.elevation = math32.Max(cc.minElevation, math32.Min(cc.maxElevation, cc.elevation))
}

// updatePosition recomputes the camera position from spherical coordinates.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	sinElev, cosElev := math32.Sincos(cc.elevation)
	sinAzim, cosAzim := math32.Sincos(cc.azimuth)

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

// nudge routes an input change either into the velocities (damped) or straight
// into the spherical coordinates. Caller must hold the mutex.
func (cc *cameraControllerImpl) nudge(dAzimuth, dElevation, dRadius float32) {
	if cc.damping > 0 {
		cc.azimuthVelocity += dAzimuth
		cc.elevationVelocity += dElevation
		cc.radiusVelocity += dRadius
		return
	}
	cc.azimuth += dAzimuth
	cc.elevation += dElevation
	cc.radius += dRadius
	cc.clamp()
	cc.updatePosition()
}

// localAxes returns the camera's right and up vectors, consistent with the LookAt matrix.
// If position and target coincide, all returned components are zero.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (right, up [3]float32) {
	bx := cc.position[0] - cc.target[0]
	by := cc.position[1] - cc.target[1]
	bz := cc.position[2] - cc.target[2]
	bLen := math32.Sqrt(bx*bx + by*by + bz*bz)
	if bLen < 1e-8 {
		return
	}
	bx, by, bz = bx/bLen, by/bLen, bz/bLen

	// right = normalize(cross(worldUp, backward)) where worldUp = (0, 1, 0)
	rLen := math32.Hypot(bz, bx)
	if rLen < 1e-8 {
		return
	}
	right = [3]float32{bz / rLen, 0, -bx / rLen}

	// up = cross(backward, right)
	up = [3]float32{
		by * right[2],
		bz*right[0] - bx*right[2],
		-by * right[0],
	}
	return right, up
}

func (cc *cameraControllerImpl) pan(axis [3]float32, delta float32) {
	offset := delta * cc.panSpeed
	for i := range 3 {
		cc.target[i] += axis[i] * offset
		cc.position[i] += axis[i] * offset
	}
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() [3]float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) Target() [3]float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.nudge(0, 0, -delta*cc.zoomSpeed)
}

func (cc *cameraControllerImpl) Update() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.damping <= 0 {
		return
	}

	cc.azimuth += cc.azimuthVelocity * cc.damping
	cc.elevation += cc.elevationVelocity * cc.damping
	cc.radius += cc.radiusVelocity * cc.damping
	cc.clamp()
	cc.updatePosition()

	decay := 1 - cc.damping
	cc.azimuthVelocity *= decay
	cc.elevationVelocity *= decay
	cc.radiusVelocity *= decay
}

func (cc *cameraControllerImpl) Damping() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.damping
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) Rotate(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.nudge(-dx*cc.mouseSensitivity, dy*cc.mouseSensitivity, 0)
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.nudge(-cc.orbitSpeed, 0, 0)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.nudge(cc.orbitSpeed, 0, 0)
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = elevation
	cc.clamp()
	cc.updatePosition()
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) PanRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	right, _ := cc.localAxes()
	cc.pan(right, delta)
}

func (cc *cameraControllerImpl) PanUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, up := cc.localAxes()
	cc.pan(up, delta)
}
