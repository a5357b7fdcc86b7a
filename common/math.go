package common

import (
	"github.com/chewxy/math32"
)

// Lerp linearly interpolates between a and b.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor, not clamped
//
// Returns:
//   - float32: a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp3 linearly interpolates each component of two vectors.
//
// Parameters:
//   - a: vector at t = 0
//   - b: vector at t = 1
//   - t: interpolation factor, not clamped
//
// Returns:
//   - [3]float32: the interpolated vector
func Lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Clamp01 clamps t into [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// YawTowards returns the rotation around the Y axis that turns a node at from so
// that its local +Z axis faces to. Only the horizontal (XZ) offset is considered.
// Returns 0 when both points share the same XZ coordinates.
//
// Parameters:
//   - from: the node position
//   - to: the point to face
//
// Returns:
//   - float32: yaw in radians
func YawTowards(from, to [3]float32) float32 {
	dx := to[0] - from[0]
	dz := to[2] - from[2]
	if dx == 0 && dz == 0 {
		return 0
	}
	return math32.Atan2(dx, dz)
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// LookAt creates a view matrix that positions and orients an eye.
// The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: eye position in world space
//   - center: target point the eye looks at
//   - up: up vector defining orientation (typically 0,1,0)
func LookAt(out []float32, eye, center, up [3]float32) {
	z0 := eye[0] - center[0]
	z1 := eye[1] - center[1]
	z2 := eye[2] - center[2]
	l := math32.Sqrt(z0*z0 + z1*z1 + z2*z2)
	if l == 0 {
		l = 1
	}
	z0, z1, z2 = z0/l, z1/l, z2/l

	x0 := up[1]*z2 - up[2]*z1
	x1 := up[2]*z0 - up[0]*z2
	x2 := up[0]*z1 - up[1]*z0
	l = math32.Sqrt(x0*x0 + x1*x1 + x2*x2)
	if l == 0 {
		l = 1
	}
	x0, x1, x2 = x0/l, x1/l, x2/l

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eye[0] + x1*eye[1] + x2*eye[2])
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eye[0] + y1*eye[1] + y2*eye[2])
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eye[0] + z1*eye[1] + z2*eye[2])
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// QuatToEuler converts a unit quaternion into XYZ-order Euler angles.
// Near gimbal lock the Z angle is pinned to 0.
//
// Parameters:
//   - q: quaternion as (x, y, z, w)
//
// Returns:
//   - [3]float32: rotation around X, Y and Z in radians
func QuatToEuler(q [4]float32) [3]float32 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return EulerFromMatrix([3][3]float32{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	})
}

// EulerFromMatrix extracts XYZ-order Euler angles from a pure rotation matrix
// indexed [row][col]. Near gimbal lock the Z angle is pinned to 0.
func EulerFromMatrix(r [3][3]float32) [3]float32 {
	m13 := math32.Max(-1, math32.Min(1, r[0][2]))
	out := [3]float32{0, math32.Asin(m13), 0}
	if math32.Abs(m13) < 0.9999999 {
		out[0] = math32.Atan2(-r[1][2], r[2][2])
		out[2] = math32.Atan2(-r[0][1], r[0][0])
	} else {
		out[0] = math32.Atan2(r[2][1], r[1][1])
	}
	return out
}

// Mul4 multiplies two column-major 4x4 matrices: out = a * b.
// out may alias a or b.
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a right-handed perspective projection matrix mapping depth
// into the WebGPU clip range [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1 / math32.Tan(fovY/2)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = (near * far) / (near - far)
	out[15] = 0
}
