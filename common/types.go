// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// Color is a linear RGB triple with components in [0, 1].
type Color [3]float32

// ColorFromHex converts a packed 0xRRGGBB value into a Color.
//
// Parameters:
//   - hex: the packed color, e.g. 0xB2DDF7
//
// Returns:
//   - Color: the unpacked color
func ColorFromHex(hex uint32) Color {
	return Color{
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
	}
}

// Hex packs the color back into 0xRRGGBB, rounding each channel.
func (c Color) Hex() uint32 {
	var out uint32
	for _, ch := range c {
		v := Clamp01(ch)*255 + 0.5
		out = out<<8 | uint32(v)
	}
	return out
}

// String renders the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", c.Hex())
}

// Transform is a plain position / Euler rotation / scale triple used to describe
// placements before a node exists.
type Transform struct {
	// Position in world space.
	Position [3]float32
	// Rotation as Euler angles in radians (X, Y, Z).
	Rotation [3]float32
	// Scale along each axis.
	Scale [3]float32
}
