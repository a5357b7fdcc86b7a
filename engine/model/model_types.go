package model

// Vertex is a single mesh vertex. X and Y are fixed planar coordinates in the
// mesh's local plane; Z is the mutable height above that plane.
type Vertex struct {
	X, Y, Z float32
}

// HeightFunc computes a new height for the vertex at index i with planar coordinates (x, y).
type HeightFunc func(i int, x, y float32) float32
