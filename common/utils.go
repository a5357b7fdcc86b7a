package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// UnitScaleIfZero returns s, or (1, 1, 1) when s is the zero vector.
// Placement tables commonly omit the scale of unscaled props.
func UnitScaleIfZero(s [3]float32) [3]float32 {
	return Coalesce(s, [3]float32{1, 1, 1})
}
