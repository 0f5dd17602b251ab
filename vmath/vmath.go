package vmath

import "math"

// Clamp limits v to [lo, hi]
// lo wins when the range is inverted, matching max(lo, min(v, hi))
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampInt limits v to [lo, hi], lo wins on inverted range
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// CopySign returns magnitude |mag| with the sign of sign
// Signed zero is honored: CopySign(x, +0) is positive, CopySign(x, -0) negative
func CopySign(mag, sign float64) float64 {
	return math.Copysign(mag, sign)
}

// SignInt returns -1, 0 or 1
func SignInt(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Round snaps a float coordinate to the integer cell grid
// Half values round to even so that symmetric bodies land on stable cells
func Round(f float64) int {
	return int(math.RoundToEven(f))
}
