// SPDX-License-Identifier: MIT
// Package mathx provides small generic numeric helpers: ordering,
// clamping, interpolation and angle conversion, plus the integer
// routines in integers.go.
package mathx

import "math"

// Min returns the smaller of a and b.
func Min[T Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the closed range [lo, hi], computed as
// max(lo, min(hi, v)) so lo wins when the bounds are inverted.
func Clamp[T Ordered](v, lo, hi T) T {
	return Max(lo, Min(hi, v))
}

// Abs returns the absolute value of x.
func Abs[T Signed | Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns 1 for positive x, -1 for negative x and 0 for zero.
func Sign[T Signed | Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Lerp linearly interpolates between a and b by t. Values of t outside
// [0, 1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// InvLerp returns where v sits between a and b as a 0..1 parameter.
// Equal bounds yield 0 rather than dividing by zero.
func InvLerp[T Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// MapRange remaps v from the range [inLo, inHi] to [outLo, outHi].
func MapRange[T Float](v, inLo, inHi, outLo, outHi T) T {
	return Lerp(outLo, outHi, InvLerp(inLo, inHi, v))
}

// ToRadians converts an angle in degrees to radians.
func ToRadians[T Float](degrees T) T {
	return degrees * (math.Pi / 180)
}

// ToDegrees converts an angle in radians to degrees.
func ToDegrees[T Float](radians T) T {
	return radians * (180 / math.Pi)
}
