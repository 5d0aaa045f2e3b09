package polar

import "math"

// Angle returns the direction of (x, y) in radians, in [0, 2π].
//
// The quadrant is picked from the sign bits of x and y, so +0 counts as
// positive and -0 as negative. On the positive x-axis this gives 0 for
// y = +0 but 2π for y = -0. Division by a zero x yields ±Inf, whose
// arctangent is ±π/2, which puts on-axis vectors where they belong.
// Angle(0, 0) is NaN.
func Angle(x, y float64) float64 {
	t := math.Atan(y / x)
	switch xneg, yneg := math.Signbit(x), math.Signbit(y); {
	case !xneg && !yneg:
		return t
	case xneg:
		return t + math.Pi
	default:
		return t + twoPi
	}
}
