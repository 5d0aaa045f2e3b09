// Package polar implements two-dimensional vectors in polar form.
//
// Angles are stored in radians. Constructors reduce the angle with a signed
// remainder (math.Mod), so a freshly built vector has an angle in (-2π, 2π)
// with the sign of the input. Arithmetic results take their angle from
// Angle, which lies in [0, 2π]. Magnitude is never validated: a negative
// magnitude points the opposite way of its angle.
package polar

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Vector is a 2D vector in polar form. The zero value is Zero().
type Vector struct {
	Magnitude float64
	Angle     float64 // radians
}

// FromDegrees creates a Vector from a magnitude and an angle in degrees.
func FromDegrees(m, d float64) Vector {
	return Vector{m, math.Mod(d*(math.Pi/180), twoPi)}
}

// FromRadians creates a Vector from a magnitude and an angle in radians.
func FromRadians(m, r float64) Vector {
	return Vector{m, math.Mod(r, twoPi)}
}

// Zero returns the zero vector.
func Zero() Vector {
	return FromRadians(0, 0)
}

// Recip returns the vector pointing the opposite way.
// The angle is advanced by π and not reduced.
func (v Vector) Recip() Vector {
	return Vector{v.Magnitude, v.Angle + math.Pi}
}

// XComponent returns the projection onto the x-axis as a vector
// at angle 0 or π.
func (v Vector) XComponent() Vector {
	x := v.Magnitude * math.Cos(v.Angle)
	if math.Signbit(x) {
		return Vector{math.Abs(x), math.Pi}
	}
	return Vector{math.Abs(x), 0}
}

// YComponent returns the projection onto the y-axis as a vector
// at angle π/2 or 3π/2.
func (v Vector) YComponent() Vector {
	y := v.Magnitude * math.Sin(v.Angle)
	if math.Signbit(y) {
		return Vector{math.Abs(y), 3 * math.Pi / 2}
	}
	return Vector{math.Abs(y), math.Pi / 2}
}

// Components returns the x and y components.
func (v Vector) Components() (x, y Vector) {
	return v.XComponent(), v.YComponent()
}

// Cartesian returns the point the vector reaches from the origin.
func (v Vector) Cartesian() Point {
	return Point{v.Magnitude * math.Cos(v.Angle), v.Magnitude * math.Sin(v.Angle)}
}

// Add returns the vector sum v + b.
func (v Vector) Add(b Vector) Vector {
	return v.Cartesian().Add(b.Cartesian()).Polar()
}

// Sub returns the vector difference v - b.
func (v Vector) Sub(b Vector) Vector {
	return v.Add(b.Recip())
}

// AddAssign sets v to v + b.
func (v *Vector) AddAssign(b Vector) {
	*v = v.Add(b)
}

// SubAssign sets v to v - b.
func (v *Vector) SubAssign(b Vector) {
	*v = v.Sub(b)
}

// Degrees returns the angle in degrees.
func (v Vector) Degrees() float64 {
	return v.Angle * (180 / math.Pi)
}

// Equal reports whether both fields match exactly.
// Same as v == b; NaN fields never compare equal.
func (v Vector) Equal(b Vector) bool {
	return v == b
}

// ApproxEqual reports whether both fields are within eps of b's.
// It compares representations, not directions: an angle and the same
// angle plus 2π are not approximately equal.
func (v Vector) ApproxEqual(b Vector, eps float64) bool {
	return math.Abs(v.Magnitude-b.Magnitude) <= eps && math.Abs(v.Angle-b.Angle) <= eps
}

func (v Vector) String() string {
	return fmt.Sprintf("%g∠%grad", v.Magnitude, v.Angle)
}
