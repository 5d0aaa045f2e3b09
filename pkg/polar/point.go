package polar

import "math"

// Point is a Cartesian coordinate pair.
type Point struct {
	X, Y float64
}

// P creates a new Point.
func P(x, y float64) Point {
	return Point{x, y}
}

// Add returns the component-wise sum a + b.
func (a Point) Add(b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

// Len returns the distance from the origin.
func (a Point) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Polar converts the point to a Vector. The angle comes from Angle
// and is not reduced further.
func (a Point) Polar() Vector {
	return Vector{a.Len(), Angle(a.X, a.Y)}
}
