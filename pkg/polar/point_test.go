package polar

import (
	"math"
	"testing"
)

func TestPointPolar(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Vector
	}{
		{"3-4-5", P(3, 4), Vector{5, math.Atan(4.0 / 3.0)}},
		{"-x", P(-2, 0), Vector{2, math.Pi}},
		{"+x", P(7, 0), Vector{7, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Polar()
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("%v.Polar() = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointRoundTrip(t *testing.T) {
	p := P(-1.25, 3.5)
	got := p.Polar().Cartesian()
	if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestPointAddLen(t *testing.T) {
	got := P(1, 2).Add(P(2, 2))
	if got != P(3, 4) {
		t.Errorf("Add = %v, want (3, 4)", got)
	}
	if got.Len() != 5 {
		t.Errorf("Len = %v, want 5", got.Len())
	}
}
