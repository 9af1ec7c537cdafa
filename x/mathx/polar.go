package mathx

import "math"

// Unit returns cos/sin of deg degrees.
func Unit(deg float64) (c, s float64) {
	r := deg * math.Pi / 180
	return math.Cos(r), math.Sin(r)
}

// Polar returns the point at distance r along the unit vector (c, s) from
// (cx, cy).
func Polar(cx, cy, c, s, r float64) (x, y float64) {
	return cx + c*r, cy + s*r
}

// Trunc converts toward zero, matching an integer cast of a float.
func Trunc(v float64) int16 { return int16(v) }
