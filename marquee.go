package marquee

import "math"

// Vec2 is a 2D vector used for path positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Axis selects one coordinate of a Vec2.
type Axis uint8

const (
	AxisY Axis = iota // vertical (default)
	AxisX             // horizontal
)

// Of returns the component of v along the axis.
func (a Axis) Of(v Vec2) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// wrap maps v into [0, n) for integer indices.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// wrapFloat maps v into [0, d).
func wrapFloat(v, d float64) float64 {
	v = math.Mod(v, d)
	if v < 0 {
		v += d
		if v >= d {
			v = 0
		}
	}
	return v
}

// snapper returns a function rounding to the nearest multiple of step.
// A non-positive step disables snapping.
func snapper(step float64) func(float64) float64 {
	if step <= 0 {
		return func(v float64) float64 { return v }
	}
	return func(v float64) float64 {
		return math.Round(v/step) * step
	}
}
