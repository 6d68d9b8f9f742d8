package marquee

import (
	"math"
	"sort"
)

// Path is a 2D curve sampleable at any parameter t in [0, 1]. The parameter
// need not be proportional to distance; PathEase measures arc length itself.
type Path interface {
	At(t float64) Vec2
}

// Segmented is implemented by paths made of several pieces. Measurement
// resolution scales with the segment count.
type Segmented interface {
	Segments() int
}

// PathFunc adapts a function to the Path interface.
type PathFunc func(t float64) Vec2

// At calls f(t).
func (f PathFunc) At(t float64) Vec2 { return f(t) }

// LinePath is a polyline through its points. The parameter is spread evenly
// over the segments regardless of their length.
type LinePath []Vec2

// At implements Path.
func (p LinePath) At(t float64) Vec2 {
	switch len(p) {
	case 0:
		return Vec2{}
	case 1:
		return p[0]
	}
	i, f := segmentAt(t, len(p)-1)
	return p[i].Lerp(p[i+1], f)
}

// Segments implements Segmented.
func (p LinePath) Segments() int { return max(len(p)-1, 1) }

// Cubic is a cubic Bezier segment.
type Cubic struct {
	P0, P1, P2, P3 Vec2
}

// Eval evaluates the segment at t.
func (c Cubic) Eval(t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Vec2{
		a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// CubicPath is a chain of cubic Bezier segments, the shape an SVG path's
// "C" commands describe. The parameter is spread evenly over the segments.
type CubicPath []Cubic

// At implements Path.
func (p CubicPath) At(t float64) Vec2 {
	if len(p) == 0 {
		return Vec2{}
	}
	i, f := segmentAt(t, len(p))
	return p[i].Eval(f)
}

// Segments implements Segmented.
func (p CubicPath) Segments() int { return max(len(p), 1) }

// segmentAt splits a global parameter into a segment index and a local
// parameter, clamping t to [0, 1].
func segmentAt(t float64, n int) (int, float64) {
	t = math.Max(0, math.Min(1, t))
	s := t * float64(n)
	i := int(s)
	if i >= n {
		i = n - 1
	}
	return i, s - float64(i)
}

// measuredPath caches cumulative chord lengths of a path so positions can be
// looked up by fraction of total length.
type measuredPath struct {
	path    Path
	params  []float64
	lengths []float64
	total   float64
}

// measurePath samples p at resolution points per segment.
func measurePath(p Path, resolution int) *measuredPath {
	segments := 1
	if s, ok := p.(Segmented); ok {
		segments = max(s.Segments(), 1)
	}
	n := max(resolution*segments, 1)

	m := &measuredPath{
		path:    p,
		params:  make([]float64, n+1),
		lengths: make([]float64, n+1),
	}
	prev := p.At(0)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := p.At(t)
		m.params[i] = t
		m.total += prev.Dist(pt)
		m.lengths[i] = m.total
		prev = pt
	}
	return m
}

// positionAt returns the point at fraction u of the path's length.
func (m *measuredPath) positionAt(u float64) Vec2 {
	if m.total == 0 {
		return m.path.At(u)
	}
	target := u * m.total
	i := sort.SearchFloat64s(m.lengths, target)
	switch {
	case i <= 0:
		return m.path.At(0)
	case i >= len(m.lengths):
		return m.path.At(1)
	}
	l0, l1 := m.lengths[i-1], m.lengths[i]
	t := m.params[i-1] + (m.params[i]-m.params[i-1])*ratio(target-l0, l1-l0)
	return m.path.At(t)
}
