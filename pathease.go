package marquee

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

const (
	// measureResolution is the number of chords per path segment used to
	// measure arc length, before Precision is applied.
	measureResolution = 12
	// easeSteps is the size of the inverse table, before Precision is applied.
	easeSteps = 200
	// minChangeFactor scales one table step into the advance below which a
	// smoothing window is opened.
	minChangeFactor = 0.6
	// SmoothDefault is the conventional smoothing window: 7 samples either
	// side of a stall.
	SmoothDefault = 7
)

// PathEaseConfig controls NewPathEase. The zero value samples the y axis at
// precision 1 without smoothing.
type PathEaseConfig struct {
	// Axis is the coordinate whose motion should become linear.
	Axis Axis
	// Precision multiplies the sampling density. Zero or negative means 1.
	Precision float64
	// Smooth is the smoothing window half-width in samples. Zero disables
	// smoothing; use SmoothDefault for the usual amount.
	Smooth int
	// Debug prints the sampling parameters when the ease is built.
	Debug bool
}

// PathEase remaps linear progress so that an object following a path moves
// at constant speed along one axis. Progress in is the fraction of axis
// travel; progress out is the fraction of path length to place the object at.
//
// The lookup table is built once and never modified, so a PathEase may be
// shared between goroutines.
type PathEase struct {
	path   *measuredPath
	table  []float64
	steps  int
	axis   Axis
	extent float64
	smooth int
}

// NewPathEase samples p and builds the inverse table. It panics if the path's
// start and end coincide on the chosen axis, since positions cannot be
// normalized against a zero extent.
func NewPathEase(p Path, cfg PathEaseConfig) *PathEase {
	precision := cfg.Precision
	if precision <= 0 {
		precision = 1
	}
	m := measurePath(p, int(math.Round(measureResolution*precision)))

	axis := cfg.Axis
	start := axis.Of(m.positionAt(0))
	end := axis.Of(m.positionAt(1))
	extent := end - start
	if extent == 0 {
		panic(fmt.Sprintf("marquee: NewPathEase path has zero extent on axis %s", axis))
	}

	l := max(int(math.Round(easeSteps*precision)), 1)
	inc := 1 / float64(l)

	positions := make([]float64, l+1)
	for i := 1; i < l; i++ {
		positions[i] = (axis.Of(m.positionAt(float64(i)*inc)) - start) / extent
	}
	positions[l] = 1

	smooth := max(cfg.Smooth, 0)
	minChange := inc * minChangeFactor
	windows := []int{0}

	table := make([]float64, 0, l+1)
	cursor := 0
	for i := 0; i < l; i++ {
		target := float64(i) * inc
		for cursor < l && positions[cursor] <= target {
			cursor++
		}
		lo, hi := positions[cursor-1], positions[cursor]
		table = append(table, (float64(cursor-1)+(target-lo)/(hi-lo))*inc)

		n := len(table)
		if smooth > 0 && n > smooth && table[n-1]-table[n-2] < minChange {
			windows = append(windows, n-smooth)
		}
	}
	table = append(table, 1)

	if smooth > 0 {
		windows = append(windows, max(l-2*smooth+1, 0))
		smoothTable(table, windows, 2*smooth)
	}

	e := &PathEase{
		path:   m,
		table:  table,
		steps:  l,
		axis:   axis,
		extent: extent,
		smooth: smooth,
	}
	if cfg.Debug {
		e.logPathEase(len(windows))
	}
	return e
}

// smoothTable replaces the interior of each window [i, i+span] with a
// straight line between its endpoints. Windows are applied in order, so a
// later window overrides the part of an earlier one it overlaps and starts
// from the earlier window's blended value.
func smoothTable(table []float64, windows []int, span int) {
	last := len(table) - 1
	for _, i := range windows {
		j := min(i+span, last)
		if j-i < 2 {
			continue
		}
		start := table[i]
		step := (table[j] - start) / float64(j-i)
		for k := i + 1; k < j; k++ {
			table[k] = start + step*float64(k-i)
		}
	}
}

// Ease maps progress p in [0, 1] to the path fraction. Ease(0) is exactly 0
// and Ease(1) exactly 1; inputs outside the range are clamped.
func (e *PathEase) Ease(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return e.table[e.steps]
	}
	x := p * float64(e.steps)
	i := int(x)
	s := e.table[i]
	return s + (e.table[int(math.Ceil(x))]-s)*(x-float64(i))
}

// Point returns the position on the path for progress p: the point at
// fraction Ease(p) of the path's length.
func (e *PathEase) Point(p float64) Vec2 {
	return e.path.positionAt(e.Ease(p))
}

// Func returns Ease as a plain function value.
func (e *PathEase) Func() func(float64) float64 {
	return e.Ease
}

// TweenFunc adapts the ease to gween's easing signature so it can drive a
// gween.Tween directly.
func (e *PathEase) TweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(e.Ease(float64(t/d)))
	}
}

// Steps returns the size of the inverse table minus one.
func (e *PathEase) Steps() int { return e.steps }

// Table returns a copy of the inverse table.
func (e *PathEase) Table() []float64 {
	return append([]float64(nil), e.table...)
}
