package marquee

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/tanema/gween"
)

// halfCircle runs along the right half of the unit circle from (0,-1) to
// (0,1) at constant speed.
var halfCircle = PathFunc(func(t float64) Vec2 {
	s, c := math.Sincos(t * math.Pi)
	return Vec2{s, -c}
})

// foldBack climbs to 80, drops back to 20, then climbs to 100.
var foldBack = LinePath{{0, 0}, {0, 80}, {0, 20}, {0, 100}}

func samples(e *PathEase, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = e.Ease(float64(i) / float64(n))
	}
	return out
}

func maxStep(vals []float64) float64 {
	var m float64
	for i := 1; i < len(vals); i++ {
		m = math.Max(m, vals[i]-vals[i-1])
	}
	return m
}

func nonDecreasing(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			return false
		}
	}
	return true
}

func TestPathEaseEndpoints(t *testing.T) {
	paths := []struct {
		name string
		path Path
		axis Axis
	}{
		{"vertical line", LinePath{{0, 0}, {0, 100}}, AxisY},
		{"half circle", halfCircle, AxisY},
		{"fold back", foldBack, AxisY},
		{"cubic x", CubicPath{{Vec2{0, 0}, Vec2{50, 200}, Vec2{150, -200}, Vec2{200, 0}}}, AxisX},
		{"upward", LinePath{{0, 100}, {30, 0}}, AxisY},
	}
	for _, p := range paths {
		for _, precision := range []float64{0, 0.5, 1, 2, 3} {
			for _, smooth := range []int{0, SmoothDefault} {
				e := NewPathEase(p.path, PathEaseConfig{Axis: p.axis, Precision: precision, Smooth: smooth})
				if got := e.Ease(0); got != 0 {
					t.Errorf("%s precision %v smooth %d: Ease(0) = %v", p.name, precision, smooth, got)
				}
				if got := e.Ease(1); got != 1 {
					t.Errorf("%s precision %v smooth %d: Ease(1) = %v", p.name, precision, smooth, got)
				}
			}
		}
	}
}

func TestPathEaseStraightLineIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		path Path
		axis Axis
	}{
		{"vertical", LinePath{{0, 0}, {0, 100}}, AxisY},
		{"diagonal on x", LinePath{{0, 0}, {200, 50}}, AxisX},
		// Uneven segments: the raw parameter is not proportional to length.
		{"uneven segments", LinePath{{0, 0}, {0, 10}, {0, 100}}, AxisY},
		{"cubic line", CubicPath{{Vec2{0, 0}, Vec2{0, 10}, Vec2{0, 90}, Vec2{0, 100}}}, AxisY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewPathEase(tt.path, PathEaseConfig{Axis: tt.axis})
			for i := 0; i <= 1000; i++ {
				p := float64(i) / 1000
				tol := 1e-9
				if _, ok := tt.path.(CubicPath); ok {
					// Chord measurement of a non-uniform cubic is approximate.
					tol = 1e-2
				}
				if got := e.Ease(p); math.Abs(got-p) > tol {
					t.Fatalf("Ease(%v) = %v, want %v", p, got, p)
				}
			}
		})
	}
}

func TestPathEaseHalfCircle(t *testing.T) {
	e := NewPathEase(halfCircle, PathEaseConfig{Axis: AxisY, Precision: 1})

	// Half the y extent is reached halfway along the arc.
	if got := e.Ease(0.5); math.Abs(got-0.5) > 1.0/200 {
		t.Errorf("Ease(0.5) = %v, want 0.5 ± 1/200", got)
	}
	// A quarter of the y extent: 1-cos(πu) = 0.5, u = 1/3.
	if got := e.Ease(0.25); math.Abs(got-1.0/3) > 1.0/200 {
		t.Errorf("Ease(0.25) = %v, want 1/3 ± 1/200", got)
	}
	// Driving the path with the ease moves y linearly.
	for i := 0; i <= 20; i++ {
		p := float64(i) / 20
		y := e.Point(p).Y
		if want := -1 + 2*p; math.Abs(y-want) > 0.02 {
			t.Errorf("Point(%v).Y = %v, want %v", p, y, want)
		}
	}
}

func TestPathEasePrecisionScalesTable(t *testing.T) {
	e := NewPathEase(halfCircle, PathEaseConfig{Precision: 2})
	if e.Steps() != 400 {
		t.Errorf("Steps = %d, want 400", e.Steps())
	}
	if len(e.Table()) != 401 {
		t.Errorf("len(Table) = %d, want 401", len(e.Table()))
	}
}

func TestPathEaseFoldBackSmoothing(t *testing.T) {
	raw := NewPathEase(foldBack, PathEaseConfig{})
	smoothed := NewPathEase(foldBack, PathEaseConfig{Smooth: SmoothDefault})

	rawVals := samples(raw, 200)
	smoothVals := samples(smoothed, 200)

	// The unsmoothed inverse is non-decreasing too: the bracketing cursor only
	// moves forward. What it cannot avoid is the jump over the fold.
	if !nonDecreasing(rawVals) {
		t.Error("raw ease should be non-decreasing")
	}
	if !nonDecreasing(smoothVals) {
		t.Error("smoothed ease should be non-decreasing")
	}

	rawJump, smoothJump := maxStep(rawVals), maxStep(smoothVals)
	// The fold spans 120 of the path's 220 units of length.
	if rawJump < 0.4 {
		t.Errorf("raw max step = %v, expected a jump over the fold", rawJump)
	}
	if smoothJump > rawJump/4 {
		t.Errorf("smoothed max step = %v, raw %v: smoothing should spread the jump", smoothJump, rawJump)
	}
}

func TestSmoothTableOverlapLaterWins(t *testing.T) {
	table := []float64{0, 1, 2, 9, 10, 11, 12, 13, 20}
	smoothTable(table, []int{0, 2}, 4)

	// Window 0 sets 1..3 on the line 0 -> 10; window 2 then starts from the
	// blended table[2] and overrides 3..5 on the line 5 -> 12.
	diff(t, []float64{0, 2.5, 5, 6.75, 8.5, 10.25, 12, 13, 20}, table)
}

func TestSmoothTableClampsToEnd(t *testing.T) {
	table := []float64{0, 1, 2, 9, 10}
	smoothTable(table, []int{2}, 14)
	diff(t, []float64{0, 1, 2, 6, 10}, table)
}

func TestPathEaseZeroExtentPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for zero axis extent")
		}
		if !strings.Contains(r.(string), "zero extent on axis x") {
			t.Errorf("panic message %q", r)
		}
	}()
	NewPathEase(LinePath{{0, 0}, {0, 100}}, PathEaseConfig{Axis: AxisX})
}

func TestPathEaseClampsInput(t *testing.T) {
	e := NewPathEase(halfCircle, PathEaseConfig{})
	if e.Ease(-0.5) != 0 || e.Ease(1.5) != 1 {
		t.Errorf("Ease(-0.5)=%v Ease(1.5)=%v, want 0 and 1", e.Ease(-0.5), e.Ease(1.5))
	}
}

func TestPathEaseTweenFunc(t *testing.T) {
	e := NewPathEase(LinePath{{0, 0}, {0, 100}}, PathEaseConfig{})
	tw := gween.New(0, 100, 1, e.TweenFunc())

	val, done := tw.Update(0.5)
	if done {
		t.Fatal("tween should not be done at halfway")
	}
	if math.Abs(float64(val)-50) > 1e-3 {
		t.Errorf("value at halfway = %v, want 50", val)
	}
	val, done = tw.Update(0.5)
	if !done || math.Abs(float64(val)-100) > 1e-3 {
		t.Errorf("value at end = %v (done %v), want 100", val, done)
	}
}

func TestPathEaseDebugLog(t *testing.T) {
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	defer func() { debugOut = old }()

	NewPathEase(halfCircle, PathEaseConfig{Debug: true, Smooth: SmoothDefault})
	if !strings.HasPrefix(buf.String(), "[marquee] path ease: axis y | samples: 200 | extent: 2.00 | smooth: 7") {
		t.Errorf("debug output = %q", buf.String())
	}
}
