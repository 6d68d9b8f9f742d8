package marquee

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var counterPrinter = message.NewPrinter(language.English)

// Counter tweens a number from a start value to a target, for "1,250 happy
// customers" style statistics. Call Update(dt) each frame and render Text.
//
// There is no global animation manager; callers drive Update themselves.
type Counter struct {
	tween *gween.Tween
	// Value is the current, unrounded value.
	Value float64
	// Decimals is the number of fraction digits Text renders.
	Decimals int
	Done     bool
}

// NewCounter creates a Counter running from -> to over duration seconds.
// A nil fn means ease.OutQuad.
func NewCounter(from, to float64, duration float32, fn ease.TweenFunc) *Counter {
	if fn == nil {
		fn = ease.OutQuad
	}
	c := &Counter{Value: from}
	if duration <= 0 {
		c.Value = to
		c.Done = true
		return c
	}
	c.tween = gween.New(float32(from), float32(to), duration, fn)
	return c
}

// Update advances the counter by dt seconds.
func (c *Counter) Update(dt float32) {
	if c.Done {
		return
	}
	val, finished := c.tween.Update(dt)
	c.Value = float64(val)
	c.Done = finished
}

// Text formats Value with English digit grouping, rounded to Decimals.
func (c *Counter) Text() string {
	return formatCount(c.Value, c.Decimals)
}

func formatCount(v float64, decimals int) string {
	if decimals <= 0 {
		return counterPrinter.Sprintf("%d", int64(math.Round(v)))
	}
	return counterPrinter.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// SpringCounter follows a target that may change at any time, settling with
// a damped spring instead of a fixed-duration tween.
type SpringCounter struct {
	spring   harmonica.Spring
	velocity float64
	// Value is the current, unrounded value.
	Value float64
	// Target is the value the spring settles toward.
	Target float64
	// Decimals is the number of fraction digits Text renders.
	Decimals int
}

// NewSpringCounter creates a SpringCounter stepped at fps frames per second.
// frequency is the angular frequency; damping below 1 overshoots.
func NewSpringCounter(fps int, frequency, damping float64) *SpringCounter {
	return &SpringCounter{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Update steps the spring by one frame.
func (c *SpringCounter) Update() {
	c.Value, c.velocity = c.spring.Update(c.Value, c.velocity, c.Target)
}

// Settled reports whether the value and velocity are within eps of rest.
func (c *SpringCounter) Settled(eps float64) bool {
	return math.Abs(c.Value-c.Target) <= eps && math.Abs(c.velocity) <= eps
}

// Text formats Value with English digit grouping, rounded to Decimals.
func (c *SpringCounter) Text() string {
	return formatCount(c.Value, c.Decimals)
}
