package marquee

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// timeEpsilon is the playhead distance below which a navigation to the
// current index is treated as already complete.
const timeEpsilon = 1e-9

// TweenVars controls a navigation tween.
type TweenVars struct {
	// Duration in seconds. Zero or negative means natural speed: the tween
	// takes as long as autoplay would to cover the same distance.
	Duration float32
	// Ease shapes the tween. Nil means ease.Linear.
	Ease ease.TweenFunc
	// OnComplete runs once when the tween reaches its target. It does not run
	// for a tween that was superseded.
	OnComplete func()
}

// Tween moves a loop's playhead to a navigation target. Create one via
// Loop.ToIndex, Loop.Next or Loop.Previous and advance it with Loop.Update
// (or Update directly). Values are wrapped into the loop's cycle before they
// are applied, so a target outside [0, Duration) travels across the seam.
//
// Starting another navigation supersedes the tween: its Done flag is set on
// the next Update and it never writes again.
type Tween struct {
	loop     *Loop
	tween    *gween.Tween
	from, to float64
	index    int
	duration float32
	onDone   func()
	Done     bool
}

// Update advances the tween by dt seconds and seeks the loop to the new
// playhead.
func (tw *Tween) Update(dt float32) {
	if tw.Done {
		return
	}
	if tw.loop.active != tw {
		tw.Done = true
		return
	}

	val, finished := tw.tween.Update(dt)
	if finished {
		tw.finish()
		return
	}
	tw.loop.seek(wrapFloat(float64(val), tw.loop.duration))
}

// finish lands exactly on the item's start time; gween works in float32 and
// the unwrapped target can differ from it by rounding.
func (tw *Tween) finish() {
	tw.Done = true
	l := tw.loop
	l.seek(l.times[tw.index])
	l.active = nil
	l.emit(LoopEventTweenComplete, l.curIndex)
	if tw.onDone != nil {
		tw.onDone()
	}
}

// From returns the playhead time the tween started at.
func (tw *Tween) From() float64 { return tw.from }

// To returns the unwrapped target time. It may lie outside [0, Duration)
// when the tween crosses the cycle seam.
func (tw *Tween) To() float64 { return tw.to }

// Distance returns the signed playhead distance the tween covers.
func (tw *Tween) Distance() float64 { return tw.to - tw.from }

// Duration returns the tween length in seconds.
func (tw *Tween) Duration() float32 { return tw.duration }

// Index returns the item index the tween navigates to.
func (tw *Tween) Index() int { return tw.index }

// ToIndex starts a tween that brings item index to the start position and
// makes it current. Indices outside [0, Len) wrap. The tween always takes the
// shorter way around the loop, and autoplay is paused while it runs.
func (l *Loop) ToIndex(index int, vars TweenVars) *Tween {
	n := len(l.items)
	if 2*abs(index-l.curIndex) > n {
		if index > l.curIndex {
			index -= n
		} else {
			index += n
		}
	}
	newIndex := wrap(index, n)
	target := l.times[newIndex]
	switch {
	case newIndex == l.curIndex && math.Abs(target-l.time) <= timeEpsilon:
		// Already there, up to rounding left by an earlier seam crossing.
		target = l.time
	case (target > l.time) != (index > l.curIndex):
		if index > l.curIndex {
			target += l.duration
		} else {
			target -= l.duration
		}
	}

	prev := l.curIndex
	l.curIndex = newIndex
	l.paused = true

	tw := &Tween{
		loop:   l,
		from:   l.time,
		to:     target,
		index:  newIndex,
		onDone: vars.OnComplete,
	}
	l.active = tw
	if prev != newIndex {
		l.emit(LoopEventIndex, prev)
	}

	if target == l.time {
		tw.finish()
		return tw
	}

	tw.duration = vars.Duration
	if tw.duration <= 0 {
		tw.duration = float32(math.Abs(target - l.time))
	}
	fn := vars.Ease
	if fn == nil {
		fn = ease.Linear
	}
	tw.tween = gween.New(float32(l.time), float32(target), tw.duration, fn)
	return tw
}

// Next navigates to the item after the current one.
func (l *Loop) Next(vars TweenVars) *Tween {
	return l.ToIndex(l.curIndex+1, vars)
}

// Previous navigates to the item before the current one.
func (l *Loop) Previous(vars TweenVars) *Tween {
	return l.ToIndex(l.curIndex-1, vars)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
