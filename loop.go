package marquee

import "math"

// pixelsPerSpeed is the distance covered per second at Speed 1.
const pixelsPerSpeed = 100

// LoopConfig controls how a Loop is built and played. The zero value is a
// valid configuration: speed 1, snapping to whole percents, one forward cycle,
// autoplay.
type LoopConfig struct {
	// Speed multiplies the traversal rate of 100 units per second. Zero means 1.
	Speed float64
	// Paused builds the loop without autoplay. Call Play to start it.
	Paused bool
	// Repeat is the number of extra forward cycles. -1 repeats forever.
	Repeat int
	// Reversed plays the loop right to left.
	Reversed bool
	// PaddingRight is extra space appended after the last item.
	PaddingRight float64
	// Snap quantizes every XPercent the loop writes to a multiple of this
	// value. Zero means 1 (whole percents).
	Snap float64
	// NoSnap disables quantization entirely.
	NoSnap bool
	// Events receives wrap, navigation and completion events.
	Events EventSink
	// Debug prints the derived geometry when the loop is built.
	Debug bool
}

// Loop moves an ordered sequence of items across the screen forever, wrapping
// each one to the trailing edge as it leaves the leading edge. It owns no
// clock: call Update once per frame, or Seek directly.
//
// A Loop is not safe for concurrent use.
type Loop struct {
	items  []*Item
	tracks []track

	xPercents []float64
	widths    []float64
	times     []float64

	totalWidth float64
	pps        float64
	duration   float64

	time      float64
	iteration int
	repeat    int
	reversed  bool
	paused    bool
	complete  bool

	curIndex int
	active   *Tween
	events   EventSink
}

// NewLoop builds a seamless loop over items. It panics if items is empty or
// any item has a non-positive width.
//
// Each item's current pixel offset is folded into XPercent and X is reset to
// zero, so the loop can be rebuilt after a resize without drift.
func NewLoop(items []*Item, cfg LoopConfig) *Loop {
	checkItems(items)

	speed := cfg.Speed
	if speed == 0 {
		speed = 1
	}
	step := cfg.Snap
	if step == 0 {
		step = 1
	}
	if cfg.NoSnap {
		step = 0
	}
	snap := snapper(step)

	n := len(items)
	l := &Loop{
		items:     append([]*Item(nil), items...),
		tracks:    make([]track, n),
		xPercents: make([]float64, n),
		widths:    make([]float64, n),
		times:     make([]float64, n),
		pps:       math.Abs(speed) * pixelsPerSpeed,
		repeat:    cfg.Repeat,
		paused:    cfg.Paused,
		events:    cfg.Events,
	}

	for i, it := range items {
		l.widths[i] = it.Width
		l.xPercents[i] = snap(it.X/it.Width*100 + it.XPercent)
		it.X = 0
		it.XPercent = l.xPercents[i]
	}

	first, last := items[0], items[n-1]
	startX := first.OffsetLeft
	l.totalWidth = last.OffsetLeft + l.xPercents[n-1]/100*l.widths[n-1] - startX +
		last.Width*last.Scale() + cfg.PaddingRight
	l.duration = l.totalWidth / l.pps

	for i, it := range items {
		w := l.widths[i]
		curX := l.xPercents[i] / 100 * w
		distanceToStart := it.OffsetLeft + curX - startX
		distanceToLoop := distanceToStart + w*it.Scale()
		l.tracks[i] = track{
			item:    it,
			from:    l.xPercents[i],
			exit:    snap((curX - distanceToLoop) / w * 100),
			reentry: snap((curX - distanceToLoop + l.totalWidth) / w * 100),
			wrapT:   distanceToLoop / l.pps,
			endT:    l.duration,
		}
		l.times[i] = distanceToStart / l.pps
	}

	// Walk every track through the full cycle once so the first real frame
	// starts from settled state.
	l.seek(l.duration)
	l.seek(0)

	if cfg.Reversed {
		l.Reverse()
	}
	if cfg.Debug {
		l.logLoop()
	}
	return l
}

// Len returns the number of items.
func (l *Loop) Len() int { return len(l.items) }

// Items returns the items in loop order.
func (l *Loop) Items() []*Item { return l.items }

// Times returns, for each item, the timeline time at which it reaches the
// start position. The slice is shared; do not modify it.
func (l *Loop) Times() []float64 { return l.times }

// TotalWidth returns the distance covered by one full cycle.
func (l *Loop) TotalWidth() float64 { return l.totalWidth }

// Duration returns the length of one cycle in seconds.
func (l *Loop) Duration() float64 { return l.duration }

// Time returns the playhead position within the current cycle.
func (l *Loop) Time() float64 { return l.time }

// Iteration returns the number of completed forward cycles.
func (l *Loop) Iteration() int { return l.iteration }

// Progress returns Time as a fraction of Duration.
func (l *Loop) Progress() float64 { return ratio(l.time, l.duration) }

// Current returns the index of the current item.
func (l *Loop) Current() int { return l.curIndex }

// Paused reports whether autoplay is stopped.
func (l *Loop) Paused() bool { return l.paused }

// Reversed reports whether playback runs right to left.
func (l *Loop) Reversed() bool { return l.reversed }

// Complete reports whether finite forward playback has ended.
func (l *Loop) Complete() bool { return l.complete }

// Tweening reports whether a navigation tween is in flight.
func (l *Loop) Tweening() bool { return l.active != nil && !l.active.Done }

// Play resumes autoplay. An in-flight navigation tween is superseded, and a
// completed loop restarts from the beginning.
func (l *Loop) Play() {
	l.active = nil
	l.paused = false
	if l.complete {
		l.complete = false
		l.iteration = 0
		l.seek(0)
	}
}

// Pause stops autoplay. Navigation tweens still run.
func (l *Loop) Pause() {
	l.paused = true
}

// Reverse flips the playback direction. When switching to reverse at the
// start of a cycle the playhead moves to the end of the cycle, which is the
// same visual state, so reverse playback wraps without a seam.
func (l *Loop) Reverse() {
	l.reversed = !l.reversed
	if l.reversed && l.time == 0 {
		l.seek(l.duration)
	}
	l.complete = false
}

// Seek moves the playhead to t, wrapped into a single cycle, and updates
// every item. Seeking exactly to Duration is kept as the end of the cycle.
func (l *Loop) Seek(t float64) {
	if t != l.duration {
		t = wrapFloat(t, l.duration)
	}
	l.seek(t)
}

// Update advances the loop by dt seconds. An in-flight navigation tween takes
// precedence over autoplay; otherwise the playhead moves in the playback
// direction, wrapping at the cycle seam.
func (l *Loop) Update(dt float64) {
	if l.Tweening() {
		l.active.Update(float32(dt))
		return
	}
	if l.paused || l.complete || dt <= 0 {
		return
	}
	if l.reversed {
		l.advanceReverse(dt)
	} else {
		l.advance(dt)
	}
}

func (l *Loop) advance(dt float64) {
	t := l.time + dt
	if t < l.duration {
		l.seek(t)
		return
	}
	cycles := math.Floor(t / l.duration)
	if l.repeat >= 0 && l.iteration+int(cycles) > l.repeat {
		l.iteration = l.repeat
		l.seek(l.duration)
		l.complete = true
		l.emit(LoopEventComplete, l.curIndex)
		return
	}
	l.iteration += int(cycles)
	l.seek(t - cycles*l.duration)
	l.emit(LoopEventWrap, l.curIndex)
}

// advanceReverse moves the playhead backward. Reverse playback always wraps;
// the time stays inside [0, Duration] by modular arithmetic.
func (l *Loop) advanceReverse(dt float64) {
	t := l.time - dt
	if t >= 0 {
		l.seek(t)
		return
	}
	l.seek(wrapFloat(t, l.duration))
	l.emit(LoopEventWrap, l.curIndex)
}

// seek writes the state for playhead t into every track.
func (l *Loop) seek(t float64) {
	l.time = t
	for i := range l.tracks {
		l.tracks[i].seek(t)
	}
}
