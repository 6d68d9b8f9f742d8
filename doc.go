// Package marquee synthesizes the scroll and loop animations of a marketing
// site: an endlessly looping item carousel, a path-following ease that keeps
// motion linear along one axis, and animated statistic counters.
//
// Everything is plain math over a geometry snapshot. Handles own their state
// and no clock: the host calls Update(dt) each frame (or Seek) and reads
// the results back out.
//
// # Loops
//
// Lay items out left to right, then build a [Loop]:
//
//	items := marquee.LayoutRow(0, 240, 24, 8)
//	loop := marquee.NewLoop(items, marquee.LoopConfig{Repeat: -1, PaddingRight: 24})
//
//	// each frame
//	loop.Update(dt)
//	for _, it := range loop.Items() {
//		drawCard(it.Left(), it.Width)
//	}
//
// Every item moves left at Speed × 100 units per second. When an item has
// fully left the start edge it is moved one cycle width ahead in a single
// state change, so it re-enters from the trailing edge without a visible
// seam. [Loop.Next], [Loop.Previous] and [Loop.ToIndex] return a [Tween] that
// moves the playhead to an item, always the short way around.
//
// # Path eases
//
// [NewPathEase] measures a [Path] and returns a [PathEase] whose Ease method
// turns linear progress (usually scroll position) into the fraction of the
// path to place an object at, such that the object's movement along the
// chosen axis is constant speed:
//
//	pe := marquee.NewPathEase(path, marquee.PathEaseConfig{Axis: marquee.AxisY, Smooth: marquee.SmoothDefault})
//	pos := pe.Point(scrollProgress) // path point at fraction pe.Ease(scrollProgress) of its length
//
// # Counters
//
// [Counter] tweens a number with [gween]; [SpringCounter] chases a moving
// target with a [harmonica] spring.
//
// ECS integration for loops lives in the marquee/ecs module.
//
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package marquee
