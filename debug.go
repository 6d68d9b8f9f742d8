package marquee

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives diagnostic lines when a loop or path ease is built with
// Debug set. Replaced in tests.
var debugOut io.Writer = os.Stderr

// debugf prints a "[marquee]" prefixed line to debugOut.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[marquee] "+format+"\n", args...)
}

// checkItems panics with a descriptive message when the item slice cannot
// produce a loop. Empty input and non-positive widths leave the geometry
// undefined.
func checkItems(items []*Item) {
	if len(items) == 0 {
		panic("marquee: NewLoop called with no items")
	}
	for i, it := range items {
		if it == nil {
			panic(fmt.Sprintf("marquee: NewLoop item %d is nil", i))
		}
		if !(it.Width > 0) {
			panic(fmt.Sprintf("marquee: NewLoop item %d (%q) has width %v", i, it.Name, it.Width))
		}
	}
}

// logLoop prints the derived loop geometry.
func (l *Loop) logLoop() {
	debugf("loop: %d items | total width: %.2f | speed: %.2f/s | duration: %.3fs",
		len(l.items), l.totalWidth, l.pps, l.duration)
	for i, tr := range l.tracks {
		debugf("loop: item %d %q | start: %.3fs | wrap: %.3fs | xPercent %.2f -> %.2f, %.2f -> %.2f",
			i, tr.item.Name, l.times[i], tr.wrapT, tr.from, tr.exit, tr.reentry, tr.from)
	}
}

// logPathEase prints the sampling parameters of a PathEase.
func (e *PathEase) logPathEase(windows int) {
	debugf("path ease: axis %s | samples: %d | extent: %.2f | smooth: %d (%d windows)",
		e.axis, e.steps, e.extent, e.smooth, windows)
}
