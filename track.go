package marquee

// trackPhase is the motion state of one item within a loop cycle.
type trackPhase uint8

const (
	phaseAdvancing     trackPhase = iota // moving from the authored offset toward the exit point
	phaseRepositioning                   // instantaneous jump one cycle ahead, never rendered
	phaseContinuing                      // moving from the trailing edge back to the authored offset
)

func (p trackPhase) String() string {
	switch p {
	case phaseAdvancing:
		return "advancing"
	case phaseRepositioning:
		return "repositioning"
	case phaseContinuing:
		return "continuing"
	default:
		return "unknown"
	}
}

// track drives the XPercent of a single item over one cycle. All values are
// percentages of the item's width; times are seconds on the loop timeline.
//
//	[0, wrapTime)          advancing:  from -> exit
//	wrapTime               repositioning: exit -> reentry (state change only)
//	[wrapTime, endTime]    continuing: reentry -> from
type track struct {
	item *Item

	from    float64 // authored offset, also the value at the end of the cycle
	exit    float64 // offset at which the item has fully left the start edge
	reentry float64 // exit shifted one full cycle width ahead
	wrapT   float64
	endT    float64

	phase trackPhase
	value float64
}

// seek moves the track to time t and writes the resulting XPercent into the
// item. Phase changes happen here, before any frame is drawn, so the
// reposition jump is never observed.
func (tr *track) seek(t float64) {
	if t < tr.wrapT {
		if tr.phase != phaseAdvancing {
			tr.phase = phaseAdvancing
		}
		tr.value = lerp(tr.from, tr.exit, ratio(t, tr.wrapT))
	} else {
		if tr.phase == phaseAdvancing {
			tr.reposition()
		}
		tr.phase = phaseContinuing
		if t >= tr.endT {
			tr.value = tr.from
		} else {
			tr.value = lerp(tr.reentry, tr.from, ratio(t-tr.wrapT, tr.endT-tr.wrapT))
		}
	}
	tr.item.XPercent = tr.value
}

// reposition performs the seamless wrap: a pure state mutation that moves the
// item from its exit point to the trailing edge.
func (tr *track) reposition() {
	tr.phase = phaseRepositioning
	tr.value = tr.reentry
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ratio returns n/d, or 1 when the span is empty.
func ratio(n, d float64) float64 {
	if d <= 0 {
		return 1
	}
	return n / d
}
