package marquee

// EventSink is the interface for optional ECS or host integration.
// When set on a LoopConfig, loop lifecycle events are forwarded to it.
type EventSink interface {
	EmitLoopEvent(event LoopEvent)
}

// LoopEventType identifies the kind of LoopEvent.
type LoopEventType uint8

const (
	LoopEventWrap          LoopEventType = iota // playhead crossed the cycle seam
	LoopEventIndex                              // navigation changed the current index
	LoopEventTweenComplete                      // a navigation tween reached its target
	LoopEventComplete                           // finite forward playback ended
)

func (t LoopEventType) String() string {
	switch t {
	case LoopEventWrap:
		return "wrap"
	case LoopEventIndex:
		return "index"
	case LoopEventTweenComplete:
		return "tween-complete"
	case LoopEventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// LoopEvent carries loop state at the moment an event fired.
type LoopEvent struct {
	Type LoopEventType
	Loop *Loop
	// Index is the current index after the event.
	Index int
	// Previous is the index before navigation (valid for LoopEventIndex).
	Previous int
	// Iteration counts completed forward cycles.
	Iteration int
	// Time is the playhead after the event.
	Time float64
}

func (l *Loop) emit(typ LoopEventType, prev int) {
	if l.events == nil {
		return
	}
	l.events.EmitLoopEvent(LoopEvent{
		Type:      typ,
		Loop:      l,
		Index:     l.curIndex,
		Previous:  prev,
		Iteration: l.iteration,
		Time:      l.time,
	})
}
