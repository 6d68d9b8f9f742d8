// Package ecs provides ECS adapters for marquee loops.
package ecs

import (
	"github.com/phanxgames/marquee"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// LoopEventType is the Donburi event type for loop wrap, navigation and
// completion events. Subscribe to it in your ECS systems.
var LoopEventType = events.NewEventType[marquee.LoopEvent]()

// LoopData attaches a marquee loop to an entity.
type LoopData struct {
	Loop *marquee.Loop
}

// LoopComponent is the component type holding a LoopData.
var LoopComponent = donburi.NewComponentType[LoopData]()

var loopQuery = donburi.NewQuery(filter.Contains(LoopComponent))

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Loop events
// are published to LoopEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) marquee.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitLoopEvent(event marquee.LoopEvent) {
	LoopEventType.Publish(s.world, event)
}

// AddLoop creates an entity carrying l and returns it.
func AddLoop(world donburi.World, l *marquee.Loop) donburi.Entity {
	e := world.Create(LoopComponent)
	LoopComponent.SetValue(world.Entry(e), LoopData{Loop: l})
	return e
}

// UpdateLoops advances every loop in the world by dt seconds. Entities whose
// component holds a nil loop are skipped.
func UpdateLoops(world donburi.World, dt float64) {
	loopQuery.Each(world, func(entry *donburi.Entry) {
		if l := LoopComponent.Get(entry).Loop; l != nil {
			l.Update(dt)
		}
	})
}
