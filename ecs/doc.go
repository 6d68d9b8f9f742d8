// Package ecs provides ECS adapters for marquee loops.
//
// [NewDonburiSink] bridges loop events (wrap, index change, navigation
// complete, playback complete) into a [Donburi] world as typed events.
// Subscribe to [LoopEventType] in your ECS systems to receive them.
// [LoopComponent] and [UpdateLoops] let a world own and drive its loops.
//
// Usage:
//
//	loop := marquee.NewLoop(items, marquee.LoopConfig{Repeat: -1, Events: ecs.NewDonburiSink(world)})
//	ecs.AddLoop(world, loop)
//
//	// each frame
//	ecs.UpdateLoops(world, dt)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
