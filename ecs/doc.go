// Package ecs provides ECS adapters for motion's animation lifecycle.
//
// The primary adapter is [NewDonburiSink], which bridges scene lifecycle
// events (animation begin and finish, node removal) into a [Donburi] world
// as typed events. Subscribe to [LifecycleEventType] in your ECS systems to
// receive them. The sink also keeps one entity with an [ActiveAnimation]
// component per running animation, so systems can query what is playing.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
