// Package ecs provides ECS adapters for shimmer's stack-buffer events.
//
// The primary adapter is [NewDonburiSink], which bridges StackBuffer slot
// lifecycle events (acquire, release, effect expiry) into a [Donburi] world
// as typed events. Subscribe to [SlotEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	buffer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
