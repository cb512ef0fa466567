package ecs

import (
	"github.com/phanxgames/shimmer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SlotEventType is the Donburi event type for shimmer slot lifecycle events.
// Subscribe to this in your ECS systems to react to stack slots being
// acquired, released, or expiring effects.
var SlotEventType = events.NewEventType[shimmer.SlotEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Slot
// lifecycle events are published to SlotEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) shimmer.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event shimmer.SlotEvent) {
	SlotEventType.Publish(s.world, event)
}
