package ecs

import (
	"testing"

	"github.com/phanxgames/shimmer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []shimmer.SlotEvent
	SlotEventType.Subscribe(world, func(w donburi.World, e shimmer.SlotEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(shimmer.SlotEvent{
		Type: shimmer.EventSlotAcquired,
		Slot: 42,
	})

	sink.EmitEvent(shimmer.SlotEvent{
		Type:        shimmer.EventStackExpired,
		Slot:        3,
		SpriteIndex: 7,
		Expired:     2,
	})

	// Events are queued until processed.
	SlotEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != shimmer.EventSlotAcquired || e0.Slot != 42 {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Type != shimmer.EventStackExpired || e1.Slot != 3 {
		t.Errorf("event 1: %+v", e1)
	}
	if e1.SpriteIndex != 7 || e1.Expired != 2 {
		t.Errorf("event 1 payload: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SlotEventType.Subscribe(world, func(w donburi.World, e shimmer.SlotEvent) {
		count1++
	})
	SlotEventType.Subscribe(world, func(w donburi.World, e shimmer.SlotEvent) {
		count2++
	})

	sink.EmitEvent(shimmer.SlotEvent{Type: shimmer.EventSlotReleased})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestStackBufferEventsThroughWorld(t *testing.T) {
	world := donburi.NewWorld()
	buf := shimmer.NewStackBuffer(4)
	buf.SetEventSink(NewDonburiSink(world))

	var got []shimmer.SlotEvent
	SlotEventType.Subscribe(world, func(w donburi.World, e shimmer.SlotEvent) {
		got = append(got, e)
	})

	slot, ok := buf.Acquire()
	if !ok {
		t.Fatal("Acquire failed")
	}
	buf.Release(slot)
	SlotEventType.ProcessEvents(world)

	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Type != shimmer.EventSlotAcquired || got[0].Slot != slot {
		t.Errorf("acquire event: %+v", got[0])
	}
	if got[1].Type != shimmer.EventSlotReleased || got[1].Slot != slot {
		t.Errorf("release event: %+v", got[1])
	}
}
