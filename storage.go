package shimmer

// EventSink is the interface for optional ECS integration. When set on a
// StackBuffer, slot lifecycle events are forwarded to the ECS.
type EventSink interface {
	EmitEvent(event SlotEvent)
}

// EventType identifies a kind of slot lifecycle event.
type EventType uint8

const (
	EventSlotAcquired  EventType = iota // fires when Acquire hands out a slot
	EventSlotReleased                   // fires when a slot is returned to the pool
	EventStackExpired                   // fires when ExpireAll clears finished effects in a slot
)

// SlotEvent carries slot lifecycle data for the ECS bridge.
type SlotEvent struct {
	Type        EventType
	Slot        int
	SpriteIndex uint32
	// Expired is the number of effects cleared (valid for EventStackExpired).
	Expired int
}

const defaultBufferCap = 500

// StackBuffer owns a fixed pool of effect stacks with stable slot indices.
// A slot index stays valid from Acquire until Release, so callers can store
// it on an entity and keep writing to the same stack across frames.
//
// Mutations mark their slot dirty; FlushDirty visits and clears the dirty
// set, which is how a renderer that mirrors stacks elsewhere (a GPU buffer,
// a network peer) finds out what changed without scanning every slot.
//
// StackBuffer is not safe for concurrent use.
type StackBuffer struct {
	stacks []EffectStack
	used   []bool
	free   []int

	dirty     []int
	dirtyFlag []bool

	sink EventSink
}

// NewStackBuffer creates a buffer with the given number of slots. A
// non-positive capacity falls back to 500.
func NewStackBuffer(capacity int) *StackBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCap
	}
	b := &StackBuffer{
		stacks:    make([]EffectStack, capacity),
		used:      make([]bool, capacity),
		free:      make([]int, 0, capacity),
		dirty:     make([]int, 0, capacity),
		dirtyFlag: make([]bool, capacity),
	}
	// Populate the free list in reverse so Acquire hands out slot 0 first.
	for i := capacity - 1; i >= 0; i-- {
		b.free = append(b.free, i)
	}
	return b
}

// SetEventSink sets the optional ECS bridge.
func (b *StackBuffer) SetEventSink(sink EventSink) {
	b.sink = sink
}

// Cap returns the total number of slots.
func (b *StackBuffer) Cap() int {
	return len(b.stacks)
}

// SlotInUse reports whether slot is currently acquired.
func (b *StackBuffer) SlotInUse(slot int) bool {
	return slot >= 0 && slot < len(b.stacks) && b.used[slot]
}

// InUse returns the number of acquired slots.
func (b *StackBuffer) InUse() int {
	return len(b.stacks) - len(b.free)
}

// Acquire reserves a slot and returns its index. The slot starts zeroed
// (every effect disabled). Returns false when the buffer is full.
func (b *StackBuffer) Acquire() (int, bool) {
	if len(b.free) == 0 {
		debugWarnf("stack buffer full (%d slots)", len(b.stacks))
		return 0, false
	}
	slot := b.free[len(b.free)-1]
	b.free = b.free[:len(b.free)-1]
	b.used[slot] = true
	b.stacks[slot] = EffectStack{}
	if b.sink != nil {
		b.sink.EmitEvent(SlotEvent{Type: EventSlotAcquired, Slot: slot})
	}
	return slot, true
}

// Release returns a slot to the pool. The slot is zeroed and marked dirty so
// mirrors drop its effects too. Releasing an unused slot is a no-op.
func (b *StackBuffer) Release(slot int) {
	if !b.validUsed(slot, "Release") {
		return
	}
	sprite := b.stacks[slot].SpriteIndex
	b.stacks[slot] = EffectStack{}
	b.used[slot] = false
	b.free = append(b.free, slot)
	b.markDirty(slot)
	if b.sink != nil {
		b.sink.EmitEvent(SlotEvent{Type: EventSlotReleased, Slot: slot, SpriteIndex: sprite})
	}
}

// Set copies stack into the slot and marks it dirty.
func (b *StackBuffer) Set(slot int, stack EffectStack) {
	if !b.validUsed(slot, "Set") {
		return
	}
	b.stacks[slot] = stack
	b.markDirty(slot)
}

// At returns the stack at slot for in-place mutation, or nil for a slot that
// is not in use. Call MarkDirty after mutating through the pointer; Set does
// this automatically.
func (b *StackBuffer) At(slot int) *EffectStack {
	if !b.validUsed(slot, "At") {
		return nil
	}
	return &b.stacks[slot]
}

// Snapshot returns a copy of the stack at slot. The second return is false
// for a slot that is not in use.
func (b *StackBuffer) Snapshot(slot int) (EffectStack, bool) {
	if slot < 0 || slot >= len(b.stacks) || !b.used[slot] {
		return EffectStack{}, false
	}
	return b.stacks[slot], true
}

// MarkDirty flags a slot as changed for the next FlushDirty.
func (b *StackBuffer) MarkDirty(slot int) {
	if slot < 0 || slot >= len(b.stacks) {
		debugWarnf("stack buffer: MarkDirty on invalid slot %d", slot)
		return
	}
	b.markDirty(slot)
}

// FlushDirty calls fn for every slot mutated since the last flush, in
// mutation order, then clears the dirty set. Released slots are visited too,
// with a zeroed stack. Returns the number of slots visited.
func (b *StackBuffer) FlushDirty(fn func(slot int, stack *EffectStack)) int {
	n := len(b.dirty)
	for _, slot := range b.dirty {
		b.dirtyFlag[slot] = false
		fn(slot, &b.stacks[slot])
	}
	b.dirty = b.dirty[:0]
	return n
}

// ExpireAll clears finished one-shot effects in every acquired slot, marking
// slots that changed as dirty. Returns the total number of effects cleared.
func (b *StackBuffer) ExpireAll(now float64) int {
	total := 0
	for slot := range b.stacks {
		if !b.used[slot] {
			continue
		}
		n := b.stacks[slot].Expire(now)
		if n == 0 {
			continue
		}
		total += n
		b.markDirty(slot)
		if b.sink != nil {
			b.sink.EmitEvent(SlotEvent{
				Type:        EventStackExpired,
				Slot:        slot,
				SpriteIndex: b.stacks[slot].SpriteIndex,
				Expired:     n,
			})
		}
	}
	return total
}

func (b *StackBuffer) markDirty(slot int) {
	if b.dirtyFlag[slot] {
		return
	}
	b.dirtyFlag[slot] = true
	b.dirty = append(b.dirty, slot)
}

func (b *StackBuffer) validUsed(slot int, op string) bool {
	if slot < 0 || slot >= len(b.stacks) {
		debugWarnf("stack buffer: %s on invalid slot %d", op, slot)
		return false
	}
	if !b.used[slot] {
		debugWarnf("stack buffer: %s on unacquired slot %d", op, slot)
		return false
	}
	return true
}
