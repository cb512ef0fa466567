package shimmer

// Capacity limits for the fixed-layout effect containers. A stack holds up
// to MaxEffects concurrent effects; each effect holds up to MaxColorEffects
// color and MaxSpatialEffects spatial sub-effects plus exactly one alpha
// slot. Unused slots hold zero values, which every evaluator treats as inert.
const (
	MaxEffects        = 6
	MaxColorEffects   = 3
	MaxSpatialEffects = 3
)

// Effect is one layered visual effect: a lifetime window plus its color,
// alpha, and spatial sub-effects. Effects are plain values; build them with
// NewEffect or by filling fields directly.
type Effect struct {
	Lifetime Lifetime
	Color    [MaxColorEffects]ColorEffect
	Alpha    AlphaEffect
	Spatial  [MaxSpatialEffects]SpatialEffect
}

// StartingAt returns a copy whose lifetime is shifted to begin at clock t.
// Any start offset the effect already carried is kept relative to t, so
// preset effects authored with staggered starts stay staggered.
func (e Effect) StartingAt(t float64) Effect {
	e.Lifetime.Start += t
	return e
}

// EffectStack is the unit of snapshotting: up to MaxEffects concurrently
// evaluated effects plus the sprite cell this drawable samples from.
//
// The evaluator reads a stack as one immutable value for the whole of a
// single call. Hosts that mutate stacks between frames hand the evaluator a
// copy (EffectStack is trivially copyable) or refrain from mutating
// mid-evaluation; StackBuffer.Snapshot packages that discipline.
type EffectStack struct {
	Effects     [MaxEffects]Effect
	SpriteIndex uint32
}

// Push installs e into the first slot whose lifetime is disabled and returns
// the slot index. A full stack overwrites slot 0, keeping the newest effect
// alive at the cost of the oldest fixed slot.
func (s *EffectStack) Push(e Effect) int {
	for i := range s.Effects {
		if !s.Effects[i].Lifetime.Enabled {
			s.Effects[i] = e
			return i
		}
	}
	debugWarnf("effect stack full, overwriting slot 0")
	s.Effects[0] = e
	return 0
}

// Clear zeroes every effect slot. SpriteIndex is left as is.
func (s *EffectStack) Clear() {
	for i := range s.Effects {
		s.Effects[i] = Effect{}
	}
}

// Expire zeroes every one-shot effect whose window has fully passed at clock
// t and returns how many were removed. Looping effects never expire.
func (s *EffectStack) Expire(t float64) int {
	n := 0
	for i := range s.Effects {
		if s.Effects[i].Lifetime.Finished(t) {
			s.Effects[i] = Effect{}
			n++
		}
	}
	return n
}

// ActiveCount returns how many effects produce a live progress at clock t.
func (s *EffectStack) ActiveCount(t float64) int {
	n := 0
	for i := range s.Effects {
		if _, ok := s.Effects[i].Lifetime.Progress(t); ok {
			n++
		}
	}
	return n
}
