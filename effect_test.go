package shimmer

import "testing"

func TestStackPushFillsSlotsInOrder(t *testing.T) {
	var s EffectStack

	a := NewEffect(OneShot(0, 1)).Build()
	b := NewEffect(Looping(0, 2)).Build()

	if got := s.Push(a); got != 0 {
		t.Errorf("first Push slot = %d, want 0", got)
	}
	if got := s.Push(b); got != 1 {
		t.Errorf("second Push slot = %d, want 1", got)
	}
	if !s.Effects[0].Lifetime.Enabled || !s.Effects[1].Lifetime.Looping {
		t.Error("pushed effects not stored in their slots")
	}
}

func TestStackPushReusesFreedSlot(t *testing.T) {
	var s EffectStack
	s.Push(NewEffect(OneShot(0, 1)).Build())
	s.Push(NewEffect(OneShot(0, 1)).Build())

	s.Effects[0] = Effect{}
	if got := s.Push(NewEffect(OneShot(5, 1)).Build()); got != 0 {
		t.Errorf("Push after freeing slot 0 = %d, want 0", got)
	}
}

func TestStackPushFullOverwritesSlotZero(t *testing.T) {
	var s EffectStack
	for i := 0; i < MaxEffects; i++ {
		s.Push(NewEffect(OneShot(float64(i), 1)).Build())
	}

	e := NewEffect(OneShot(99, 1)).Build()
	if got := s.Push(e); got != 0 {
		t.Errorf("Push on full stack slot = %d, want 0", got)
	}
	if s.Effects[0].Lifetime.Start != 99 {
		t.Errorf("slot 0 Start = %g, want 99", s.Effects[0].Lifetime.Start)
	}
}

func TestStackClearKeepsSpriteIndex(t *testing.T) {
	var s EffectStack
	s.SpriteIndex = 42
	s.Push(NewEffect(OneShot(0, 1)).Build())

	s.Clear()
	if s.Effects[0].Lifetime.Enabled {
		t.Error("Clear left an enabled effect behind")
	}
	if s.SpriteIndex != 42 {
		t.Errorf("Clear changed SpriteIndex to %d", s.SpriteIndex)
	}
}

func TestStackExpire(t *testing.T) {
	var s EffectStack
	s.Push(NewEffect(OneShot(0, 1)).Build())  // over at t=1
	s.Push(NewEffect(OneShot(0, 10)).Build()) // still running
	s.Push(NewEffect(Looping(0, 1)).Build())  // never expires

	if got := s.Expire(5); got != 1 {
		t.Errorf("Expire(5) = %d, want 1", got)
	}
	if s.Effects[0].Lifetime.Enabled {
		t.Error("expired one-shot not zeroed")
	}
	if !s.Effects[1].Lifetime.Enabled || !s.Effects[2].Lifetime.Enabled {
		t.Error("Expire removed a live effect")
	}

	if got := s.Expire(5); got != 0 {
		t.Errorf("second Expire(5) = %d, want 0", got)
	}
}

func TestStackActiveCount(t *testing.T) {
	var s EffectStack
	s.Push(NewEffect(OneShot(10, 2)).Build())
	s.Push(NewEffect(Looping(0, 1)).Build())

	if got := s.ActiveCount(5); got != 1 {
		t.Errorf("ActiveCount before one-shot = %d, want 1 (looping only)", got)
	}
	if got := s.ActiveCount(11); got != 2 {
		t.Errorf("ActiveCount inside window = %d, want 2", got)
	}
	if got := s.ActiveCount(12); got != 1 {
		t.Errorf("ActiveCount after window = %d, want 1", got)
	}
}

func TestEffectStartingAt(t *testing.T) {
	e := NewEffect(OneShot(0.5, 2)).Build() // authored with a relative stagger

	shifted := e.StartingAt(10)
	assertNear(t, "shifted Start", shifted.Lifetime.Start, 10.5)
	assertNear(t, "shifted Duration", shifted.Lifetime.Duration, 2)
	assertNear(t, "original Start", e.Lifetime.Start, 0.5)
}
