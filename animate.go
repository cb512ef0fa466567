package shimmer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ParamTween animates up to 4 float64 fields on effect structs
// simultaneously. Create one via the convenience constructors (TweenAmp,
// TweenColor, TweenAlphaTarget, ...) and call Update(dt) each frame.
//
// The field pointers may point into a StackBuffer slot; chain Notify so each
// update also marks that slot dirty, and so the tween stops once the slot is
// released. Slot storage never moves, so the pointers stay valid for the
// slot's lifetime.
//
// There is no global animation manager; users call Update themselves.
type ParamTween struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	buf    *StackBuffer
	slot   int
	Done   bool
}

// Notify ties the tween to a StackBuffer slot: every Update marks the slot
// dirty, and the tween finishes early if the slot is released.
func (p *ParamTween) Notify(buf *StackBuffer, slot int) *ParamTween {
	p.buf = buf
	p.slot = slot
	return p
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If a notified slot has been released, Done is set and no writes
// occur.
func (p *ParamTween) Update(dt float32) {
	if p.Done {
		return
	}

	if p.buf != nil && !p.buf.SlotInUse(p.slot) {
		p.Done = true
		return
	}

	allDone := true
	for i := 0; i < p.count; i++ {
		val, finished := p.tweens[i].Update(dt)
		*p.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	p.Done = allDone

	if p.buf != nil {
		p.buf.MarkDirty(p.slot)
	}
}

// TweenAmp creates a ParamTween that animates a wave's amplitude to the given
// value over the specified duration using the easing function.
func TweenAmp(w *Wave, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	p := &ParamTween{count: 1}
	p.tweens[0] = gween.New(float32(w.Amp), float32(to), duration, fn)
	p.fields[0] = &w.Amp
	return p
}

// TweenFreq creates a ParamTween that animates a wave's frequency to the
// given value over the specified duration using the easing function.
func TweenFreq(w *Wave, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	p := &ParamTween{count: 1}
	p.tweens[0] = gween.New(float32(w.Freq), float32(to), duration, fn)
	p.fields[0] = &w.Freq
	return p
}

// TweenBias creates a ParamTween that animates a wave's bias to the given
// value over the specified duration using the easing function.
func TweenBias(w *Wave, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	p := &ParamTween{count: 1}
	p.tweens[0] = gween.New(float32(w.Bias), float32(to), duration, fn)
	p.fields[0] = &w.Bias
	return p
}

// TweenColor creates a ParamTween that animates all three components of a
// color sub-effect's color to the target over the specified duration.
func TweenColor(c *RGB, to RGB, duration float32, fn ease.TweenFunc) *ParamTween {
	p := &ParamTween{count: 3}
	p.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	p.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	p.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	p.fields[0] = &c.R
	p.fields[1] = &c.G
	p.fields[2] = &c.B
	return p
}

// TweenAlphaTarget creates a ParamTween that animates an alpha sub-effect's
// target to the given value over the specified duration.
func TweenAlphaTarget(a *AlphaEffect, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	p := &ParamTween{count: 1}
	p.tweens[0] = gween.New(float32(a.Target), float32(to), duration, fn)
	p.fields[0] = &a.Target
	return p
}

// TweenIntensity creates a ParamTween that animates a spatial sub-effect's
// intensity to the given value over the specified duration.
func TweenIntensity(s *SpatialEffect, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	p := &ParamTween{count: 1}
	p.tweens[0] = gween.New(float32(s.Intensity), float32(to), duration, fn)
	p.fields[0] = &s.Intensity
	return p
}
