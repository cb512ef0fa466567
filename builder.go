package shimmer

// EffectBuilder assembles an Effect fluently. Each Color/Alpha/Spatial call
// appends a sub-effect; the modifier methods (Phase, AmpEnvelope, EaseIn,
// CenterPhase, ...) adjust the most recently added one, so chains read in
// authoring order:
//
//	e := shimmer.NewEffect(shimmer.OneShot(now, 0.8)).
//		Color(shimmer.Sine(2, -0.5, 0.5), shimmer.RGB{1, 0.9, 0.2}, shimmer.BlendAdd, shimmer.CompositeContributive).
//		Phase(0, 0.5).
//		Alpha(shimmer.LinearRamp(1, 0), 0).
//		Build()
//
// Adding past a capacity limit drops the sub-effect with a debug warning
// rather than failing; malformed chains degrade instead of erroring, and
// validation belongs to authoring tools upstream.
type EffectBuilder struct {
	effect   Effect
	colorN   int
	spatialN int
	hasAlpha bool

	last     lastSlot
	lastIdx  int
}

type lastSlot uint8

const (
	lastNone lastSlot = iota
	lastColor
	lastAlpha
	lastSpatial
)

// NewEffect starts building an effect with the given lifetime.
func NewEffect(lifetime Lifetime) *EffectBuilder {
	return &EffectBuilder{effect: Effect{Lifetime: lifetime}}
}

// Build returns the assembled effect value.
func (b *EffectBuilder) Build() Effect {
	return b.effect
}

// Color appends a color sub-effect active over the full lifetime.
func (b *EffectBuilder) Color(wave Wave, color RGB, blend BlendMode, composite CompositeMode) *EffectBuilder {
	if b.colorN >= MaxColorEffects {
		debugWarnf("effect builder: color sub-effect limit (%d) reached, dropping", MaxColorEffects)
		b.last = lastNone
		return b
	}
	b.effect.Color[b.colorN] = NewColorEffect(wave, color, blend, composite)
	b.last = lastColor
	b.lastIdx = b.colorN
	b.colorN++
	return b
}

// Alpha sets the effect's alpha sub-effect, active over the full lifetime.
// An effect has exactly one alpha slot; calling Alpha again replaces it.
func (b *EffectBuilder) Alpha(wave Wave, target float64) *EffectBuilder {
	if b.hasAlpha {
		debugWarnf("effect builder: alpha sub-effect replaced")
	}
	b.effect.Alpha = NewAlphaEffect(wave, target)
	b.hasAlpha = true
	b.last = lastAlpha
	return b
}

// Spatial appends a spatial sub-effect active over the full lifetime.
func (b *EffectBuilder) Spatial(wave Wave, op SpatialOp, intensity float64, anchor Vec2) *EffectBuilder {
	if b.spatialN >= MaxSpatialEffects {
		debugWarnf("effect builder: spatial sub-effect limit (%d) reached, dropping", MaxSpatialEffects)
		b.last = lastNone
		return b
	}
	b.effect.Spatial[b.spatialN] = NewSpatialEffect(wave, op, intensity, anchor)
	b.last = lastSpatial
	b.lastIdx = b.spatialN
	b.spatialN++
	return b
}

// lastWave returns the wave of the most recently added sub-effect, or nil
// when there is none to modify.
func (b *EffectBuilder) lastWave() *Wave {
	switch b.last {
	case lastColor:
		return &b.effect.Color[b.lastIdx].Wave
	case lastAlpha:
		return &b.effect.Alpha.Wave
	case lastSpatial:
		return &b.effect.Spatial[b.lastIdx].Wave
	}
	debugWarnf("effect builder: modifier called before any sub-effect")
	return nil
}

// lastPhaseRef returns the phase of the most recently added sub-effect.
func (b *EffectBuilder) lastPhaseRef() *Phase {
	switch b.last {
	case lastColor:
		return &b.effect.Color[b.lastIdx].Phase
	case lastAlpha:
		return &b.effect.Alpha.Phase
	case lastSpatial:
		return &b.effect.Spatial[b.lastIdx].Phase
	}
	debugWarnf("effect builder: modifier called before any sub-effect")
	return nil
}

// Phase restricts the last sub-effect to the [start, end] window of its
// parent's progress.
func (b *EffectBuilder) Phase(start, end float64) *EffectBuilder {
	if p := b.lastPhaseRef(); p != nil {
		*p = NewPhase(start, end)
	}
	return b
}

// AmpEnvelope attaches an amplitude envelope to the last sub-effect's wave.
func (b *EffectBuilder) AmpEnvelope(env Envelope) *EffectBuilder {
	if w := b.lastWave(); w != nil {
		w.AmpEnvelope = env
	}
	return b
}

// FreqEnvelope attaches a frequency envelope to the last sub-effect's wave.
func (b *EffectBuilder) FreqEnvelope(env Envelope) *EffectBuilder {
	if w := b.lastWave(); w != nil {
		w.FreqEnvelope = env
	}
	return b
}

// EaseIn applies exponential ease-in to the last sub-effect's amplitude
// envelope. Attach an envelope first; easing a disabled envelope has no
// effect on output.
func (b *EffectBuilder) EaseIn(strength float64) *EffectBuilder {
	if w := b.lastWave(); w != nil {
		if !w.AmpEnvelope.Enabled {
			debugWarnf("effect builder: EaseIn on disabled amplitude envelope")
		}
		w.AmpEnvelope = w.AmpEnvelope.EaseIn(strength)
	}
	return b
}

// EaseOut applies exponential ease-out to the last sub-effect's amplitude
// envelope.
func (b *EffectBuilder) EaseOut(strength float64) *EffectBuilder {
	if w := b.lastWave(); w != nil {
		if !w.AmpEnvelope.Enabled {
			debugWarnf("effect builder: EaseOut on disabled amplitude envelope")
		}
		w.AmpEnvelope = w.AmpEnvelope.EaseOut(strength)
	}
	return b
}

// CenterPhase shifts the last sub-effect's wave so it starts at the center
// of its positive lobe.
func (b *EffectBuilder) CenterPhase() *EffectBuilder {
	if w := b.lastWave(); w != nil {
		*w = w.CenterPhase()
	}
	return b
}

// --- Stock effects ---

// Flash returns a looping effect pulsing the given color additively at freq
// cycles per second over a one-second loop.
func Flash(color RGB, freq float64) Effect {
	return NewEffect(Looping(0, 1)).
		Color(Sine(freq, -0.5, 0.5), color, BlendAdd, CompositeContributive).
		Build()
}

// FadeOut returns a one-shot effect that ramps alpha down to zero over
// duration, starting at t0.
func FadeOut(t0, duration float64) Effect {
	return NewEffect(OneShot(t0, duration)).
		Alpha(LinearRamp(1, 0), 0).
		Build()
}

// SquashStretch returns a one-shot effect oscillating vertical scale against
// horizontal scale, pivoting at the bottom so the sprite stays planted.
func SquashStretch(t0, duration, amount, freq float64) Effect {
	return NewEffect(OneShot(t0, duration)).
		Spatial(Sine(freq, amount, 0), SpatialScaleY, 1, AnchorBottomCenter).
		Spatial(Sine(freq, -amount, 0), SpatialScaleX, 1, AnchorBottomCenter).
		Build()
}

// Shake returns a one-shot horizontal jitter of the given pixel amplitude.
func Shake(t0, duration, pixels, freq float64) Effect {
	return NewEffect(OneShot(t0, duration)).
		Spatial(Triangle(freq, pixels, 0).CenterPhase(), SpatialTranslateX, 1, AnchorCenter).
		Build()
}
