package shimmer

import "math"

// Envelope shapes a value over a sub-effect's local time: rise over Attack,
// sustain over Hold, fall over Release. The three durations share one local
// time unit; their sum is rescaled onto the sub-effect's [0, 1] window.
//
// With GrowthMode set and |Growth| above 1e-5 the attack rises along the
// exponential ease (exp(p*g)-1)/(exp(g)-1) instead of linearly; DecayMode and
// Decay do the same for the release. A disabled envelope passes through:
// value 1, integral equal to local time.
type Envelope struct {
	Attack  float64
	Hold    float64
	Release float64

	GrowthMode bool
	DecayMode  bool
	Growth     float64
	Decay      float64

	Enabled bool
}

// NewEnvelope returns an enabled linear envelope with the given attack, hold,
// and release durations.
func NewEnvelope(attack, hold, release float64) Envelope {
	return Envelope{Attack: attack, Hold: hold, Release: release, Enabled: true}
}

// EaseIn returns a copy whose attack follows an exponential ease with the
// given strength. Positive strength starts slow and accelerates.
func (e Envelope) EaseIn(strength float64) Envelope {
	e.GrowthMode = true
	e.Growth = strength
	return e
}

// EaseOut returns a copy whose release follows an exponential ease with the
// given strength. The decay exponent is negated so the fall starts fast and
// flattens, the usual ease-out shape.
func (e Envelope) EaseOut(strength float64) Envelope {
	e.DecayMode = true
	e.Decay = -strength
	return e
}

// Eval returns the envelope's instantaneous value and its normalized running
// integral at localT in [0, 1].
//
// The integral is the exact area swept under the envelope curve up to localT,
// divided by the total area under the whole curve, so it is continuous across
// segment boundaries, non-decreasing, and lands in [0, 1]. That continuity is
// what lets the integral drive oscillator phase (Wave.Eval) without jumps
// when frequency is being modulated. Both closed forms account for the
// exponential curvature when growth/decay easing is active.
//
// Value is clamped to [0, 1]. Out-of-range localT is clamped. Denominators
// are floored at 1e-5, so degenerate durations yield finite results.
func (e Envelope) Eval(localT float64) (value, integral float64) {
	total := e.Attack + e.Hold + e.Release
	if !e.Enabled || total <= 0 {
		return 1, localT
	}
	localT = clamp01(localT)

	growthActive := e.GrowthMode && math.Abs(e.Growth) > 1e-5
	decayActive := e.DecayMode && math.Abs(e.Decay) > 1e-5

	// Exact area of each segment. Linear segments are triangles; eased
	// segments integrate (exp(p*g)-1)/(exp(g)-1) over [0,1].
	attackArea := e.Attack / 2
	if growthActive {
		eg := math.Exp(e.Growth)
		attackArea = e.Attack * ((eg-1)/e.Growth - 1) / (eg - 1)
	}
	releaseArea := e.Release / 2
	if decayActive {
		ed := math.Exp(e.Decay)
		releaseArea = e.Release * (1 - ((ed-1)/e.Decay-1)/(ed-1))
	}
	area := epsDenom(attackArea + e.Hold + releaseArea)

	nt := localT * total
	var cum float64
	switch {
	case nt <= e.Attack && e.Attack > 0:
		p := nt / e.Attack
		if growthActive {
			eg := math.Exp(e.Growth)
			rise := math.Exp(p * e.Growth)
			value = (rise - 1) / (eg - 1)
			cum = e.Attack * ((rise-1)/e.Growth - p) / (eg - 1)
		} else {
			value = p
			cum = nt * nt / (2 * e.Attack)
		}
	case nt <= e.Attack+e.Hold:
		value = 1
		cum = attackArea + (nt - e.Attack)
	default:
		p := (nt - e.Attack - e.Hold) / epsDenom(e.Release)
		if decayActive {
			ed := math.Exp(e.Decay)
			fall := math.Exp(p * e.Decay)
			value = 1 - (fall-1)/(ed-1)
			cum = attackArea + e.Hold + e.Release*(p-((fall-1)/e.Decay-p)/(ed-1))
		} else {
			value = 1 - p
			cum = attackArea + e.Hold + e.Release*(p-p*p/2)
		}
	}
	return clamp01(value), clamp01(cum / area)
}
