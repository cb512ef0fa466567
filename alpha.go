package shimmer

// AlphaEffect drives the texel's alpha toward Target, weighted by the wave
// output inside the phase window. Weight 0 leaves alpha untouched, weight 1
// replaces it with Target entirely.
//
// The zero value is inert (zero wave weight). Every Effect carries exactly
// one AlphaEffect slot.
type AlphaEffect struct {
	Phase  Phase
	Wave   Wave
	Target float64
}

// NewAlphaEffect returns an alpha sub-effect active over the full lifetime.
// Target is clamped to [0, 1] at evaluation time.
func NewAlphaEffect(wave Wave, target float64) AlphaEffect {
	return AlphaEffect{Phase: FullWindow, Wave: wave, Target: target}
}
