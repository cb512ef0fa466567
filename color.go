package shimmer

// BlendMode selects how a color sub-effect combines with the texel.
type BlendMode uint8

const (
	BlendLerp     BlendMode = iota // crossfade toward the effect color
	BlendAdd                       // add the weighted effect color
	BlendMultiply                  // multiply toward the effect color
	BlendScreen                    // inverse-multiply (brighten), sequential only
	BlendHSV                       // hue shift + sat/val scaling, sequential only
)

// CompositeMode selects which aggregation family a color sub-effect joins
// when a stack holds several of them.
//
// Sequential effects fold one after another in stack order, each seeing the
// previous result. Contributive effects of the same BlendMode pool into one
// bucket whose strength is the maximum member weight; Additive is the
// contributive variant whose bucket strength is the sum of member weights
// instead.
//
// Older data encoded this mode in the color's alpha channel; decode such
// values once at the boundary with DecodeCompositeMode. The zero value is
// Sequential, matching the legacy decode of a zero alpha.
type CompositeMode uint8

const (
	CompositeSequential   CompositeMode = iota // fold in stack order
	CompositeContributive                      // pool per blend mode, strength = max weight
	CompositeAdditive                          // pool per blend mode, strength = summed weight
)

// DecodeCompositeMode translates the legacy alpha-channel encoding into an
// explicit CompositeMode: >= 1.9 additive, >= 0.9 contributive, anything
// below sequential.
func DecodeCompositeMode(alpha float64) CompositeMode {
	switch {
	case alpha >= 1.9:
		return CompositeAdditive
	case alpha >= 0.9:
		return CompositeContributive
	default:
		return CompositeSequential
	}
}

// ColorEffect tints the texel toward Color, weighted by the wave output
// inside the phase window. Screen and HSV blends are only honored in the
// Sequential family; a contributive Screen/HSV entry is ignored.
//
// The zero value is inert: its wave evaluates to weight 0 and it folds as a
// no-op Sequential Lerp.
type ColorEffect struct {
	Phase     Phase
	Wave      Wave
	Color     RGB
	Blend     BlendMode
	Composite CompositeMode
}

// NewColorEffect returns a color sub-effect active over the full lifetime.
func NewColorEffect(wave Wave, color RGB, blend BlendMode, composite CompositeMode) ColorEffect {
	return ColorEffect{Phase: FullWindow, Wave: wave, Color: color, Blend: blend, Composite: composite}
}
