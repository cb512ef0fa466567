package shimmer

// SpatialOp selects the vertex manipulation a spatial sub-effect performs.
type SpatialOp uint8

const (
	SpatialTranslateX SpatialOp = iota // shift along X by val
	SpatialTranslateY                  // shift along Y by val
	SpatialScaleX                      // scale X by 1+val
	SpatialScaleY                      // scale Y by 1+val
	SpatialRotate                      // rotate by val radians
	SpatialShearX                      // x += y*val
	SpatialShearY                      // y += x*val
)

// Anchor presets in the unit square, top-left origin, Y down. An anchor is
// the pivot the manipulation happens around: scaling with AnchorBottomCenter
// keeps the sprite's feet planted, rotating with AnchorCenter spins in place.
var (
	AnchorTopLeft      = Vec2{0, 0}
	AnchorTopCenter    = Vec2{0.5, 0}
	AnchorTopRight     = Vec2{1, 0}
	AnchorCenterLeft   = Vec2{0, 0.5}
	AnchorCenter       = Vec2{0.5, 0.5}
	AnchorCenterRight  = Vec2{1, 0.5}
	AnchorBottomLeft   = Vec2{0, 1}
	AnchorBottomCenter = Vec2{0.5, 1}
	AnchorBottomRight  = Vec2{1, 1}
)

// SpatialEffect displaces sprite vertices. The applied magnitude is the raw
// (unclamped) wave output times Intensity; Intensity 0 is the disabled
// sentinel, so the zero value contributes nothing.
//
// Vertices live in sprite-local space with the origin at the sprite center.
// The manipulation pivots around Anchor: the evaluator translates by
// -(Anchor-0.5)*spriteSize, applies the op, and translates back. Spatial
// effects in a stack compose in order, each transforming the previous result.
type SpatialEffect struct {
	Phase     Phase
	Wave      Wave
	Op        SpatialOp
	Intensity float64
	Anchor    Vec2
}

// NewSpatialEffect returns a spatial sub-effect active over the full lifetime.
func NewSpatialEffect(wave Wave, op SpatialOp, intensity float64, anchor Vec2) SpatialEffect {
	return SpatialEffect{Phase: FullWindow, Wave: wave, Op: op, Intensity: intensity, Anchor: anchor}
}
