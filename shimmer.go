package shimmer

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs inside the Kage shader at render time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the identity texel (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB is a color triple without alpha. Effect colors and the multiply/add
// coefficient channels are RGB; alpha has its own coefficient pair.
type RGB struct {
	R, G, B float64
}

// RGBWhite is the all-ones triple.
var RGBWhite = RGB{1, 1, 1}

// Vec2 is a 2D vector used for positions, sizes, and anchors throughout the API.
type Vec2 struct {
	X, Y float64
}

// scale returns c with every channel multiplied by s.
func (c RGB) scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// add returns the componentwise sum of c and o.
func (c RGB) add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// mul returns the componentwise product of c and o.
func (c RGB) mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fract returns the fractional part of v as x - floor(x), always in [0, 1).
// This is the GPU fract, not math.Mod: negative inputs wrap upward.
func fract(v float64) float64 {
	return v - math.Floor(v)
}

// epsDenom floors near-zero denominators so degenerate configurations divide
// safely instead of producing Inf/NaN.
func epsDenom(v float64) float64 {
	return math.Max(v, 1e-5)
}
