package shimmer

import "math"

// ApplyCoefficients combines one sampled texel with evaluated coefficients
// and returns the final color. This is the CPU reference for the combination
// the Renderer's Kage shader performs per fragment; both apply the same
// steps in the same order:
//
//  1. contributive pass: rgb*ColorMul + ColorAdd, clamped to [0, 1]
//  2. sequential pass: rgb*SeqMul + SeqAdd
//  3. optional HSV adjustment: hue shifted and wrapped, sat/val scaled and
//     clamped
//  4. alpha: texels with coverage (alpha > 1e-4) get alpha*AlphaMul+AlphaAdd
//     clamped; fully transparent texels keep their alpha, so additive alpha
//     never materializes pixels out of nothing
//
// Inputs are straight (non-premultiplied) colors.
func ApplyCoefficients(texel Color, c *Coefficients) Color {
	r := clamp01(texel.R*c.ColorMul.R + c.ColorAdd.R)
	g := clamp01(texel.G*c.ColorMul.G + c.ColorAdd.G)
	b := clamp01(texel.B*c.ColorMul.B + c.ColorAdd.B)

	r = r*c.SeqMul.R + c.SeqAdd.R
	g = g*c.SeqMul.G + c.SeqAdd.G
	b = b*c.SeqMul.B + c.SeqAdd.B

	if c.HSV {
		h, s, v := RGBToHSV(r, g, b)
		h = fract(h + c.HueShift)
		s = clamp01(s * c.SatMul)
		v = clamp01(v * c.ValMul)
		r, g, b = HSVToRGB(h, s, v)
	}

	a := texel.A
	if a > 1e-4 {
		a = clamp01(a*c.AlphaMul + c.AlphaAdd)
	}
	return Color{clamp01(r), clamp01(g), clamp01(b), a}
}

// RGBToHSV converts an RGB triple to hue/saturation/value, hue in [0, 1).
// Grays report hue 0; black reports saturation 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	d := mx - mn
	if d > 0 {
		switch mx {
		case r:
			h = math.Mod((g-b)/d, 6) / 6
			if h < 0 {
				h++
			}
		case g:
			h = ((b-r)/d + 2) / 6
		default:
			h = ((r-g)/d + 4) / 6
		}
	}
	if mx > 0 {
		s = d / mx
	}
	return h, s, mx
}

// HSVToRGB converts hue/saturation/value back to RGB. Hue wraps.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h -= math.Floor(h)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	case 5:
		return v, p, q
	}
	return 0, 0, 0
}
