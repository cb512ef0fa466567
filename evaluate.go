package shimmer

// Coefficients is the per-draw output of evaluating an effect stack at one
// clock value: the color multiply/add pairs for both composite families, the
// HSV adjustment, the alpha multiply/add pair, and the accumulated spatial
// affine. Apply them to sampled texels with ApplyCoefficients (or the
// equivalent Kage shader in Renderer) and to vertices with TransformPoint.
type Coefficients struct {
	ColorMul RGB
	ColorAdd RGB
	SeqMul   RGB
	SeqAdd   RGB

	HueShift float64
	SatMul   float64
	ValMul   float64
	HSV      bool

	AlphaMul float64
	AlphaAdd float64

	Transform [6]float64
}

// IdentityCoefficients returns the coefficients that leave texels and
// vertices untouched. Evaluating an empty or fully inactive stack returns
// exactly this value.
func IdentityCoefficients() Coefficients {
	return Coefficients{
		ColorMul:  RGBWhite,
		SeqMul:    RGBWhite,
		SatMul:    1,
		ValMul:    1,
		AlphaMul:  1,
		Transform: identityTransform,
	}
}

// TransformPoint applies the spatial affine to a sprite-local point (origin
// at the sprite center, Y down).
func (c *Coefficients) TransformPoint(p Vec2) Vec2 {
	x, y := transformPoint(c.Transform, p.X, p.Y)
	return Vec2{x, y}
}

// colorBucket accumulates one blend mode's contributive-family members.
type colorBucket struct {
	colorSum  RGB
	weightSum float64
	maxWeight float64
	summed    bool
}

// strength is the bucket's aggregate weight: the summed member weight when
// any member was Additive, the maximum member weight otherwise.
func (b *colorBucket) strength() float64 {
	if b.summed {
		return b.weightSum
	}
	return b.maxWeight
}

// EvaluateStack evaluates every active effect in the stack at clock t and
// returns the combined draw coefficients. spriteSize is the drawable's size
// in the same units as its vertices; spatial anchors pivot relative to it.
//
// The function is pure and allocation-free: it reads the stack, writes
// nothing, and holds no state between calls, so concurrent evaluation of
// independent stacks is safe. The caller must not mutate the stack during
// the call; copy first (EffectStack is a plain value) when in doubt.
//
// Inside one evaluation, contributive-family color sub-effects pool into
// per-blend buckets applied in Lerp, Multiply, Add order; sequential-family
// ones fold immediately in encounter order. Alpha folds per effect in stack
// order, and spatial manipulations compose cumulatively, each transforming
// the previous result.
func EvaluateStack(s *EffectStack, t float64, spriteSize Vec2) Coefficients {
	c := IdentityCoefficients()
	var buckets [3]colorBucket // indexed by BlendMode: Lerp, Add, Multiply

	for i := range s.Effects {
		e := &s.Effects[i]
		progress, active := e.Lifetime.Progress(t)
		if !active {
			continue
		}

		for j := range e.Color {
			ce := &e.Color[j]
			localT, ok := ce.Phase.Window(progress)
			if !ok {
				continue
			}
			weight, raw := ce.Wave.Eval(localT)

			if ce.Composite == CompositeContributive || ce.Composite == CompositeAdditive {
				if ce.Blend > BlendMultiply {
					continue // Screen/HSV have no contributive bucket
				}
				b := &buckets[ce.Blend]
				b.colorSum = b.colorSum.add(ce.Color.scale(weight))
				b.weightSum += weight
				if weight > b.maxWeight {
					b.maxWeight = weight
				}
				if ce.Composite == CompositeAdditive {
					b.summed = true
				}
				continue
			}

			switch ce.Blend {
			case BlendLerp:
				k := 1 - weight
				c.SeqMul = c.SeqMul.scale(k)
				c.SeqAdd = c.SeqAdd.scale(k).add(ce.Color.scale(weight))
			case BlendAdd:
				c.SeqAdd = c.SeqAdd.add(ce.Color.scale(weight))
			case BlendMultiply:
				k := RGB{1 - weight, 1 - weight, 1 - weight}.add(ce.Color.scale(weight))
				c.SeqMul = c.SeqMul.mul(k)
				c.SeqAdd = c.SeqAdd.mul(k)
			case BlendScreen:
				b := ce.Color.scale(weight)
				k := RGB{1 - b.R, 1 - b.G, 1 - b.B}
				c.SeqMul = c.SeqMul.mul(k)
				c.SeqAdd = c.SeqAdd.mul(k).add(b)
			case BlendHSV:
				// HSV reads the raw wave so hue can swing negative and
				// sat/val can push past the clamp range.
				c.HueShift += ce.Color.R * raw
				c.SatMul *= 1 + ce.Color.G*raw
				c.ValMul *= 1 + ce.Color.B*raw
				c.HSV = true
			}
		}

		if localT, ok := e.Alpha.Phase.Window(progress); ok {
			if a, _ := e.Alpha.Wave.Eval(localT); a > 0 {
				k := 1 - a
				c.AlphaMul *= k
				c.AlphaAdd = c.AlphaAdd*k + clamp01(e.Alpha.Target)*a
			}
		}

		for j := range e.Spatial {
			se := &e.Spatial[j]
			if se.Intensity == 0 {
				continue
			}
			localT, ok := se.Phase.Window(progress)
			if !ok {
				continue
			}
			_, raw := se.Wave.Eval(localT)
			val := raw * se.Intensity
			pivot := Vec2{
				X: (se.Anchor.X - 0.5) * spriteSize.X,
				Y: (se.Anchor.Y - 0.5) * spriteSize.Y,
			}
			c.Transform = multiplyAffine(manipTransform(se.Op, val, pivot), c.Transform)
		}
	}

	if b := &buckets[BlendLerp]; b.weightSum > 0 {
		str := clamp01(b.strength())
		avg := b.colorSum.scale(1 / b.weightSum)
		c.ColorMul = c.ColorMul.scale(1 - str)
		c.ColorAdd = c.ColorAdd.scale(1 - str).add(avg.scale(str))
	}
	if b := &buckets[BlendMultiply]; b.weightSum > 0 {
		str := clamp01(b.strength())
		avg := b.colorSum.scale(1 / b.weightSum)
		k := RGB{1 - str, 1 - str, 1 - str}.add(avg.scale(str))
		c.ColorMul = c.ColorMul.mul(k)
		c.ColorAdd = c.ColorAdd.mul(k)
	}
	if b := &buckets[BlendAdd]; b.weightSum > 0 {
		// Add-bucket strength is deliberately unclamped: summed additive
		// contributions may exceed full strength.
		str := b.strength()
		avg := b.colorSum.scale(1 / b.weightSum)
		c.ColorAdd = c.ColorAdd.add(avg.scale(str))
	}
	return c
}
