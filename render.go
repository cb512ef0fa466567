package shimmer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// The effect shader applies per-draw coefficients to every texel. It uses
// //kage:unit pixels as required by Ebitengine. Ebitengine uses premultiplied
// alpha; the shader un-premultiplies before processing and re-premultiplies
// the output. The combination steps and constants mirror ApplyCoefficients.
const effectShaderSrc = `//kage:unit pixels
package main

var ColorMul vec3
var ColorAdd vec3
var SeqMul vec3
var SeqAdd vec3
var Hsv vec4
var AlphaCo vec2

func rgbToHsv(c vec3) vec3 {
	mx := max(c.r, max(c.g, c.b))
	mn := min(c.r, min(c.g, c.b))
	d := mx - mn
	h := 0.0
	if d > 0 {
		if mx == c.r {
			h = mod((c.g-c.b)/d, 6.0) / 6.0
		} else if mx == c.g {
			h = ((c.b-c.r)/d + 2.0) / 6.0
		} else {
			h = ((c.r-c.g)/d + 4.0) / 6.0
		}
	}
	s := 0.0
	if mx > 0 {
		s = d / mx
	}
	return vec3(h, s, mx)
}

func hsvToRgb(h, s, v float) vec3 {
	h = fract(h)
	i := floor(h * 6.0)
	f := h*6.0 - i
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	if i < 1.0 {
		return vec3(v, t, p)
	} else if i < 2.0 {
		return vec3(q, v, p)
	} else if i < 3.0 {
		return vec3(p, v, t)
	} else if i < 4.0 {
		return vec3(p, q, v)
	} else if i < 5.0 {
		return vec3(t, p, v)
	}
	return vec3(v, p, q)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	// Un-premultiply alpha.
	if c.a > 0 {
		c.rgb /= c.a
	}
	// Contributive pass, clamped before the sequential fold sees it.
	rgb := clamp(c.rgb*ColorMul+ColorAdd, 0.0, 1.0)
	// Sequential pass.
	rgb = rgb*SeqMul + SeqAdd
	// HSV adjustment: hue wraps, saturation and value clamp.
	if Hsv.w > 0.5 {
		hsv := rgbToHsv(rgb)
		hsv.x = fract(hsv.x + Hsv.x)
		hsv.y = clamp(hsv.y*Hsv.y, 0.0, 1.0)
		hsv.z = clamp(hsv.z*Hsv.z, 0.0, 1.0)
		rgb = hsvToRgb(hsv.x, hsv.y, hsv.z)
	}
	rgb = clamp(rgb, 0.0, 1.0)
	// Alpha only applies where the texel has coverage, so additive alpha
	// cannot materialize pixels out of fully transparent texture.
	a := c.a
	if a > 0.0001 {
		a = clamp(a*AlphaCo.x+AlphaCo.y, 0.0, 1.0)
	}
	// Re-premultiply.
	return vec4(rgb*a, a)
}
`

// Lazy shader compilation; rendering is single-threaded, so no sync.Once.

var effectShader *ebiten.Shader

func ensureEffectShader() *ebiten.Shader {
	if effectShader == nil {
		s, err := ebiten.NewShader([]byte(effectShaderSrc))
		if err != nil {
			panic("shimmer: failed to compile effect shader: " + err.Error())
		}
		effectShader = s
	}
	return effectShader
}

// DrawOptions positions a Draw call and selects its blend. The zero value
// draws at the origin with regular source-over blending.
type DrawOptions struct {
	// X, Y place the sprite's center on the destination.
	X, Y float64
	// Blend is the compositing blend. The zero value is source-over.
	Blend ebiten.Blend
}

// Renderer draws atlas sprites and meshes with an effect stack applied. The
// stack is evaluated on the CPU once per draw; the resulting coefficients go
// to the effect shader as uniforms and are applied per texel on the GPU,
// while the spatial affine lands in the draw geometry.
//
// The uniform buffers are persistent and pre-stored in the uniforms map, so
// a draw performs no per-call allocation. Not safe for concurrent use.
type Renderer struct {
	atlas Atlas

	uniforms map[string]any
	uni      [18]float32 // persistent uniform storage; slice headers below
	shaderOp ebiten.DrawRectShaderOptions
	triOp    ebiten.DrawTrianglesShaderOptions
	triVerts []ebiten.Vertex // preallocated transform buffer (high-water mark)
}

// NewRenderer creates a renderer for sprite sheets laid out per atlas.
// Invalid atlas geometry is warned about in debug mode and drawn as-is.
func NewRenderer(atlas Atlas) *Renderer {
	if err := atlas.Validate(); err != nil {
		debugWarnf("renderer: %v", err)
	}
	r := &Renderer{
		atlas:    atlas,
		uniforms: make(map[string]any, 6),
	}
	r.uniforms["ColorMul"] = r.uni[0:3]
	r.uniforms["ColorAdd"] = r.uni[3:6]
	r.uniforms["SeqMul"] = r.uni[6:9]
	r.uniforms["SeqAdd"] = r.uni[9:12]
	r.uniforms["Hsv"] = r.uni[12:16]
	r.uniforms["AlphaCo"] = r.uni[16:18]
	return r
}

// Atlas returns the renderer's atlas geometry.
func (r *Renderer) Atlas() Atlas {
	return r.atlas
}

// setUniforms writes coefficients into the persistent uniform buffers. The
// slice headers in r.uniforms already point into r.uni, so no allocation.
func (r *Renderer) setUniforms(co *Coefficients) {
	r.uni[0] = float32(co.ColorMul.R)
	r.uni[1] = float32(co.ColorMul.G)
	r.uni[2] = float32(co.ColorMul.B)
	r.uni[3] = float32(co.ColorAdd.R)
	r.uni[4] = float32(co.ColorAdd.G)
	r.uni[5] = float32(co.ColorAdd.B)
	r.uni[6] = float32(co.SeqMul.R)
	r.uni[7] = float32(co.SeqMul.G)
	r.uni[8] = float32(co.SeqMul.B)
	r.uni[9] = float32(co.SeqAdd.R)
	r.uni[10] = float32(co.SeqAdd.G)
	r.uni[11] = float32(co.SeqAdd.B)
	r.uni[12] = float32(co.HueShift)
	r.uni[13] = float32(co.SatMul)
	r.uni[14] = float32(co.ValMul)
	if co.HSV {
		r.uni[15] = 1
	} else {
		r.uni[15] = 0
	}
	r.uni[16] = float32(co.AlphaMul)
	r.uni[17] = float32(co.AlphaAdd)
}

// affineGeoM converts a [a, b, c, d, tx, ty] matrix to an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// Draw evaluates the stack at clock t and draws its sprite from sheet onto
// dst. The sprite cell is selected by the stack's SpriteIndex; the spatial
// affine deforms the sprite around its center before placement at opts.X/Y.
func (r *Renderer) Draw(dst, sheet *ebiten.Image, stack *EffectStack, t float64, opts *DrawOptions) {
	co := EvaluateStack(stack, t, r.atlas.SpriteSize)
	r.DrawCoefficients(dst, sheet, stack.SpriteIndex, &co, opts)
}

// DrawCoefficients draws one sprite with already-evaluated coefficients.
// Use this to draw many sprites sharing a single broadcast stack: evaluate
// once, draw each with its own options.
func (r *Renderer) DrawCoefficients(dst, sheet *ebiten.Image, sprite uint32, co *Coefficients, opts *DrawOptions) {
	shader := ensureEffectShader()
	r.setUniforms(co)

	rect := r.atlas.CellRect(sprite)
	sub := sheet.SubImage(rect).(*ebiten.Image)
	w, h := rect.Dx(), rect.Dy()

	g := &r.shaderOp.GeoM
	g.Reset()
	g.Translate(-float64(w)/2, -float64(h)/2)
	g.Concat(affineGeoM(co.Transform))
	r.shaderOp.Blend = ebiten.Blend{}
	if opts != nil {
		g.Translate(opts.X, opts.Y)
		r.shaderOp.Blend = opts.Blend
	}
	r.shaderOp.Images[0] = sub
	r.shaderOp.Uniforms = r.uniforms
	dst.DrawRectShader(w, h, shader, &r.shaderOp)
}

// DrawVertices draws arbitrary triangles from sheet through the effect
// shader. Vertex positions are in sprite-local space with the origin at the
// shape's center; SrcX/SrcY address sheet pixels. The stack's spatial affine
// and the placement are applied per vertex on the CPU, in the same matrix
// layout the sprite path uses.
func (r *Renderer) DrawVertices(dst, sheet *ebiten.Image, stack *EffectStack, t float64, verts []ebiten.Vertex, indices []uint16, opts *DrawOptions) {
	if len(verts) == 0 || len(indices) == 0 {
		return
	}
	shader := ensureEffectShader()
	co := EvaluateStack(stack, t, r.atlas.SpriteSize)
	r.setUniforms(&co)

	m := co.Transform
	r.triOp.Blend = ebiten.Blend{}
	if opts != nil {
		m = multiplyAffine([6]float64{1, 0, 0, 1, opts.X, opts.Y}, m)
		r.triOp.Blend = opts.Blend
	}

	if cap(r.triVerts) < len(verts) {
		r.triVerts = make([]ebiten.Vertex, len(verts))
	}
	r.triVerts = r.triVerts[:len(verts)]
	a, b, c, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	for i := range verts {
		s := &verts[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		r.triVerts[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR,
			ColorG: s.ColorG,
			ColorB: s.ColorB,
			ColorA: s.ColorA,
		}
	}

	r.triOp.Images[0] = sheet
	r.triOp.Uniforms = r.uniforms
	dst.DrawTrianglesShader(r.triVerts, indices, shader, &r.triOp)
}
