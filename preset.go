package shimmer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presets is a library of named effects loaded from YAML, plus optional
// atlas geometry. Effects are built and validated once at parse time;
// lookups return plain values ready to push onto a stack.
//
// One-shot presets carry their lifetime start as an offset from zero; shift
// with Effect.StartingAt when triggering them at a live clock value.
type Presets struct {
	atlas    Atlas
	hasAtlas bool
	effects  map[string]Effect
	names    []string
}

// The wire shapes below mirror the YAML schema. Enum fields are strings
// ("sine", "add", "scale_y", "bottom_center"); colors are component lists,
// with an optional fourth component carrying the legacy composite-mode
// encoding that DecodeCompositeMode translates.

type presetFile struct {
	Atlas   *atlasConfig   `yaml:"atlas"`
	Effects []effectConfig `yaml:"effects"`
}

type atlasConfig struct {
	TextureSize [2]float64 `yaml:"texture_size,flow"`
	CellSize    [2]float64 `yaml:"cell_size,flow"`
	SpriteSize  [2]float64 `yaml:"sprite_size,flow"`
	Padding     float64    `yaml:"padding"`
}

type effectConfig struct {
	Name     string          `yaml:"name"`
	Lifetime lifetimeConfig  `yaml:"lifetime"`
	Color    []colorConfig   `yaml:"color"`
	Alpha    *alphaConfig    `yaml:"alpha"`
	Spatial  []spatialConfig `yaml:"spatial"`
}

type lifetimeConfig struct {
	Looping  bool    `yaml:"looping"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
}

type phaseConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

type envelopeConfig struct {
	Attack  float64 `yaml:"attack"`
	Hold    float64 `yaml:"hold"`
	Release float64 `yaml:"release"`
	EaseIn  float64 `yaml:"ease_in"`
	EaseOut float64 `yaml:"ease_out"`
}

type waveConfig struct {
	Kind         string          `yaml:"kind"`
	Freq         float64         `yaml:"freq"`
	Amp          float64         `yaml:"amp"`
	Bias         float64         `yaml:"bias"`
	Phase        float64         `yaml:"phase"`
	CenterPhase  bool            `yaml:"center_phase"`
	AmpEnvelope  *envelopeConfig `yaml:"amp_envelope"`
	FreqEnvelope *envelopeConfig `yaml:"freq_envelope"`
}

type colorConfig struct {
	Wave      waveConfig   `yaml:"wave"`
	Color     []float64    `yaml:"color,flow"`
	Blend     string       `yaml:"blend"`
	Composite string       `yaml:"composite"`
	Phase     *phaseConfig `yaml:"phase"`
}

type alphaConfig struct {
	Wave   waveConfig   `yaml:"wave"`
	Target float64      `yaml:"target"`
	Phase  *phaseConfig `yaml:"phase"`
}

type spatialConfig struct {
	Wave      waveConfig   `yaml:"wave"`
	Op        string       `yaml:"op"`
	Intensity float64      `yaml:"intensity"`
	Anchor    string       `yaml:"anchor"`
	Phase     *phaseConfig `yaml:"phase"`
}

// LoadPresets reads and parses a YAML preset file.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shimmer: read preset file: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets parses YAML preset data. Unknown enum strings, malformed
// colors, duplicate names, and over-limit sub-effect lists are errors;
// omitted fields get the same defaults the value constructors apply.
func ParsePresets(data []byte) (*Presets, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("shimmer: parse presets: %w", err)
	}

	p := &Presets{effects: make(map[string]Effect, len(f.Effects))}

	if f.Atlas != nil {
		def := DefaultAtlas()
		p.atlas = Atlas{
			TextureSize: vec2OrDefault(f.Atlas.TextureSize, def.TextureSize),
			CellSize:    vec2OrDefault(f.Atlas.CellSize, def.CellSize),
			SpriteSize:  vec2OrDefault(f.Atlas.SpriteSize, def.SpriteSize),
			Padding:     f.Atlas.Padding,
		}
		if err := p.atlas.Validate(); err != nil {
			return nil, err
		}
		p.hasAtlas = true
	}

	for i := range f.Effects {
		cfg := &f.Effects[i]
		if cfg.Name == "" {
			return nil, fmt.Errorf("shimmer: preset %d has no name", i)
		}
		if _, dup := p.effects[cfg.Name]; dup {
			return nil, fmt.Errorf("shimmer: duplicate preset %q", cfg.Name)
		}
		e, err := cfg.build()
		if err != nil {
			return nil, fmt.Errorf("shimmer: preset %q: %w", cfg.Name, err)
		}
		p.effects[cfg.Name] = e
		p.names = append(p.names, cfg.Name)
	}
	return p, nil
}

// Effect returns the named preset effect.
func (p *Presets) Effect(name string) (Effect, bool) {
	e, ok := p.effects[name]
	return e, ok
}

// Names returns the preset names in file order.
func (p *Presets) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// AtlasGeometry returns the atlas block, if the file carried one.
func (p *Presets) AtlasGeometry() (Atlas, bool) {
	return p.atlas, p.hasAtlas
}

// Stack assembles the named presets into an effect stack, in order.
func (p *Presets) Stack(names ...string) (EffectStack, error) {
	var s EffectStack
	if len(names) > MaxEffects {
		return s, fmt.Errorf("shimmer: stack of %d presets exceeds the %d effect limit", len(names), MaxEffects)
	}
	for i, name := range names {
		e, ok := p.effects[name]
		if !ok {
			return EffectStack{}, fmt.Errorf("shimmer: unknown preset %q", name)
		}
		s.Effects[i] = e
	}
	return s, nil
}

func (c *effectConfig) build() (Effect, error) {
	var e Effect
	e.Lifetime = Lifetime{
		Enabled:  true,
		Looping:  c.Lifetime.Looping,
		Start:    c.Lifetime.Start,
		Duration: c.Lifetime.Duration,
	}
	if e.Lifetime.Duration <= 0 {
		return e, fmt.Errorf("lifetime duration %g must be positive", e.Lifetime.Duration)
	}

	if len(c.Color) > MaxColorEffects {
		return e, fmt.Errorf("%d color sub-effects exceed the limit of %d", len(c.Color), MaxColorEffects)
	}
	for i := range c.Color {
		ce, err := c.Color[i].build()
		if err != nil {
			return e, fmt.Errorf("color %d: %w", i, err)
		}
		e.Color[i] = ce
	}

	if c.Alpha != nil {
		wave, err := c.Alpha.Wave.build()
		if err != nil {
			return e, fmt.Errorf("alpha: %w", err)
		}
		e.Alpha = NewAlphaEffect(wave, c.Alpha.Target)
		e.Alpha.Phase = buildPhase(c.Alpha.Phase)
	}

	if len(c.Spatial) > MaxSpatialEffects {
		return e, fmt.Errorf("%d spatial sub-effects exceed the limit of %d", len(c.Spatial), MaxSpatialEffects)
	}
	for i := range c.Spatial {
		se, err := c.Spatial[i].build()
		if err != nil {
			return e, fmt.Errorf("spatial %d: %w", i, err)
		}
		e.Spatial[i] = se
	}
	return e, nil
}

func (c *colorConfig) build() (ColorEffect, error) {
	wave, err := c.Wave.build()
	if err != nil {
		return ColorEffect{}, err
	}
	blend, err := parseBlendMode(c.Blend)
	if err != nil {
		return ColorEffect{}, err
	}

	var rgb RGB
	composite := CompositeSequential
	switch len(c.Color) {
	case 3:
		rgb = RGB{c.Color[0], c.Color[1], c.Color[2]}
	case 4:
		// Legacy encoding: the fourth component selects the composite mode.
		rgb = RGB{c.Color[0], c.Color[1], c.Color[2]}
		composite = DecodeCompositeMode(c.Color[3])
	default:
		return ColorEffect{}, fmt.Errorf("color needs 3 components (or 4 with a legacy composite alpha), got %d", len(c.Color))
	}
	if c.Composite != "" {
		composite, err = parseCompositeMode(c.Composite)
		if err != nil {
			return ColorEffect{}, err
		}
	}

	ce := NewColorEffect(wave, rgb, blend, composite)
	ce.Phase = buildPhase(c.Phase)
	return ce, nil
}

func (c *spatialConfig) build() (SpatialEffect, error) {
	wave, err := c.Wave.build()
	if err != nil {
		return SpatialEffect{}, err
	}
	op, err := parseSpatialOp(c.Op)
	if err != nil {
		return SpatialEffect{}, err
	}
	anchor, err := parseAnchor(c.Anchor)
	if err != nil {
		return SpatialEffect{}, err
	}
	intensity := c.Intensity
	if intensity == 0 {
		intensity = 1
	}
	se := NewSpatialEffect(wave, op, intensity, anchor)
	se.Phase = buildPhase(c.Phase)
	return se, nil
}

func (c *waveConfig) build() (Wave, error) {
	kind, err := parseWaveKind(c.Kind)
	if err != nil {
		return Wave{}, err
	}
	w := Wave{Kind: kind, Freq: c.Freq, Amp: c.Amp, Bias: c.Bias, Phase: c.Phase}
	// Same non-inert defaults the constructors apply.
	switch kind {
	case WaveConstant, WaveRawPhase:
		if w.Amp == 0 {
			w.Amp = 1
		}
	case WaveLinear, WaveQuadratic, WaveExponential:
		if w.Freq == 0 {
			w.Freq = 1
		}
	}
	if c.AmpEnvelope != nil {
		w.AmpEnvelope = c.AmpEnvelope.build()
	}
	if c.FreqEnvelope != nil {
		w.FreqEnvelope = c.FreqEnvelope.build()
	}
	if c.CenterPhase {
		w = w.CenterPhase()
	}
	return w, nil
}

func (c *envelopeConfig) build() Envelope {
	env := NewEnvelope(c.Attack, c.Hold, c.Release)
	if c.EaseIn != 0 {
		env = env.EaseIn(c.EaseIn)
	}
	if c.EaseOut != 0 {
		env = env.EaseOut(c.EaseOut)
	}
	return env
}

func buildPhase(c *phaseConfig) Phase {
	if c == nil {
		return FullWindow
	}
	return NewPhase(c.Start, c.End)
}

func vec2OrDefault(v [2]float64, def Vec2) Vec2 {
	if v == ([2]float64{}) {
		return def
	}
	return Vec2{v[0], v[1]}
}

func parseWaveKind(s string) (WaveKind, error) {
	switch s {
	case "", "sine":
		return WaveSine, nil
	case "triangle":
		return WaveTriangle, nil
	case "square":
		return WaveSquare, nil
	case "sawtooth", "saw":
		return WaveSawtooth, nil
	case "constant":
		return WaveConstant, nil
	case "linear":
		return WaveLinear, nil
	case "quadratic":
		return WaveQuadratic, nil
	case "exponential", "exp":
		return WaveExponential, nil
	case "raw_phase", "raw":
		return WaveRawPhase, nil
	}
	return 0, fmt.Errorf("unknown wave kind %q", s)
}

func parseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "", "lerp":
		return BlendLerp, nil
	case "add":
		return BlendAdd, nil
	case "multiply":
		return BlendMultiply, nil
	case "screen":
		return BlendScreen, nil
	case "hsv":
		return BlendHSV, nil
	}
	return 0, fmt.Errorf("unknown blend mode %q", s)
}

func parseCompositeMode(s string) (CompositeMode, error) {
	switch s {
	case "sequential":
		return CompositeSequential, nil
	case "contributive":
		return CompositeContributive, nil
	case "additive":
		return CompositeAdditive, nil
	}
	return 0, fmt.Errorf("unknown composite mode %q", s)
}

func parseSpatialOp(s string) (SpatialOp, error) {
	switch s {
	case "translate_x":
		return SpatialTranslateX, nil
	case "translate_y":
		return SpatialTranslateY, nil
	case "scale_x":
		return SpatialScaleX, nil
	case "scale_y":
		return SpatialScaleY, nil
	case "rotate":
		return SpatialRotate, nil
	case "shear_x":
		return SpatialShearX, nil
	case "shear_y":
		return SpatialShearY, nil
	}
	return 0, fmt.Errorf("unknown spatial op %q", s)
}

func parseAnchor(s string) (Vec2, error) {
	switch s {
	case "top_left":
		return AnchorTopLeft, nil
	case "top_center":
		return AnchorTopCenter, nil
	case "top_right":
		return AnchorTopRight, nil
	case "center_left":
		return AnchorCenterLeft, nil
	case "", "center":
		return AnchorCenter, nil
	case "center_right":
		return AnchorCenterRight, nil
	case "bottom_left":
		return AnchorBottomLeft, nil
	case "bottom_center":
		return AnchorBottomCenter, nil
	case "bottom_right":
		return AnchorBottomRight, nil
	}
	return Vec2{}, fmt.Errorf("unknown anchor %q", s)
}
