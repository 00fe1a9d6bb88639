// Package assets provides per-body "textures" for the terminal
// renderer: glyph shading ramps and color palettes derived from each
// body's base color. Lookup failures degrade to a flat fallback and a
// logged warning; they never fail the frame.
package assets

import (
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-voyager/internal/logging"
)

// defaultGlyphRamp shades a disc from limb to center.
const defaultGlyphRamp = "·░▒▓█"

// glyphRamps maps body names to their shading character ramps. A body
// absent here renders with the default ramp.
var glyphRamps = map[string]string{
	"Sun":     "░▒▓█@",
	"Mercury": "·∙░▒▓",
	"Venus":   "·░▒▒▓",
	"Earth":   "·░▒▓●",
	"Moon":    "·∙░░▒",
	"Mars":    "·░▒▓▓",
	"Jupiter": "─═▒▓█",
	"Saturn":  "─░▒▓▓",
	"Uranus":  "·░░▒▓",
	"Neptune": "·░▒▓█",
	"Pluto":   "·∙∙░▒",
}

// Texture is one body's render material: a glyph ramp from limb to
// center and a matching color per ramp step.
type Texture struct {
	Name   string
	Glyphs []rune
	Colors []string // hex, aligned with Glyphs
	Flat   bool     // true when this is the fallback material
}

// Store hands out textures by body name, warning once per missing or
// unparseable entry.
type Store struct {
	log *logging.Logger

	mu     sync.Mutex
	warned map[string]bool
}

// NewStore creates a texture store.
func NewStore(log *logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{log: log, warned: make(map[string]bool)}
}

// Texture returns the material for a body with the given base color.
// Unknown bodies or bad colors get a flat gray fallback.
func (s *Store) Texture(name, baseHex string) Texture {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		s.warnOnce(name, "unparseable color %q for %s, using flat fallback", baseHex, name)
		return flatTexture(name)
	}

	ramp, ok := glyphRamps[name]
	if !ok {
		s.warnOnce(name, "no glyph ramp for %s, using default", name)
		ramp = defaultGlyphRamp
	}

	glyphs := []rune(ramp)
	return Texture{
		Name:   name,
		Glyphs: glyphs,
		Colors: Shades(base, len(glyphs)),
	}
}

func (s *Store) warnOnce(key, format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	s.log.Warn(format, args...)
}

func flatTexture(name string) Texture {
	return Texture{
		Name:   name,
		Glyphs: []rune(defaultGlyphRamp),
		Colors: Shades(mustHex("#808080"), len([]rune(defaultGlyphRamp))),
		Flat:   true,
	}
}

// Shades returns n hex colors running dark to bright around the base,
// blended in Lab space so the ramp stays perceptually even.
func Shades(base colorful.Color, n int) []string {
	if n <= 0 {
		return nil
	}
	dark := base.BlendLab(mustHex("#000000"), 0.55)
	bright := base.BlendLab(mustHex("#FFFFFF"), 0.25)

	out := make([]string, n)
	if n == 1 {
		out[0] = base.Hex()
		return out
	}
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		out[i] = dark.BlendLab(bright, f).Clamped().Hex()
	}
	return out
}

// Fade blends a hex color toward black by 1-alpha, for trail vertices
// and dimmed labels. Bad input returns gray rather than an error.
func Fade(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = mustHex("#808080")
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return mustHex("#000000").BlendLab(c, alpha).Clamped().Hex()
}

// Blend mixes two hex colors in Lab space. Used for outline emphasis
// between a body's color and white.
func Blend(hexA, hexB string, t float64) string {
	a, errA := colorful.Hex(hexA)
	b, errB := colorful.Hex(hexB)
	if errA != nil || errB != nil {
		return "#808080"
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
