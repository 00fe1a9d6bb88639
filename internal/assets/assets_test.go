package assets

import (
	"strings"
	"testing"
)

func TestTextureKnownBody(t *testing.T) {
	s := NewStore(nil)
	tex := s.Texture("Earth", "#4F94CD")

	if tex.Flat {
		t.Error("known body got the flat fallback")
	}
	if len(tex.Glyphs) == 0 || len(tex.Glyphs) != len(tex.Colors) {
		t.Fatalf("glyphs/colors misaligned: %d vs %d", len(tex.Glyphs), len(tex.Colors))
	}
	for i, c := range tex.Colors {
		if !strings.HasPrefix(c, "#") || len(c) != 7 {
			t.Errorf("color %d = %q, want #rrggbb", i, c)
		}
	}
}

func TestTextureFallbacks(t *testing.T) {
	s := NewStore(nil)

	// Unknown body: default ramp, still usable.
	tex := s.Texture("Xyzzy", "#112233")
	if len(tex.Glyphs) == 0 {
		t.Error("unknown body got no ramp")
	}

	// Bad color: flat fallback.
	tex = s.Texture("Earth", "not-a-color")
	if !tex.Flat {
		t.Error("bad color should produce the flat fallback")
	}
}

func TestShadesMonotoneLength(t *testing.T) {
	base := mustHex("#4F94CD")
	for _, n := range []int{0, 1, 2, 5} {
		got := Shades(base, n)
		if len(got) != n {
			t.Errorf("Shades(_, %d) returned %d entries", n, len(got))
		}
	}
}

func TestFadeBounds(t *testing.T) {
	if got := Fade("#FFFFFF", 0); got != "#000000" {
		t.Errorf("Fade(white, 0) = %s, want black", got)
	}
	if got := Fade("#4F94CD", 1); got != "#4f94cd" {
		t.Errorf("Fade(c, 1) = %s, want the color itself", got)
	}
	if got := Fade("bogus", 0.5); got == "" {
		t.Error("bad input should still return a color")
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := Blend("#000000", "#FFFFFF", 0); got != "#000000" {
		t.Errorf("Blend(.., 0) = %s", got)
	}
	if got := Blend("#000000", "#FFFFFF", 1); got != "#ffffff" {
		t.Errorf("Blend(.., 1) = %s", got)
	}
	if got := Blend("bad", "#FFFFFF", 0.5); got != "#808080" {
		t.Errorf("bad input = %s, want gray fallback", got)
	}
}
