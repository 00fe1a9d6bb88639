package ephem

import (
	"errors"
	"testing"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
)

func TestTableProviderAvailable(t *testing.T) {
	p := NewTableProvider()

	for _, body := range []string{"Mercury", "Earth", "Moon", "Titan", "Pluto"} {
		if !p.Available(body) {
			t.Errorf("Available(%q) = false, want true", body)
		}
	}
	if p.Available("Krypton") {
		t.Error("Available(Krypton) = true, want false")
	}
}

func TestTableProviderUnknownBody(t *testing.T) {
	p := NewTableProvider()

	_, err := p.PositionAt("Krypton", time.Now())
	if err == nil {
		t.Fatal("expected error for unknown body")
	}
	var unknown ErrUnknownBody
	if !errors.As(err, &unknown) {
		t.Errorf("error type = %T, want ErrUnknownBody", err)
	}
	if unknown.Body != "Krypton" {
		t.Errorf("error body = %q, want Krypton", unknown.Body)
	}
}

func TestTableProviderEarthDistance(t *testing.T) {
	p := NewTableProvider()

	pos, err := p.PositionAt("Earth", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}

	// Earth stays within ~2% of 1 AU from the Sun.
	rAU := astro.KmToAU(pos.Norm())
	if rAU < 0.97 || rAU > 1.03 {
		t.Errorf("Earth heliocentric distance = %v AU, want ~1", rAU)
	}
}

func TestTableProviderMoonDistance(t *testing.T) {
	p := NewTableProvider()

	pos, err := p.PositionAt("Moon", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}

	// Geocentric distance between perigee and apogee.
	r := pos.Norm()
	if r < 356000 || r > 407000 {
		t.Errorf("Moon geocentric distance = %v km, want 356k-407k", r)
	}
}

func TestTableProviderDayCache(t *testing.T) {
	p := NewTableProvider()
	day := time.Date(2026, 8, 23, 3, 0, 0, 0, time.UTC)

	a, err := p.PositionAt("Mars", day)
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}

	// Same UTC day, different hour: must hit the cache and be identical.
	b, err := p.PositionAt("Mars", day.Add(18*time.Hour))
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}
	if a != b {
		t.Errorf("same-day positions differ: %v vs %v", a, b)
	}
	if got := p.CacheSize(); got != 1 {
		t.Errorf("cache size = %d, want 1", got)
	}

	// Next day gets its own entry and a different position.
	c, err := p.PositionAt("Mars", day.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}
	if c == a {
		t.Error("positions two days apart are identical")
	}
	if got := p.CacheSize(); got != 2 {
		t.Errorf("cache size = %d, want 2", got)
	}
}
