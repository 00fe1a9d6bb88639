// Package ephem provides ephemeris data for celestial body positions.
//
// Positions come from precomputed Keplerian element tables, not a
// propagator: the renderer needs "where is Mars today", looked up cheaply
// and deterministically, never a physically exact state vector.
package ephem

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
)

// Provider defines the interface for ephemeris data sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// PositionAt returns the body's position relative to its orbital
	// primary at the given time, in kilometers (ecliptic frame).
	PositionAt(body string, t time.Time) (astro.Vec3, error)

	// Available returns true if this provider can supply data for the body.
	Available(body string) bool

	// PeriodDays returns the body's orbital period about its primary in
	// days, or 0 if unknown.
	PeriodDays(body string) float64
}

// ErrUnknownBody is returned for bodies with no element table entry.
type ErrUnknownBody struct {
	Body string
}

func (e ErrUnknownBody) Error() string {
	return fmt.Sprintf("ephem: unknown body %q", e.Body)
}

// cacheKey identifies one body's position on one UTC calendar day.
type cacheKey struct {
	body string
	day  string // YYYY-MM-DD
}

// TableProvider resolves positions from static orbital element tables,
// caching results per body per UTC day. Safe for concurrent use.
type TableProvider struct {
	mu       sync.RWMutex
	elements map[string]astro.OrbitalElements
	cache    map[cacheKey]astro.Vec3
}

// NewTableProvider creates a provider over the default element tables.
func NewTableProvider() *TableProvider {
	return NewTableProviderWith(DefaultElements())
}

// NewTableProviderWith creates a provider over custom element tables.
func NewTableProviderWith(elements map[string]astro.OrbitalElements) *TableProvider {
	return &TableProvider{
		elements: elements,
		cache:    make(map[cacheKey]astro.Vec3),
	}
}

// Name implements Provider.
func (p *TableProvider) Name() string {
	return "kepler-tables"
}

// Available implements Provider.
func (p *TableProvider) Available(body string) bool {
	_, ok := p.elements[body]
	return ok
}

// PositionAt implements Provider. Positions are quantized to the UTC
// calendar day: the scene changes day over day, not frame over frame.
func (p *TableProvider) PositionAt(body string, t time.Time) (astro.Vec3, error) {
	el, ok := p.elements[body]
	if !ok {
		return astro.Vec3{}, ErrUnknownBody{Body: body}
	}

	key := cacheKey{body: body, day: t.UTC().Format("2006-01-02")}

	p.mu.RLock()
	pos, hit := p.cache[key]
	p.mu.RUnlock()
	if hit {
		return pos, nil
	}

	// Evaluate at the day's noon so the sample sits mid-quantum.
	day := t.UTC().Truncate(24 * time.Hour).Add(12 * time.Hour)
	pos = el.PositionAt(astro.DaysSinceJ2000(day))

	p.mu.Lock()
	p.cache[key] = pos
	p.mu.Unlock()

	return pos, nil
}

// PeriodDays implements Provider.
func (p *TableProvider) PeriodDays(body string) float64 {
	el, ok := p.elements[body]
	if !ok {
		return 0
	}
	return el.PeriodDays
}

// CacheSize returns the number of cached day-positions (for tests).
func (p *TableProvider) CacheSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}
