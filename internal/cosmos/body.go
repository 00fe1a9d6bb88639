// Package cosmos defines the celestial body registry: which bodies
// exist, how they nest, and where they sit in real and scene space.
package cosmos

import (
	"fmt"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/ephem"
)

// Kind is the closed set of body categories. Visibility and trail
// anchoring switch on this tag, never on anything open-ended.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
	KindMoon
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// Body describes one celestial body. Parent is empty only for the root.
type Body struct {
	Name     string
	Kind     Kind
	Parent   string  // Name of the body this one orbits ("" for the root)
	RadiusKm float64 // Real physical radius
	Color    string  // Display color (hex)
	MinLevel int     // Player level required to unlock as a destination

	Landable                 bool // Ship may land here
	AlwaysRenderIfDiscovered bool // Render once unlocked even if never visited
}

// Registry holds the body graph and resolves positions through an
// ephemeris provider. Construction validates the ancestor invariant:
// exactly one root, every other body's parent chain terminates at it,
// no cycles.
type Registry struct {
	bodies   map[string]*Body
	order    []string // insertion order, for stable iteration
	root     string
	provider ephem.Provider
}

// NewRegistry builds and validates a registry.
func NewRegistry(bodies []Body, provider ephem.Provider) (*Registry, error) {
	r := &Registry{
		bodies:   make(map[string]*Body, len(bodies)),
		provider: provider,
	}

	for i := range bodies {
		b := bodies[i]
		if b.Name == "" {
			return nil, fmt.Errorf("cosmos: body %d has no name", i)
		}
		if _, dup := r.bodies[b.Name]; dup {
			return nil, fmt.Errorf("cosmos: duplicate body %q", b.Name)
		}
		r.bodies[b.Name] = &b
		r.order = append(r.order, b.Name)

		if b.Parent == "" {
			if r.root != "" {
				return nil, fmt.Errorf("cosmos: multiple roots: %q and %q", r.root, b.Name)
			}
			r.root = b.Name
		}
	}

	if r.root == "" {
		return nil, fmt.Errorf("cosmos: no root body")
	}

	// Every ancestor chain must reach the root without cycling.
	for name, b := range r.bodies {
		seen := map[string]bool{name: true}
		for cur := b; cur.Parent != ""; {
			parent, ok := r.bodies[cur.Parent]
			if !ok {
				return nil, fmt.Errorf("cosmos: body %q orbits unknown body %q", cur.Name, cur.Parent)
			}
			if seen[parent.Name] {
				return nil, fmt.Errorf("cosmos: orbit cycle through %q", parent.Name)
			}
			seen[parent.Name] = true
			cur = parent
		}
	}

	return r, nil
}

// Get returns a body by name.
func (r *Registry) Get(name string) (*Body, bool) {
	b, ok := r.bodies[name]
	return b, ok
}

// Root returns the root body (the star everything ultimately orbits).
func (r *Registry) Root() *Body {
	return r.bodies[r.root]
}

// All returns all bodies in registration order.
func (r *Registry) All() []*Body {
	out := make([]*Body, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.bodies[name])
	}
	return out
}

// PositionAt returns the body's real position in kilometers relative to
// the root, summing parent-relative ephemeris offsets up the chain.
// The root sits at the origin.
func (r *Registry) PositionAt(name string, t time.Time) (astro.Vec3, error) {
	b, ok := r.bodies[name]
	if !ok {
		return astro.Vec3{}, fmt.Errorf("cosmos: %w", ephem.ErrUnknownBody{Body: name})
	}

	var pos astro.Vec3
	for b.Parent != "" {
		rel, err := r.provider.PositionAt(b.Name, t)
		if err != nil {
			return astro.Vec3{}, fmt.Errorf("cosmos: position of %q: %w", b.Name, err)
		}
		pos = pos.Add(rel)
		b = r.bodies[b.Parent]
	}
	return pos, nil
}

// PeriodDays returns the body's orbital period in days, or 0 for the
// root and for bodies the provider doesn't know.
func (r *Registry) PeriodDays(name string) float64 {
	return r.provider.PeriodDays(name)
}

// RelativePositionAt returns the body's real position in kilometers
// relative to its parent. The root returns the origin.
func (r *Registry) RelativePositionAt(name string, t time.Time) (astro.Vec3, error) {
	b, ok := r.bodies[name]
	if !ok {
		return astro.Vec3{}, fmt.Errorf("cosmos: %w", ephem.ErrUnknownBody{Body: name})
	}
	if b.Parent == "" {
		return astro.Vec3{}, nil
	}
	rel, err := r.provider.PositionAt(name, t)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("cosmos: position of %q: %w", name, err)
	}
	return rel, nil
}
