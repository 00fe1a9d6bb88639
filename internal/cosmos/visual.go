package cosmos

import (
	"math"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
)

// Scene scaling. Real distances span five orders of magnitude; display
// radii are cube-root compressed so the Sun still dwarfs a moon without
// making everything else subpixel.
const (
	// SceneUnitKm is the number of real kilometers per scene unit.
	SceneUnitKm = 1e6

	// displayRadiusFactor scales cbrt(radius_km) into scene units.
	displayRadiusFactor = 0.04

	// MoonOrbitExaggeration stretches a moon's parent-relative offset so
	// compressed display radii don't swallow its orbit.
	MoonOrbitExaggeration = 2.5

	// moonSurfaceGap is extra clearance beyond the parent's display
	// surface, in scene units.
	moonSurfaceGap = 0.15
)

// SceneScale converts a real kilometer vector into scene units.
func SceneScale(km astro.Vec3) astro.Vec3 {
	return km.Scale(1 / SceneUnitKm)
}

// DisplayRadius returns the on-scene radius for a body's real radius.
// Compressive, not proportional.
func DisplayRadius(radiusKm float64) float64 {
	if radiusKm <= 0 {
		return 0
	}
	return displayRadiusFactor * math.Cbrt(radiusKm)
}

// DisplayRadius returns the body's scene-unit display radius.
func (b *Body) DisplayRadius() float64 {
	return DisplayRadius(b.RadiusKm)
}

// VisualPositionAt returns the body's scene-space display position.
//
// Top-level bodies sit at their scaled real position. Bodies that orbit
// a parent are pushed outward along the parent->child vector: the offset
// starts at the parent's display surface and grows with the exaggerated
// real separation, so a moon never renders inside its parent's
// (non-physical) display sphere.
func (r *Registry) VisualPositionAt(name string, t time.Time) (astro.Vec3, error) {
	b, ok := r.bodies[name]
	if !ok || b.Parent == "" {
		pos, err := r.PositionAt(name, t)
		if err != nil {
			return astro.Vec3{}, err
		}
		return SceneScale(pos), nil
	}

	parentVis, err := r.VisualPositionAt(b.Parent, t)
	if err != nil {
		return astro.Vec3{}, err
	}

	rel, err := r.RelativePositionAt(name, t)
	if err != nil {
		return astro.Vec3{}, err
	}

	relScene := SceneScale(rel)
	dir := relScene.Normalized()
	if dir == (astro.Vec3{}) {
		// Coincident with parent: no offset rather than a NaN direction.
		return parentVis, nil
	}

	parent := r.bodies[b.Parent]
	dist := parent.DisplayRadius() + b.DisplayRadius() + moonSurfaceGap +
		relScene.Norm()*MoonOrbitExaggeration
	return parentVis.Add(dir.Scale(dist)), nil
}
