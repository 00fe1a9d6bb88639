package scene

import (
	"math"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/cosmos"
)

// updateTrail applies the lazy rebuild policy: trail geometry is
// recomputed only when the body has drifted more than one visual radius
// from the anchor it was last built at. Moons keep their trail in
// parent-relative space and only the origin moves with the parent.
func (e *Engine) updateTrail(node *VisualNode, body *cosmos.Body, ctx FrameContext) {
	if !ctx.ShowTrails || !node.Visible || body.Parent == "" {
		return
	}

	// Re-anchor a moon's ring to wherever its parent sits today, even
	// when the geometry itself is untouched.
	if node.TrailRelative {
		if parentPos, err := e.reg.VisualPositionAt(body.Parent, ctx.Now); err == nil {
			node.TrailOrigin = parentPos
		}
	}

	if node.HasTrail() && node.Pos.Distance(node.TrailAnchor) <= node.Radius {
		return
	}

	e.rebuildTrail(node, body, ctx.Now)
}

// rebuildTrail samples the body's path over a fraction of its orbital
// period and assigns per-vertex alpha: a cubic ramp from 0 (oldest) to
// the max (newest), attenuated near the newest point by a power-law fade
// so the trail vanishes right where the body currently sits.
func (e *Engine) rebuildTrail(node *VisualNode, body *cosmos.Body, now time.Time) {
	period := e.reg.PeriodDays(body.Name)
	if period <= 0 || e.cfg.TrailSamples < 2 {
		return
	}

	spanDays := period * e.cfg.TrailSpanOrbits
	n := e.cfg.TrailSamples

	isMoon := body.Kind == cosmos.KindMoon
	points := make([]TrailPoint, 0, n)

	var origin astro.Vec3
	if isMoon {
		parentPos, err := e.reg.VisualPositionAt(body.Parent, now)
		if err != nil {
			e.log.Warn("scene: trail origin for %s: %v", body.Name, err)
			return
		}
		origin = parentPos
	}

	// Oldest sample first; sample i=n-1 is "now".
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		at := now.Add(-time.Duration((1 - frac) * spanDays * 24 * float64(time.Hour)))

		var p astro.Vec3
		if isMoon {
			// Historical offset from the parent, re-anchored to the
			// parent's current position at render time.
			vis, err := e.reg.VisualPositionAt(body.Name, at)
			if err != nil {
				continue
			}
			parentAt, err := e.reg.VisualPositionAt(body.Parent, at)
			if err != nil {
				continue
			}
			p = vis.Sub(parentAt)
		} else {
			vis, err := e.reg.VisualPositionAt(body.Name, at)
			if err != nil {
				continue
			}
			p = vis
		}

		points = append(points, TrailPoint{Pos: p, Alpha: e.cfg.TrailMaxAlpha * easeCubic(frac)})
	}

	if len(points) < 2 {
		return
	}

	// Power-law attenuation keyed on distance to the newest point.
	newest := points[len(points)-1].Pos
	fadeRadius := e.cfg.TrailNearFadeRadii * node.Radius
	if fadeRadius > 0 {
		for i := range points {
			d := points[i].Pos.Distance(newest)
			if d < fadeRadius {
				points[i].Alpha *= math.Pow(d/fadeRadius, e.cfg.TrailFadePower)
			}
		}
	}

	node.Trail = points
	node.TrailRelative = isMoon
	node.TrailOrigin = origin
	node.TrailAnchor = node.Pos
	node.hasTrail = true
}

// TrailWorldPoints resolves a node's trail into absolute scene space.
func (n *VisualNode) TrailWorldPoints() []TrailPoint {
	if !n.hasTrail {
		return nil
	}
	if !n.TrailRelative {
		return n.Trail
	}
	out := make([]TrailPoint, len(n.Trail))
	for i, p := range n.Trail {
		out[i] = TrailPoint{Pos: n.TrailOrigin.Add(p.Pos), Alpha: p.Alpha}
	}
	return out
}
