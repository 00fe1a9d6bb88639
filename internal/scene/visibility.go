package scene

import (
	"math"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/cosmos"
	"github.com/litescript/ls-voyager/internal/logging"
)

// Config holds the tunable visibility, outline, and trail constants.
// These shape the feel of the map; none of the specific values is an
// invariant beyond producing smooth, bounded interpolation.
type Config struct {
	// Outline fade thresholds in apparent pixels. Below FadeOutPx the
	// outline fades out; above FadeInPx it is fully on.
	FadeOutPx float64
	FadeInPx  float64

	// OutlineBlend is the per-frame smoothing factor toward the outline
	// target intensity.
	OutlineBlend float64

	// MinOutlineIntensity disables outline rendering entirely below this
	// smoothed intensity, so near-invisible outlines cost nothing.
	MinOutlineIntensity float64

	// TrailSpanOrbits is the fraction of an orbital period a trail
	// covers.
	TrailSpanOrbits float64

	// TrailSamples is the number of vertices per trail.
	TrailSamples int

	// TrailMaxAlpha is the alpha of the newest trail vertex.
	TrailMaxAlpha float64

	// TrailFadePower shapes the power-law fade near the body itself.
	TrailFadePower float64

	// TrailNearFadeRadii is the size of that fade region, in multiples
	// of the body's visual radius.
	TrailNearFadeRadii float64
}

// DefaultConfig returns the standard scene tuning.
func DefaultConfig() Config {
	return Config{
		FadeOutPx:           2,
		FadeInPx:            6,
		OutlineBlend:        0.12,
		MinOutlineIntensity: 0.05,
		TrailSpanOrbits:     0.75,
		TrailSamples:        64,
		TrailMaxAlpha:       0.6,
		TrailFadePower:      2.0,
		TrailNearFadeRadii:  4.0,
	}
}

// FrameContext is the per-frame input to the visibility pass: the
// polled progress snapshot fields the pass needs, plus camera geometry.
// Recomputed from scratch each frame; the engine carries no hidden
// assumptions about the previous frame's values.
type FrameContext struct {
	Now time.Time

	CurrentBody string // body the ship occupies or departed from
	TargetBody  string // travel destination, "" when idle

	Level   int
	Visited map[string]bool

	CameraPos        astro.Vec3
	FOVRad           float64
	ViewportHeightPx int

	ShowTrails      bool
	OutlinesEnabled bool
}

// Engine decides, per body per frame, visibility, outline intensity,
// and trail geometry.
type Engine struct {
	cfg   Config
	reg   *cosmos.Registry
	nodes *NodeRegistry
	log   *logging.Logger
}

// NewEngine creates a visibility/trail engine over a body registry.
func NewEngine(cfg Config, reg *cosmos.Registry, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{
		cfg:   cfg,
		reg:   reg,
		nodes: NewNodeRegistry(),
		log:   log,
	}
}

// Nodes exposes the node registry (render layer reads it, engine owns it).
func (e *Engine) Nodes() *NodeRegistry {
	return e.nodes
}

// Frame runs one visibility/outline/trail pass over every body.
func (e *Engine) Frame(ctx FrameContext) {
	relevant := e.relevantSystems(ctx)

	for _, body := range e.reg.All() {
		node := e.nodes.Node(body.Name)
		if node.Disposed() {
			continue
		}

		pos, err := e.reg.VisualPositionAt(body.Name, ctx.Now)
		if err != nil {
			// Bad ephemeris data degrades to an invisible body, never a
			// crash.
			e.log.Warn("scene: position for %s: %v", body.Name, err)
			node.Visible = false
			node.Outline = 0
			node.OutlineEnabled = false
			continue
		}
		node.Pos = pos
		node.Radius = body.DisplayRadius()

		node.Visible = e.bodyVisible(body, ctx, relevant)
		e.updateOutline(node, ctx)
		e.updateTrail(node, body, ctx)
	}
}

// relevantSystems is the set of parent names for the current body and,
// if traveling, the target body. Moons render only inside these systems.
func (e *Engine) relevantSystems(ctx FrameContext) map[string]bool {
	relevant := make(map[string]bool, 2)
	for _, name := range []string{ctx.CurrentBody, ctx.TargetBody} {
		if name == "" {
			continue
		}
		body, ok := e.reg.Get(name)
		if !ok {
			continue
		}
		if body.Parent != "" {
			relevant[body.Parent] = true
		}
		// A traveler at a planet is "in" that planet's system too.
		relevant[body.Name] = true
	}
	return relevant
}

func (e *Engine) bodyVisible(body *cosmos.Body, ctx FrameContext, relevant map[string]bool) bool {
	isCurrent := body.Name == ctx.CurrentBody
	isTarget := body.Name == ctx.TargetBody
	visited := ctx.Visited[body.Name]

	switch body.Kind {
	case cosmos.KindStar:
		return true
	case cosmos.KindMoon:
		return relevant[body.Parent]
	case cosmos.KindPlanet:
		unlocked := ctx.Level >= body.MinLevel
		if body.AlwaysRenderIfDiscovered {
			return unlocked || visited || isCurrent || isTarget
		}
		return visited || isCurrent || isTarget
	default:
		return false
	}
}

// updateOutline drives the smoothed outline intensity from the body's
// apparent pixel size.
func (e *Engine) updateOutline(node *VisualNode, ctx FrameContext) {
	if !node.Visible || !ctx.OutlinesEnabled {
		// No smoothing on the way out: an invisible body must not keep
		// a ghost outline.
		node.Outline = 0
		node.OutlineEnabled = false
		return
	}

	px := PixelRadius(node.Radius, ctx.CameraPos.Distance(node.Pos), ctx.FOVRad, ctx.ViewportHeightPx)
	target := outlineTarget(px, e.cfg.FadeOutPx, e.cfg.FadeInPx)

	node.Outline += (target - node.Outline) * e.cfg.OutlineBlend
	node.OutlineEnabled = node.Outline >= e.cfg.MinOutlineIntensity
}

// outlineTarget maps an apparent pixel radius through the two-threshold
// fade to a target intensity in [0,1].
func outlineTarget(px, fadeOutPx, fadeInPx float64) float64 {
	switch {
	case px <= fadeOutPx:
		return 0
	case px >= fadeInPx:
		return 1
	default:
		return (px - fadeOutPx) / (fadeInPx - fadeOutPx)
	}
}

// easeCubic is a cubic ease-in used for trail alpha ramps.
func easeCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return t * t * t
}
