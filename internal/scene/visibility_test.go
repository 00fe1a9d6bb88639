package scene

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/cosmos"
	"github.com/litescript/ls-voyager/internal/ephem"
	"github.com/litescript/ls-voyager/internal/logging"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := cosmos.NewRegistry(cosmos.DefaultBodies(), ephem.NewTableProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewEngine(DefaultConfig(), reg, logging.Discard())
}

func baseContext() FrameContext {
	return FrameContext{
		Now:              time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		CurrentBody:      "Earth",
		Level:            1,
		Visited:          map[string]bool{},
		CameraPos:        astro.Vec3{X: 200, Y: 200, Z: 100},
		FOVRad:           math.Pi / 3,
		ViewportHeightPx: 40,
		ShowTrails:       true,
		OutlinesEnabled:  true,
	}
}

func TestFrameMoonVisibility(t *testing.T) {
	e := testEngine(t)
	ctx := baseContext()
	e.Frame(ctx)

	if n, _ := e.Nodes().Lookup("Moon"); !n.Visible {
		t.Error("Moon should be visible while the ship is at Earth")
	}
	if n, _ := e.Nodes().Lookup("Io"); n.Visible {
		t.Error("Io should be hidden while neither current nor target is in the Jupiter system")
	}

	// Start traveling toward Jupiter: its moons become relevant.
	ctx.TargetBody = "Jupiter"
	e.Frame(ctx)

	if n, _ := e.Nodes().Lookup("Io"); !n.Visible {
		t.Error("Io should be visible while traveling to Jupiter")
	}
	if n, _ := e.Nodes().Lookup("Moon"); !n.Visible {
		t.Error("Moon should remain visible (current system)")
	}
	if n, _ := e.Nodes().Lookup("Titan"); n.Visible {
		t.Error("Titan should stay hidden (Saturn system not relevant)")
	}
}

func TestFramePlanetVisibility(t *testing.T) {
	e := testEngine(t)
	ctx := baseContext() // level 1

	e.Frame(ctx)

	if n, _ := e.Nodes().Lookup("Earth"); !n.Visible {
		t.Error("current planet must be visible")
	}
	if n, _ := e.Nodes().Lookup("Venus"); n.Visible {
		t.Error("Venus (MinLevel 2) should be locked at level 1")
	}
	if n, _ := e.Nodes().Lookup("Sun"); !n.Visible {
		t.Error("the star is always visible")
	}
	// Pluto has AlwaysRenderIfDiscovered=false: level alone never shows it.
	ctx.Level = 99
	e.Frame(ctx)
	if n, _ := e.Nodes().Lookup("Pluto"); n.Visible {
		t.Error("Pluto should require visit/current/target, not just level")
	}

	ctx.Visited["Pluto"] = true
	e.Frame(ctx)
	if n, _ := e.Nodes().Lookup("Pluto"); !n.Visible {
		t.Error("visited Pluto should be visible")
	}

	// A locked planet still shows when it's the travel target.
	ctx = baseContext()
	ctx.TargetBody = "Neptune"
	e.Frame(ctx)
	if n, _ := e.Nodes().Lookup("Neptune"); !n.Visible {
		t.Error("travel target must be visible regardless of level")
	}
}

func TestOutlineTargetThresholds(t *testing.T) {
	const fadeOut, fadeIn = 2.0, 6.0

	if got := outlineTarget(1.0, fadeOut, fadeIn); got != 0 {
		t.Errorf("below fadeOut: target = %v, want 0", got)
	}
	if got := outlineTarget(8.0, fadeOut, fadeIn); got != 1 {
		t.Errorf("above fadeIn: target = %v, want 1", got)
	}
	if got := outlineTarget(4.0, fadeOut, fadeIn); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("midpoint: target = %v, want 0.5", got)
	}
	if got := outlineTarget(3.0, fadeOut, fadeIn); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("quarter point: target = %v, want 0.25", got)
	}
}

func TestOutlineSmoothingConverges(t *testing.T) {
	e := testEngine(t)
	ctx := baseContext()
	// Park the camera close to Earth so its pixel radius is large.
	earthPos, err := e.reg.VisualPositionAt("Earth", ctx.Now)
	if err != nil {
		t.Fatalf("VisualPositionAt: %v", err)
	}
	ctx.CameraPos = earthPos.Add(astro.Vec3{X: 3})

	var prev float64
	for i := 0; i < 120; i++ {
		e.Frame(ctx)
		n, _ := e.Nodes().Lookup("Earth")
		if n.Outline < prev-1e-9 {
			t.Fatalf("outline decreased while converging: %v -> %v", prev, n.Outline)
		}
		prev = n.Outline
	}

	n, _ := e.Nodes().Lookup("Earth")
	if n.Outline < 0.95 {
		t.Errorf("outline = %v after 120 frames, want near 1", n.Outline)
	}
	if !n.OutlineEnabled {
		t.Error("outline should be enabled at high intensity")
	}
}

func TestOutlineInvisibleSnapsToZero(t *testing.T) {
	e := testEngine(t)
	ctx := baseContext()
	ctx.CameraPos = astro.Vec3{X: 150}
	ctx.TargetBody = "Jupiter"
	e.Frame(ctx)

	// Force Io's outline up, then make it invisible; no smoothing on exit.
	n, _ := e.Nodes().Lookup("Io")
	n.Outline = 0.8
	n.OutlineEnabled = true

	ctx.TargetBody = "" // Jupiter system no longer relevant
	e.Frame(ctx)

	if n.Outline != 0 {
		t.Errorf("invisible body outline = %v, want exactly 0", n.Outline)
	}
	if n.OutlineEnabled {
		t.Error("invisible body should have outline disabled")
	}
}

func TestOutlinesDisabledGlobally(t *testing.T) {
	e := testEngine(t)
	ctx := baseContext()
	ctx.OutlinesEnabled = false
	e.Frame(ctx)

	for _, n := range e.Nodes().All() {
		if n.Outline != 0 || n.OutlineEnabled {
			t.Errorf("node %s has outline %v with outlines disabled", n.Name, n.Outline)
		}
	}
}

func TestNodeDisposeIdempotent(t *testing.T) {
	r := NewNodeRegistry()
	n := r.Node("Earth")
	n.Trail = []TrailPoint{{}, {}}
	n.hasTrail = true

	n.Dispose()
	if !n.Disposed() || n.Trail != nil {
		t.Error("dispose should free trail geometry")
	}
	n.Dispose() // second call must be a no-op
	if !n.Disposed() {
		t.Error("node should stay disposed")
	}

	r.DisposeAll()
	r.DisposeAll()
}
