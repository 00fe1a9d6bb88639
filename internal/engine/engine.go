// Package engine is the frame scheduler: the only component with a
// notion of "now". Once per display refresh it advances the camera,
// runs the visibility/trail pass, and drives the travel synchronizer,
// in that order, so progress commits always evaluate after position
// interpolation and landing finalization always evaluates after the
// commit.
package engine

import (
	"fmt"
	"time"

	"github.com/litescript/ls-voyager/internal/camera"
	"github.com/litescript/ls-voyager/internal/cosmos"
	"github.com/litescript/ls-voyager/internal/logging"
	"github.com/litescript/ls-voyager/internal/progress"
	"github.com/litescript/ls-voyager/internal/scene"
	"github.com/litescript/ls-voyager/internal/travel"
)

// nominalDT seeds the first frame's delta before a real interval exists.
const nominalDT = 33 * time.Millisecond

// Engine wires the registry, camera, scene pass, and synchronizer into
// one per-frame pipeline over the shared progress store.
type Engine struct {
	log   *logging.Logger
	reg   *cosmos.Registry
	store *progress.Manager

	camCfg camera.Config
	cam    *camera.Controller // nil until the first Resize
	vis    *scene.Engine
	sync   *travel.Synchronizer

	viewportW int
	viewportH int
	lastFrame time.Time
	ship      travel.Ship
	recovered bool // reset already signaled for corrupt state
	torn      bool
}

// New creates an engine over a validated registry and progress store.
// The camera is constructed lazily on the first Resize, when a viewport
// exists; transitions raised before then are queued.
func New(reg *cosmos.Registry, store *progress.Manager, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{
		log:    log,
		reg:    reg,
		store:  store,
		camCfg: camera.DefaultConfig(),
		vis:    scene.NewEngine(scene.DefaultConfig(), reg, log),
		sync:   travel.New(travel.DefaultConfig(), store, log),
	}
}

// Registry returns the body registry the engine renders.
func (e *Engine) Registry() *cosmos.Registry {
	return e.reg
}

// Camera returns the controller, nil before the first Resize.
func (e *Engine) Camera() *camera.Controller {
	return e.cam
}

// Scene returns the visibility/trail engine (render layer reads its nodes).
func (e *Engine) Scene() *scene.Engine {
	return e.vis
}

// Ship returns the vehicle state computed by the last frame.
func (e *Engine) Ship() travel.Ship {
	return e.ship
}

// Resize records the viewport and constructs the camera on first use.
// Idempotent, and safe to call after teardown (no-op).
func (e *Engine) Resize(w, h int) {
	if e.torn || w <= 0 || h <= 0 {
		return
	}
	e.viewportW, e.viewportH = w, h
	if e.cam == nil {
		e.cam = camera.New(e.camCfg)
		e.sync.AttachCamera(time.Now(), e.cam)
	}
	e.cam.SetViewport(w, h)
}

// Focus records whether the map view is active. Unfocused, no travel
// animation advances; refocusing restarts from the live delta.
func (e *Engine) Focus(focused bool) {
	e.sync.SetFocused(focused)
}

// StartTravel begins a leg from the ship's current body to target,
// measured between the two bodies' surface endpoints at departure time.
func (e *Engine) StartTravel(target string, now time.Time) error {
	snap := e.store.Snapshot()

	dest, ok := e.reg.Get(target)
	if !ok {
		return fmt.Errorf("engine: unknown destination %q", target)
	}
	if !dest.Landable {
		return fmt.Errorf("engine: %s is not landable", target)
	}
	if dest.MinLevel > snap.Level {
		return fmt.Errorf("engine: %s unlocks at level %d", target, dest.MinLevel)
	}

	cur, ok := e.reg.Get(snap.Position.StartingLocation)
	if !ok {
		return fmt.Errorf("engine: unknown current body %q", snap.Position.StartingLocation)
	}

	curPos, err := e.reg.VisualPositionAt(cur.Name, now)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	destPos, err := e.reg.VisualPositionAt(dest.Name, now)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	startSurface, targetSurface := scene.SurfaceEndpoints(
		curPos, cur.DisplayRadius(), destPos, dest.DisplayRadius())
	distance := startSurface.Distance(targetSurface)

	return e.store.BeginTravel(target, distance, now)
}

// Frame advances one display refresh: camera, then visibility and
// trails, then the travel synchronizer. No-op after teardown.
func (e *Engine) Frame(now time.Time) {
	if e.torn {
		return
	}

	dt := nominalDT
	if !e.lastFrame.IsZero() {
		dt = now.Sub(e.lastFrame)
	}
	e.lastFrame = now

	snap := e.store.Snapshot()
	snap = e.recoverMissingBodies(snap, now)
	leg := e.resolveLeg(snap, now)

	if e.cam != nil {
		e.cam.SetPivot(e.ship.Pos)
		e.cam.Frame(now, dt)
	}

	e.vis.Frame(e.frameContext(now, snap))
	e.ship = e.sync.Frame(now, snap, leg)
}

// Teardown stops the engine and releases scene geometry exactly once.
// Callers must stop scheduling frames before invoking it; Frame guards
// regardless.
func (e *Engine) Teardown() {
	if e.torn {
		return
	}
	e.torn = true
	e.vis.Nodes().DisposeAll()
}

// recoverMissingBodies handles corrupted persisted state: a location or
// target naming a body the registry doesn't know. The ship falls back
// to the root and the travel state is reset; never fatal.
func (e *Engine) recoverMissingBodies(snap progress.Snapshot, now time.Time) progress.Snapshot {
	pos := snap.Position
	_, curOK := e.reg.Get(pos.StartingLocation)
	targetOK := true
	if pos.Traveling() {
		_, targetOK = e.reg.Get(pos.Target)
	}
	if curOK && targetOK {
		return snap
	}

	if !e.recovered {
		e.recovered = true
		e.log.Error("persisted state names unknown body (at %q, target %q); resetting travel",
			pos.StartingLocation, pos.Target)
		e.store.ResetTravelState(now)
	}
	snap = e.store.Snapshot()
	if _, ok := e.reg.Get(snap.Position.StartingLocation); !ok {
		snap.Position.StartingLocation = e.reg.Root().Name
	}
	return snap
}

// resolveLeg computes the frame's travel geometry from the snapshot.
func (e *Engine) resolveLeg(snap progress.Snapshot, now time.Time) travel.Leg {
	pos := snap.Position

	cur, _ := e.reg.Get(pos.StartingLocation)
	curPos, err := e.reg.VisualPositionAt(cur.Name, now)
	if err != nil {
		e.log.Error("position of %s: %v", cur.Name, err)
		curPos = e.ship.Pos
	}
	leg := travel.Leg{
		StartCenter: curPos,
		StartRadius: cur.DisplayRadius(),
	}

	if pos.Traveling() {
		dest, _ := e.reg.Get(pos.Target)
		destPos, err := e.reg.VisualPositionAt(dest.Name, now)
		if err != nil {
			e.log.Error("position of %s: %v", dest.Name, err)
			destPos = curPos
		}
		leg.TargetCenter = destPos
		leg.TargetRadius = dest.DisplayRadius()
	}
	return leg
}

// frameContext assembles the visibility pass input from the snapshot
// and camera geometry.
func (e *Engine) frameContext(now time.Time, snap progress.Snapshot) scene.FrameContext {
	ctx := scene.FrameContext{
		Now:              now,
		CurrentBody:      snap.Position.StartingLocation,
		TargetBody:       snap.Position.Target,
		Level:            snap.Level,
		Visited:          snap.CompletedPlanets,
		FOVRad:           e.camCfg.FOVRad,
		ViewportHeightPx: e.viewportH,
		ShowTrails:       snap.ShowTrails,
		OutlinesEnabled:  snap.ShowOutlines,
	}
	if e.cam != nil {
		ctx.CameraPos = e.cam.Position()
	}
	return ctx
}
