// Package camera implements the gesture-driven orbit camera: a small
// state machine over yaw/pitch/radius with inertia, exponential
// smoothing, and scripted cinematic transitions between vantages.
package camera

import (
	"math"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
)

// Mode is the camera's control state.
type Mode int

const (
	ModeFreeOrbit Mode = iota // gesture/autorotate driven
	ModePinching
	ModePanning
	ModeScripted
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFreeOrbit:
		return "free-orbit"
	case ModePinching:
		return "pinching"
	case ModePanning:
		return "panning"
	case ModeScripted:
		return "scripted"
	default:
		return "unknown"
	}
}

// Config holds the camera tuning constants. Tunables, not invariants.
type Config struct {
	MinRadius     float64
	MaxRadius     float64
	DefaultRadius float64

	MaxPitch float64 // radians; pitch clamps to [-MaxPitch, +MaxPitch]
	FOVRad   float64 // vertical field of view

	Smoothing          float64 // per-frame blend of current toward target
	Friction           float64 // per-frame decay of inertial velocity
	StopEpsilon        float64 // inertial velocity below this stops dead
	MaxAngularVelocity float64 // rad/frame clamp on release velocity
	AutorotateRate     float64 // rad/s drift while idle in free orbit

	MoveDuration time.Duration // scripted: fly to the start vantage
	HoldDuration time.Duration // scripted: dwell before travel begins

	SideOnCutoff float64 // scene-unit separation below which yaw locks
	SideOnYaw    float64 // the locked quarter-turn yaw
}

// DefaultConfig returns the standard camera tuning.
func DefaultConfig() Config {
	return Config{
		MinRadius:          2,
		MaxRadius:          600,
		DefaultRadius:      40,
		MaxPitch:           1.35,
		FOVRad:             math.Pi / 3,
		Smoothing:          0.12,
		Friction:           0.94,
		StopEpsilon:        1e-3,
		MaxAngularVelocity: 0.25,
		AutorotateRate:     0.05,
		MoveDuration:       1200 * time.Millisecond,
		HoldDuration:       400 * time.Millisecond,
		SideOnCutoff:       3.0,
		SideOnYaw:          math.Pi / 2,
	}
}

// Controller owns the orbit camera state. It is mutated only from the
// frame loop; gestures arrive as normalized deltas, never raw events.
type Controller struct {
	cfg  Config
	mode Mode

	yaw, pitch, radius                   float64
	targetYaw, targetPitch, targetRadius float64

	// Inertial angular velocity after a pan release, rad/frame.
	velYaw, velPitch float64

	pivot               astro.Vec3
	viewportW           int
	viewportH           int
	autorotate          bool
	autorotateSuspended bool

	transition *Transition
}

// New creates a controller at the default radius looking at the origin.
func New(cfg Config) *Controller {
	c := &Controller{
		cfg:        cfg,
		mode:       ModeFreeOrbit,
		autorotate: true,
	}
	c.radius = cfg.DefaultRadius
	c.targetRadius = cfg.DefaultRadius
	c.pitch = cfg.MaxPitch * 0.35
	c.targetPitch = c.pitch
	return c
}

// Mode returns the current control state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Yaw returns the current (smoothed) yaw angle.
func (c *Controller) Yaw() float64 { return c.yaw }

// Pitch returns the current (smoothed) pitch angle.
func (c *Controller) Pitch() float64 { return c.pitch }

// Radius returns the current (smoothed) orbit radius.
func (c *Controller) Radius() float64 { return c.radius }

// Config returns the controller's tuning.
func (c *Controller) Config() Config { return c.cfg }

// SetAutorotate toggles idle drift in free orbit.
func (c *Controller) SetAutorotate(on bool) {
	c.autorotate = on
}

// SetViewport records the viewport size used to normalize pan gestures.
// Idempotent; safe with any size including zero (pans become no-ops).
func (c *Controller) SetViewport(w, h int) {
	c.viewportW = w
	c.viewportH = h
}

// SetPivot re-centers the orbit on the look target. Called every frame
// so pan/zoom always orbit the traveler, not a fixed origin.
func (c *Controller) SetPivot(p astro.Vec3) {
	c.pivot = p
}

// Pivot returns the current orbit pivot.
func (c *Controller) Pivot() astro.Vec3 { return c.pivot }

// Pan applies a drag translation in viewport pixels: a full viewport
// width is one yaw revolution, a full height half a pitch revolution.
func (c *Controller) Pan(dxPx, dyPx float64) {
	if c.mode == ModeScripted || c.viewportW == 0 || c.viewportH == 0 {
		return
	}
	c.mode = ModePanning
	c.velYaw, c.velPitch = 0, 0

	c.setTargetYaw(c.targetYaw - dxPx/float64(c.viewportW)*2*math.Pi)
	c.setTargetPitch(c.targetPitch + dyPx/float64(c.viewportH)*math.Pi)
}

// EndPan releases a drag; residual gesture velocity (px/frame) becomes
// clamped angular inertia that decays under friction.
func (c *Controller) EndPan(vxPx, vyPx float64) {
	if c.mode != ModePanning {
		return
	}
	c.mode = ModeFreeOrbit

	if c.viewportW == 0 || c.viewportH == 0 {
		return
	}
	c.velYaw = clamp(-vxPx/float64(c.viewportW)*2*math.Pi, -c.cfg.MaxAngularVelocity, c.cfg.MaxAngularVelocity)
	c.velPitch = clamp(vyPx/float64(c.viewportH)*math.Pi, -c.cfg.MaxAngularVelocity, c.cfg.MaxAngularVelocity)
}

// Pinch scales the target radius inversely with the pinch scale factor,
// clamped to the radius bounds.
func (c *Controller) Pinch(scale float64) {
	if c.mode == ModeScripted || scale <= 0 {
		return
	}
	c.mode = ModePinching
	c.setTargetRadius(c.targetRadius / scale)
}

// EndPinch releases a pinch.
func (c *Controller) EndPinch() {
	if c.mode == ModePinching {
		c.mode = ModeFreeOrbit
	}
}

// DoubleTap resets the radius to the default, converging with the same
// smoothing as any other update, never a snap.
func (c *Controller) DoubleTap() {
	if c.mode == ModeScripted {
		return
	}
	c.setTargetRadius(c.cfg.DefaultRadius)
}

// Bounds are enforced at the point of target assignment, so current
// values can never chase an out-of-range target.

func (c *Controller) setTargetYaw(y float64) {
	c.targetYaw = y
}

func (c *Controller) setTargetPitch(p float64) {
	c.targetPitch = clamp(p, -c.cfg.MaxPitch, c.cfg.MaxPitch)
}

func (c *Controller) setTargetRadius(r float64) {
	c.targetRadius = clamp(r, c.cfg.MinRadius, c.cfg.MaxRadius)
}

// Frame advances the camera one frame. dt is the wall-clock frame delta.
func (c *Controller) Frame(now time.Time, dt time.Duration) {
	switch c.mode {
	case ModeScripted:
		c.frameScripted(now)
	case ModeFreeOrbit:
		// Inertia from a released pan, decaying under friction.
		if c.velYaw != 0 || c.velPitch != 0 {
			c.setTargetYaw(c.targetYaw + c.velYaw)
			c.setTargetPitch(c.targetPitch + c.velPitch)
			c.velYaw *= c.cfg.Friction
			c.velPitch *= c.cfg.Friction
			if math.Abs(c.velYaw) < c.cfg.StopEpsilon {
				c.velYaw = 0
			}
			if math.Abs(c.velPitch) < c.cfg.StopEpsilon {
				c.velPitch = 0
			}
		} else if c.autorotate && !c.autorotateSuspended {
			c.setTargetYaw(c.targetYaw + c.cfg.AutorotateRate*dt.Seconds())
		}
	}

	// Exponential smoothing of current toward target, all modes.
	c.yaw += (c.targetYaw - c.yaw) * c.cfg.Smoothing
	c.pitch += (c.targetPitch - c.pitch) * c.cfg.Smoothing
	c.radius += (c.targetRadius - c.radius) * c.cfg.Smoothing
}

// Position returns the camera's world position on its orbit sphere.
func (c *Controller) Position() astro.Vec3 {
	cosP := math.Cos(c.pitch)
	return c.pivot.Add(astro.Vec3{
		X: c.radius * cosP * math.Cos(c.yaw),
		Y: c.radius * cosP * math.Sin(c.yaw),
		Z: c.radius * math.Sin(c.pitch),
	})
}

// Basis returns the camera's orthonormal view basis: forward toward the
// pivot, right, and up.
func (c *Controller) Basis() (forward, right, up astro.Vec3) {
	forward = c.pivot.Sub(c.Position()).Normalized()
	if forward == (astro.Vec3{}) {
		forward = astro.Vec3{X: -1}
	}
	right = forward.Cross(astro.Vec3{Z: 1}).Normalized()
	if right == (astro.Vec3{}) {
		// Looking straight down the Z axis.
		right = astro.Vec3{Y: 1}
	}
	up = right.Cross(forward)
	return forward, right, up
}

// Project maps a world point to normalized view coordinates: x/y in
// tan-halffov units (±1 spans the vertical fov) and the view-space
// depth. ok is false behind the near plane.
func (c *Controller) Project(world astro.Vec3) (x, y, depth float64, ok bool) {
	const nearPlane = 0.05

	forward, right, up := c.Basis()
	d := world.Sub(c.Position())

	depth = d.Dot(forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}

	t := math.Tan(c.cfg.FOVRad / 2)
	x = d.Dot(right) / (depth * t)
	y = d.Dot(up) / (depth * t)
	return x, y, depth, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
