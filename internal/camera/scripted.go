package camera

import (
	"time"
)

// Vantage is a camera orientation independent of radius.
type Vantage struct {
	Yaw   float64
	Pitch float64
}

// Transition is a time-bounded, non-interactive camera animation: fly
// from wherever the camera is to the start vantage, hold, then track the
// travel animation's progress from the start vantage to the end vantage.
type Transition struct {
	Start        time.Time
	MoveDuration time.Duration
	HoldDuration time.Duration
	From, To     Vantage

	// Camera angles captured when the transition began.
	originYaw, originPitch float64

	// Normalized travel progress, fed by the synchronizer each frame so
	// camera and vehicle motion stay visually coupled.
	travelAlpha float64
}

// Pending is a scripted-transition request raised before the controller
// exists (the view can detect a travel delta before its camera is
// constructed). It is consumed exactly once when the controller becomes
// available.
type Pending struct {
	From, To   Vantage
	Separation float64
}

// StartScripted enters the scripted state, flying toward vantageStart
// and later tracking travel progress toward vantageEnd. separation is
// the scene-space distance between the travel endpoints' centers: below
// the side-on cutoff both vantages snap to the fixed quarter-turn yaw
// and autorotate is suspended, because the orbit direction is
// numerically unstable for near-coincident centers.
func (c *Controller) StartScripted(now time.Time, vantageStart, vantageEnd Vantage, separation float64) {
	if separation < c.cfg.SideOnCutoff {
		vantageStart.Yaw = c.cfg.SideOnYaw
		vantageEnd.Yaw = c.cfg.SideOnYaw
		c.autorotateSuspended = true
	}

	c.mode = ModeScripted
	c.velYaw, c.velPitch = 0, 0
	c.transition = &Transition{
		Start:        now,
		MoveDuration: c.cfg.MoveDuration,
		HoldDuration: c.cfg.HoldDuration,
		From:         vantageStart,
		To:           vantageEnd,
		originYaw:    c.yaw,
		originPitch:  c.pitch,
	}
}

// InTransition reports whether a scripted transition is running.
func (c *Controller) InTransition() bool {
	return c.transition != nil
}

// MoveHoldDuration is the scripted lead-in before travel motion starts;
// the synchronizer gates its alpha on it.
func (c *Controller) MoveHoldDuration() time.Duration {
	return c.cfg.MoveDuration + c.cfg.HoldDuration
}

// SetTravelAlpha feeds the synchronizer's eased progress into a running
// transition. At alpha >= 1 the transition completes on its next frame.
func (c *Controller) SetTravelAlpha(alpha float64) {
	if c.transition != nil {
		c.transition.travelAlpha = alpha
	}
}

// frameScripted advances a scripted transition by phase:
// [0, move): ease current angles toward the start vantage;
// [move, move+hold): dwell at the start vantage;
// after: follow travel alpha from start vantage to end vantage.
func (c *Controller) frameScripted(now time.Time) {
	tr := c.transition
	if tr == nil {
		c.mode = ModeFreeOrbit
		return
	}

	elapsed := now.Sub(tr.Start)
	switch {
	case elapsed < tr.MoveDuration:
		f := easeInOutCubic(float64(elapsed) / float64(tr.MoveDuration))
		c.setTargetYaw(lerp(tr.originYaw, tr.From.Yaw, f))
		c.setTargetPitch(lerp(tr.originPitch, tr.From.Pitch, f))

	case elapsed < tr.MoveDuration+tr.HoldDuration:
		c.setTargetYaw(tr.From.Yaw)
		c.setTargetPitch(tr.From.Pitch)

	default:
		a := clamp(tr.travelAlpha, 0, 1)
		c.setTargetYaw(lerp(tr.From.Yaw, tr.To.Yaw, a))
		c.setTargetPitch(lerp(tr.From.Pitch, tr.To.Pitch, a))

		if a >= 1 {
			c.finishScripted()
		}
	}
}

// finishScripted returns to free orbit anchored at the end vantage.
func (c *Controller) finishScripted() {
	tr := c.transition
	c.transition = nil
	c.mode = ModeFreeOrbit
	c.autorotateSuspended = false
	c.setTargetYaw(tr.To.Yaw)
	c.setTargetPitch(tr.To.Pitch)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func easeInOutCubic(t float64) float64 {
	t = clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
