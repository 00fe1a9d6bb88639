// Package travel bridges the persisted, externally-mutated travel
// progress to the ship's smoothly interpolated on-screen position. Each
// detected progress delta becomes one animation batch, committed back
// to the store exactly once when its animation completes.
package travel

import (
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/camera"
	"github.com/litescript/ls-voyager/internal/logging"
	"github.com/litescript/ls-voyager/internal/progress"
	"github.com/litescript/ls-voyager/internal/scene"
)

// Committer is the slice of the progress store this package may
// mutate. Everything else arrives as a read-only snapshot.
type Committer interface {
	SyncTravelVisuals()
	FinalizeLandingAfterAnimation(now time.Time)
}

// Config holds the synchronizer's tuning constants.
type Config struct {
	// TravelDuration is the visual length of one animation batch,
	// measured after the camera's move+hold lead-in.
	TravelDuration time.Duration

	// MoveHoldFallback gates alpha when no camera is attached yet.
	MoveHoldFallback time.Duration

	// Vantage angles are derived from the batch's from/to distance
	// ratios: yaw sweeps from BaseYaw across YawSweep over the leg.
	BaseYaw  float64
	YawSweep float64
	Pitch    float64
}

// DefaultConfig returns the standard animation tuning.
func DefaultConfig() Config {
	return Config{
		TravelDuration:   2800 * time.Millisecond,
		MoveHoldFallback: 1600 * time.Millisecond,
		BaseYaw:          -0.6,
		YawSweep:         1.2,
		Pitch:            0.35,
	}
}

// Leg carries the current frame's geometry for the active travel leg,
// resolved by the caller from the body registry.
type Leg struct {
	StartCenter  astro.Vec3
	TargetCenter astro.Vec3
	StartRadius  float64
	TargetRadius float64
}

// Ship is the synchronizer's per-frame output: where to draw the
// vehicle and where it is looking.
type Ship struct {
	Pos       astro.Vec3
	Aim       astro.Vec3
	Displayed float64 // displayed traveled distance, scene units
	EnRoute   bool
}

// batch is one detected progress delta being animated.
type batch struct {
	start    time.Time
	from, to float64
	synced   bool
}

// Synchronizer turns progress snapshots into ship positions and fires
// the commit and landing side effects. Single-threaded; driven only by
// the frame scheduler.
type Synchronizer struct {
	cfg   Config
	store Committer
	log   *logging.Logger

	cam    *camera.Controller
	queued *camera.Pending

	focused bool
	active  bool
	cur     batch
}

// New creates a synchronizer. The camera may be attached later; a
// transition raised before that is queued and consumed on attach.
func New(cfg Config, store Committer, log *logging.Logger) *Synchronizer {
	if log == nil {
		log = logging.Discard()
	}
	return &Synchronizer{cfg: cfg, store: store, log: log}
}

// AttachCamera hands the synchronizer its camera controller, consuming
// any transition queued before the controller existed.
func (s *Synchronizer) AttachCamera(now time.Time, cam *camera.Controller) {
	s.cam = cam
	if cam != nil && s.queued != nil {
		cam.StartScripted(now, s.queued.From, s.queued.To, s.queued.Separation)
		s.queued = nil
	}
}

// SetFocused records whether the map view is active. While unfocused
// no animation advances; regaining focus restarts from the actual
// current delta rather than resuming a stale clock.
func (s *Synchronizer) SetFocused(focused bool) {
	if focused == s.focused {
		return
	}
	s.focused = focused
	s.active = false
	s.queued = nil
}

// Queued reports whether a scripted transition is waiting for a camera.
func (s *Synchronizer) Queued() bool {
	return s.queued != nil
}

// Frame advances the synchronizer one frame. Evaluation order is fixed:
// delta detection, alpha, position interpolation, then commit, then
// landing finalization.
func (s *Synchronizer) Frame(now time.Time, snap progress.Snapshot, leg Leg) Ship {
	pos := snap.Position
	if !pos.Traveling() || pos.InitialDistance <= 0 {
		s.active = false
		return Ship{Pos: leg.StartCenter, Displayed: 0}
	}

	s.detectBatch(now, snap, leg)

	alpha := s.alphaAt(now)
	eased := easeInOutCubic(alpha)
	if s.cam != nil && s.active {
		s.cam.SetTravelAlpha(eased)
	}

	displayed := s.displayedDistance(pos, eased)
	ship := s.shipAt(leg, displayed, pos.InitialDistance)

	// Commit strictly after interpolation; finalize strictly after
	// commit. A trivial batch (no distance delta) commits immediately.
	if s.active && !s.cur.synced && (alpha >= 1 || s.cur.from == s.cur.to) {
		s.cur.synced = true
		s.active = false
		if s.cam != nil {
			// Lets a still-scripted camera finish even when the batch
			// was trivial and never ramped.
			s.cam.SetTravelAlpha(1)
		}
		s.store.SyncTravelVisuals()
		s.log.Debug("travel batch committed at %.2f units", displayed)
		if snap.PendingLanding {
			s.store.FinalizeLandingAfterAnimation(now)
		}
	}

	return ship
}

// detectBatch starts a new animation batch when a distance delta (or
// the explicit pending-animation hint) appears while the view is
// focused and no batch is running.
func (s *Synchronizer) detectBatch(now time.Time, snap progress.Snapshot, leg Leg) {
	if !s.focused || s.active {
		return
	}
	pos := snap.Position
	if pos.DistanceTraveled == pos.PreviousDistanceTraveled && !snap.PendingTravelAnimation {
		return
	}

	s.active = true
	s.cur = batch{
		start: now,
		from:  pos.PreviousDistanceTraveled,
		to:    pos.DistanceTraveled,
	}

	from := s.vantageFor(s.cur.from / pos.InitialDistance)
	to := s.vantageFor(s.cur.to / pos.InitialDistance)
	separation := leg.StartCenter.Distance(leg.TargetCenter)
	if s.cam != nil {
		s.cam.StartScripted(now, from, to, separation)
	} else {
		s.queued = &camera.Pending{From: from, To: to, Separation: separation}
	}
	s.log.Debug("travel batch started: %.2f -> %.2f of %.2f",
		s.cur.from, s.cur.to, pos.InitialDistance)
}

// vantageFor maps a traveled-distance ratio to a camera orientation.
func (s *Synchronizer) vantageFor(frac float64) camera.Vantage {
	frac = clamp(frac, 0, 1)
	return camera.Vantage{
		Yaw:   s.cfg.BaseYaw + frac*s.cfg.YawSweep,
		Pitch: s.cfg.Pitch,
	}
}

// alphaAt returns the batch's raw progress: 0 through the camera's
// move+hold lead-in, then a linear ramp over the travel duration.
func (s *Synchronizer) alphaAt(now time.Time) float64 {
	if !s.active || !s.focused {
		return 0
	}
	gate := s.cfg.MoveHoldFallback
	if s.cam != nil {
		gate = s.cam.MoveHoldDuration()
	}
	elapsed := now.Sub(s.cur.start) - gate
	if elapsed <= 0 {
		return 0
	}
	return clamp(float64(elapsed)/float64(s.cfg.TravelDuration), 0, 1)
}

// displayedDistance interpolates the batch's from/to range by the
// eased alpha, clamped to the leg. Outside a batch the committed
// distance shows as-is.
func (s *Synchronizer) displayedDistance(pos progress.UserPosition, eased float64) float64 {
	d := pos.PreviousDistanceTraveled
	if s.active {
		d = s.cur.from + (s.cur.to-s.cur.from)*eased
	}
	return clamp(d, 0, pos.InitialDistance)
}

// shipAt places the vehicle between the leg's surface endpoints.
func (s *Synchronizer) shipAt(leg Leg, displayed, initial float64) Ship {
	startSurface, targetSurface := scene.SurfaceEndpoints(
		leg.StartCenter, leg.StartRadius, leg.TargetCenter, leg.TargetRadius)

	frac := clamp(displayed/initial, 0, 1)
	return Ship{
		Pos:       startSurface.Lerp(targetSurface, frac),
		Aim:       scene.AimPosition(leg.StartCenter, leg.TargetCenter, leg.TargetRadius),
		Displayed: displayed,
		EnRoute:   true,
	}
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

func easeInOutCubic(t float64) float64 {
	t = clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
