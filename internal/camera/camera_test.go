package camera

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
)

const frameDT = 33 * time.Millisecond

func testController() *Controller {
	c := New(DefaultConfig())
	c.SetViewport(120, 40)
	c.SetAutorotate(false)
	return c
}

func stepFrames(c *Controller, start time.Time, n int) time.Time {
	now := start
	for i := 0; i < n; i++ {
		now = now.Add(frameDT)
		c.Frame(now, frameDT)
	}
	return now
}

func TestNewDefaults(t *testing.T) {
	c := New(DefaultConfig())
	if c.Mode() != ModeFreeOrbit {
		t.Errorf("mode = %v, want free-orbit", c.Mode())
	}
	if c.Radius() != DefaultConfig().DefaultRadius {
		t.Errorf("radius = %v, want default", c.Radius())
	}
}

func TestPitchClampAtTargetAssignment(t *testing.T) {
	c := testController()

	// A huge vertical drag cannot push the target past MaxPitch.
	c.Pan(0, 1e6)
	if c.targetPitch > c.cfg.MaxPitch+1e-12 {
		t.Errorf("target pitch = %v, want <= %v", c.targetPitch, c.cfg.MaxPitch)
	}
	c.Pan(0, -1e7)
	if c.targetPitch < -c.cfg.MaxPitch-1e-12 {
		t.Errorf("target pitch = %v, want >= %v", c.targetPitch, -c.cfg.MaxPitch)
	}
}

func TestRadiusClampAtTargetAssignment(t *testing.T) {
	c := testController()

	c.Pinch(1e-9) // zoom far out
	if c.targetRadius > c.cfg.MaxRadius {
		t.Errorf("target radius = %v, want <= %v", c.targetRadius, c.cfg.MaxRadius)
	}
	c.Pinch(1e9) // zoom far in
	if c.targetRadius < c.cfg.MinRadius {
		t.Errorf("target radius = %v, want >= %v", c.targetRadius, c.cfg.MinRadius)
	}
}

func TestPanMapsViewportToRevolution(t *testing.T) {
	c := testController()
	before := c.targetYaw

	// A drag across the full viewport width is one full yaw revolution.
	c.Pan(float64(c.viewportW), 0)
	if got := math.Abs(c.targetYaw - before); math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("full-width pan moved yaw by %v, want 2π", got)
	}
	if c.Mode() != ModePanning {
		t.Errorf("mode = %v, want panning", c.Mode())
	}
}

func TestPanZeroViewportNoOp(t *testing.T) {
	c := New(DefaultConfig()) // viewport never set
	before := c.targetYaw
	c.Pan(100, 50)
	if c.targetYaw != before {
		t.Error("pan with zero viewport should be a no-op")
	}
}

func TestInertiaDecaysToStop(t *testing.T) {
	c := testController()

	c.Pan(10, 0)
	c.EndPan(400, 0) // fast release

	if c.Mode() != ModeFreeOrbit {
		t.Fatalf("mode after release = %v, want free-orbit", c.Mode())
	}
	if c.velYaw == 0 {
		t.Fatal("release velocity did not convert to inertia")
	}
	if math.Abs(c.velYaw) > c.cfg.MaxAngularVelocity+1e-12 {
		t.Errorf("inertia %v exceeds clamp %v", c.velYaw, c.cfg.MaxAngularVelocity)
	}

	// Velocity must decay monotonically and reach exactly zero.
	prev := math.Abs(c.velYaw)
	now := time.Unix(0, 0)
	for i := 0; i < 500 && c.velYaw != 0; i++ {
		now = stepFrames(c, now, 1)
		if v := math.Abs(c.velYaw); v > prev+1e-12 {
			t.Fatalf("inertia grew: %v -> %v", prev, v)
		} else {
			prev = v
		}
	}
	if c.velYaw != 0 {
		t.Error("inertia never stopped")
	}
}

func TestDoubleTapSmoothedReset(t *testing.T) {
	c := testController()
	c.Pinch(8) // zoom way in
	stepFrames(c, time.Unix(0, 0), 60)
	zoomed := c.Radius()

	c.DoubleTap()
	// Not instantaneous:
	if c.Radius() != zoomed {
		t.Error("double-tap snapped the radius instead of smoothing")
	}

	stepFrames(c, time.Unix(0, 0), 200)
	if math.Abs(c.Radius()-c.cfg.DefaultRadius) > 0.5 {
		t.Errorf("radius = %v, want ~%v after reset", c.Radius(), c.cfg.DefaultRadius)
	}
}

func TestSmoothingConvergesToTarget(t *testing.T) {
	c := testController()
	c.Pan(30, 10)
	c.EndPan(0, 0)
	wantYaw, wantPitch := c.targetYaw, c.targetPitch

	stepFrames(c, time.Unix(0, 0), 300)

	if math.Abs(c.Yaw()-wantYaw) > 1e-3 {
		t.Errorf("yaw = %v, want %v", c.Yaw(), wantYaw)
	}
	if math.Abs(c.Pitch()-wantPitch) > 1e-3 {
		t.Errorf("pitch = %v, want %v", c.Pitch(), wantPitch)
	}
}

func TestPivotRecentering(t *testing.T) {
	c := testController()
	p := astro.Vec3{X: 10, Y: -4, Z: 2}
	c.SetPivot(p)

	pos := c.Position()
	if d := pos.Distance(p); math.Abs(d-c.Radius()) > 1e-9 {
		t.Errorf("camera distance from pivot = %v, want radius %v", d, c.Radius())
	}
}

func TestBasisOrthonormal(t *testing.T) {
	c := testController()
	c.SetPivot(astro.Vec3{X: 5, Y: 5})
	stepFrames(c, time.Unix(0, 0), 10)

	f, r, u := c.Basis()
	for name, v := range map[string]astro.Vec3{"forward": f, "right": r, "up": u} {
		if math.Abs(v.Norm()-1) > 1e-9 {
			t.Errorf("%s not unit length: %v", name, v.Norm())
		}
	}
	if math.Abs(f.Dot(r)) > 1e-9 || math.Abs(f.Dot(u)) > 1e-9 || math.Abs(r.Dot(u)) > 1e-9 {
		t.Error("basis vectors not mutually orthogonal")
	}
}

func TestProjectPivotCentered(t *testing.T) {
	c := testController()
	c.SetPivot(astro.Vec3{X: 7, Y: 3, Z: 1})

	x, y, depth, ok := c.Project(c.Pivot())
	if !ok {
		t.Fatal("pivot should project")
	}
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("pivot projects to (%v, %v), want origin", x, y)
	}
	if math.Abs(depth-c.Radius()) > 1e-9 {
		t.Errorf("pivot depth = %v, want radius %v", depth, c.Radius())
	}
}

func TestProjectBehindCamera(t *testing.T) {
	c := testController()
	behind := c.Position().Add(c.Position().Sub(c.Pivot())) // opposite side
	if _, _, _, ok := c.Project(behind); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestAutorotateDriftsYaw(t *testing.T) {
	c := testController()
	c.SetAutorotate(true)
	before := c.Yaw()

	stepFrames(c, time.Unix(0, 0), 120)

	if c.Yaw() == before {
		t.Error("autorotate did not move yaw")
	}
}
