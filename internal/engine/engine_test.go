package engine

import (
	"testing"
	"time"

	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/cosmos"
	"github.com/litescript/ls-voyager/internal/ephem"
	"github.com/litescript/ls-voyager/internal/progress"
)

func testEngine(t *testing.T) (*Engine, *progress.Manager) {
	t.Helper()
	reg, err := cosmos.NewRegistry(cosmos.DefaultBodies(), ephem.NewTableProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	store := progress.NewManager(progress.DefaultConfig(), "Earth", nil)
	e := New(reg, store, nil)
	e.Resize(120, 40)
	e.Focus(true)
	return e, store
}

// runFrames advances the engine at a fixed cadence.
func runFrames(e *Engine, start time.Time, n int) time.Time {
	now := start
	for i := 0; i < n; i++ {
		now = now.Add(nominalDT)
		e.Frame(now)
	}
	return now
}

func TestFrameBeforeResizeIsSafe(t *testing.T) {
	reg, err := cosmos.NewRegistry(cosmos.DefaultBodies(), ephem.NewTableProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	store := progress.NewManager(progress.DefaultConfig(), "Earth", nil)
	e := New(reg, store, nil)

	// No camera yet; frames must still run the scene pass.
	e.Frame(time.Unix(100, 0))
	if e.Camera() != nil {
		t.Fatal("camera exists before first resize")
	}
	if len(e.Scene().Nodes().All()) == 0 {
		t.Error("scene pass did not run without a camera")
	}
}

func TestResizeIdempotent(t *testing.T) {
	e, _ := testEngine(t)
	cam := e.Camera()
	if cam == nil {
		t.Fatal("resize did not construct the camera")
	}

	e.Resize(120, 40)
	e.Resize(200, 60)
	if e.Camera() != cam {
		t.Error("repeated resize replaced the camera")
	}
	e.Resize(0, 0) // degenerate, ignored
}

func TestStartTravelValidation(t *testing.T) {
	e, _ := testEngine(t)
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	if err := e.StartTravel("Xyzzy", now); err == nil {
		t.Error("unknown destination accepted")
	}
	if err := e.StartTravel("Sun", now); err == nil {
		t.Error("non-landable destination accepted")
	}
	if err := e.StartTravel("Mars", now); err == nil {
		t.Error("destination above the player level accepted")
	}
	if err := e.StartTravel("Moon", now); err != nil {
		t.Errorf("StartTravel(Moon): %v", err)
	}

	snap := e.store.Snapshot()
	if snap.Position.Target != "Moon" || snap.Position.InitialDistance <= 0 {
		t.Errorf("leg = %+v, want active leg to the Moon", snap.Position)
	}
}

func TestFullTravelPipeline(t *testing.T) {
	e, store := testEngine(t)
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	if err := e.StartTravel("Moon", now); err != nil {
		t.Fatalf("StartTravel: %v", err)
	}
	// Enough habit completions to fill the leg.
	for i := 0; i < 4; i++ {
		store.CompleteHabit(now)
	}
	if !store.Snapshot().PendingLanding {
		t.Fatal("filled leg should have a pending landing")
	}

	// Run well past move+hold+travel so the batch commits and the
	// landing finalizes.
	runFrames(e, now, 300)

	snap := store.Snapshot()
	if snap.Position.StartingLocation != "Moon" {
		t.Errorf("location = %s, want Moon after landing", snap.Position.StartingLocation)
	}
	if snap.Position.Traveling() || snap.PendingLanding {
		t.Errorf("travel state not cleared: %+v", snap.Position)
	}
	if !snap.CompletedPlanets["Moon"] {
		t.Error("Moon not marked visited")
	}
}

func TestPivotFollowsShip(t *testing.T) {
	e, store := testEngine(t)
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	if err := e.StartTravel("Moon", now); err != nil {
		t.Fatalf("StartTravel: %v", err)
	}
	store.CompleteHabit(now)
	runFrames(e, now, 10)

	// The pivot set by the last frame is the ship position computed by
	// the frame before it; for a leg from Earth it is far from the
	// origin.
	if e.Camera().Pivot() == (astro.Vec3{}) {
		t.Error("pivot never left the origin")
	}
}

func TestMissingBodyFallsBackAndResets(t *testing.T) {
	reg, err := cosmos.NewRegistry(cosmos.DefaultBodies(), ephem.NewTableProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	store := progress.NewManager(progress.DefaultConfig(), "Earth", nil)
	if err := store.BeginTravel("Xyzzy", 10, time.Unix(0, 0)); err != nil {
		t.Fatalf("BeginTravel: %v", err)
	}
	e := New(reg, store, nil)
	e.Resize(120, 40)
	e.Focus(true)

	runFrames(e, time.Unix(100, 0), 3)

	snap := store.Snapshot()
	if snap.Position.Traveling() {
		t.Error("corrupt target did not reset travel state")
	}

	events := store.RecentEvents(10)
	resets := 0
	for _, ev := range events {
		if ev.Type == progress.EventReset {
			resets++
		}
	}
	if resets != 1 {
		t.Errorf("resets = %d, want exactly 1", resets)
	}
}

func TestTeardownIdempotent(t *testing.T) {
	e, _ := testEngine(t)
	runFrames(e, time.Unix(100, 0), 3)

	e.Teardown()
	n, ok := e.Scene().Nodes().Lookup("Earth")
	if !ok || !n.Disposed() {
		t.Fatal("teardown did not dispose scene nodes")
	}

	// Second teardown and post-teardown calls are no-ops.
	e.Teardown()
	e.Frame(time.Unix(200, 0))
	e.Resize(80, 20)
}
