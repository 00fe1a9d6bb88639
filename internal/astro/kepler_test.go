package astro

import (
	"math"
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tm
}

// earthLike is a simplified circular 1 AU orbit for sanity checks.
var earthLike = OrbitalElements{
	SemiMajorKm: AU,
	PeriodDays:  365.256,
}

func TestPositionAtCircularRadius(t *testing.T) {
	// A circular orbit should stay at the semi-major axis distance at
	// any epoch offset.
	for _, days := range []float64{0, 17.3, 100, 182.6, 365.256, 1000} {
		pos := earthLike.PositionAt(days)
		r := pos.Norm()
		if math.Abs(r-AU)/AU > 1e-9 {
			t.Errorf("day %v: r = %v, want %v", days, r, AU)
		}
	}
}

func TestPositionAtPeriodicity(t *testing.T) {
	a := earthLike.PositionAt(42)
	b := earthLike.PositionAt(42 + earthLike.PeriodDays)
	if a.Distance(b) > 1 { // within 1 km after a full period
		t.Errorf("position not periodic: %v vs %v", a, b)
	}
}

func TestPositionAtEccentricBounds(t *testing.T) {
	el := OrbitalElements{
		SemiMajorKm:  AU,
		Eccentricity: 0.2,
		PeriodDays:   365.256,
	}
	perihelion := el.SemiMajorKm * (1 - el.Eccentricity)
	aphelion := el.SemiMajorKm * (1 + el.Eccentricity)

	for days := 0.0; days < el.PeriodDays; days += 3.7 {
		r := el.PositionAt(days).Norm()
		if r < perihelion-1 || r > aphelion+1 {
			t.Errorf("day %v: r = %v outside [%v, %v]", days, r, perihelion, aphelion)
		}
	}
}

func TestPositionAtInclination(t *testing.T) {
	flat := OrbitalElements{SemiMajorKm: AU, PeriodDays: 100}
	tilted := OrbitalElements{SemiMajorKm: AU, PeriodDays: 100, InclinationDeg: 90}

	for days := 0.0; days < 100; days += 5 {
		if z := flat.PositionAt(days).Z; math.Abs(z) > 1e-6 {
			t.Errorf("flat orbit has Z = %v", z)
		}
	}

	// A 90° inclined orbit must leave the ecliptic plane somewhere.
	var maxZ float64
	for days := 0.0; days < 100; days += 5 {
		if z := math.Abs(tilted.PositionAt(days).Z); z > maxZ {
			maxZ = z
		}
	}
	if maxZ < AU*0.5 {
		t.Errorf("tilted orbit max |Z| = %v, want a significant excursion", maxZ)
	}
}

func TestPositionAtZeroElements(t *testing.T) {
	var el OrbitalElements
	if got := el.PositionAt(100); got != (Vec3{}) {
		t.Errorf("zero elements position = %v, want origin", got)
	}
}

func TestKeplerEquationResidual(t *testing.T) {
	// Verify the Newton solve actually satisfies M = E - e·sin(E) by
	// reconstructing the radius invariant r = a(1 - e·cosE): the radius
	// at mean anomaly 0 (periapsis) must be a(1-e).
	el := OrbitalElements{
		SemiMajorKm:  AU,
		Eccentricity: 0.3,
		PeriodDays:   365.256,
	}
	r := el.PositionAt(0).Norm()
	want := el.SemiMajorKm * (1 - el.Eccentricity)
	if math.Abs(r-want) > 1 {
		t.Errorf("periapsis r = %v, want %v", r, want)
	}
}
