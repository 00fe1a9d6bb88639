package astro

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3Norm(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	if got := v.Norm(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
}

func TestVec3NormalizedZero(t *testing.T) {
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("zero vector normalized = %v, want zero", got)
	}
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{X: 10, Y: 0, Z: 0}.Normalized()
	if !vecAlmostEqual(v, Vec3{X: 1}) {
		t.Errorf("normalized = %v, want (1,0,0)", v)
	}
}

func TestVec3DotCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}

	if got := x.Dot(y); got != 0 {
		t.Errorf("x·y = %v, want 0", got)
	}

	z := x.Cross(y)
	if !vecAlmostEqual(z, Vec3{Z: 1}) {
		t.Errorf("x×y = %v, want (0,0,1)", z)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{X: 0}
	b := Vec3{X: 10}

	if got := a.Lerp(b, 0); !vecAlmostEqual(got, a) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !vecAlmostEqual(got, b) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !vecAlmostEqual(got, Vec3{X: 5}) {
		t.Errorf("Lerp(0.5) = %v, want (5,0,0)", got)
	}
}

func TestVec3RotateAbout(t *testing.T) {
	// Rotating X about Z by 90° yields Y
	got := Vec3{X: 1}.RotateAbout(Vec3{Z: 1}, math.Pi/2)
	if !vecAlmostEqual(got, Vec3{Y: 1}) {
		t.Errorf("rotate = %v, want (0,1,0)", got)
	}

	// Zero axis leaves the vector unchanged
	v := Vec3{X: 1, Y: 2, Z: 3}
	if got := v.RotateAbout(Vec3{}, 1.0); got != v {
		t.Errorf("rotate about zero axis = %v, want %v", got, v)
	}
}

func TestVec3Perpendiculars(t *testing.T) {
	cases := []Vec3{
		{X: 1},
		{Y: -2},
		{Z: 5},
		{X: 1, Y: 1, Z: 1},
		{}, // degenerate
	}

	for _, v := range cases {
		u, w := v.Perpendiculars()

		if !almostEqual(u.Norm(), 1) || !almostEqual(w.Norm(), 1) {
			t.Errorf("Perpendiculars(%v): not unit length: |u|=%v |w|=%v", v, u.Norm(), w.Norm())
		}
		if !almostEqual(u.Dot(w), 0) {
			t.Errorf("Perpendiculars(%v): u·w = %v, want 0", v, u.Dot(w))
		}
		if v != (Vec3{}) {
			if !almostEqual(u.Dot(v.Normalized()), 0) {
				t.Errorf("Perpendiculars(%v): u not perpendicular to v", v)
			}
		}
	}
}

func TestJulianDateJ2000(t *testing.T) {
	// J2000.0 epoch: 2000-01-01 12:00 UTC (ignoring the ~64s TT offset)
	jd := JulianDate(mustTime(t, "2000-01-01T12:00:00Z"))
	if math.Abs(jd-J2000) > 1e-6 {
		t.Errorf("JulianDate(J2000) = %v, want %v", jd, J2000)
	}
}

func TestJulianDateKnownValue(t *testing.T) {
	// 1999-01-01 00:00 UTC is JD 2451179.5
	jd := JulianDate(mustTime(t, "1999-01-01T00:00:00Z"))
	if math.Abs(jd-2451179.5) > 1e-6 {
		t.Errorf("JulianDate = %v, want 2451179.5", jd)
	}
}

func TestStarDirectionUnit(t *testing.T) {
	for _, s := range DefaultStarCatalog().Stars {
		d := s.Direction()
		if !almostEqual(d.Norm(), 1) {
			t.Errorf("star %s: |direction| = %v, want 1", s.Name, d.Norm())
		}
	}
}

func TestPolarisNearNorth(t *testing.T) {
	// Polaris sits near the equatorial pole; its ecliptic-frame Z should
	// still be strongly positive (within the obliquity tilt).
	var polaris Star
	for _, s := range DefaultStarCatalog().Stars {
		if s.Name == "Polaris" {
			polaris = s
		}
	}
	if polaris.Name == "" {
		t.Fatal("Polaris missing from catalog")
	}
	if d := polaris.Direction(); d.Z < 0.85 {
		t.Errorf("Polaris direction Z = %v, want > 0.85", d.Z)
	}
}
