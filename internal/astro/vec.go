// Package astro provides vector math, time scales, and Keplerian
// propagation for positioning celestial bodies.
package astro

import (
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Distance returns the Euclidean distance between two points.
func (v Vec3) Distance(u Vec3) float64 {
	return v.Sub(u).Norm()
}

// Lerp returns the linear interpolation between v and u at parameter t.
// t=0 yields v, t=1 yields u; t is not clamped.
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return v.Add(u.Sub(v).Scale(t))
}

// RotateAbout rotates v about the given axis by angle radians using
// Rodrigues' formula. The axis need not be normalized; a zero axis
// returns v unchanged.
func (v Vec3) RotateAbout(axis Vec3, angle float64) Vec3 {
	k := axis.Normalized()
	if k == (Vec3{}) {
		return v
	}
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	return v.Scale(cosA).
		Add(k.Cross(v).Scale(sinA)).
		Add(k.Scale(k.Dot(v) * (1 - cosA)))
}

// Perpendiculars returns two unit vectors that, together with the
// normalized input, form a right-handed orthonormal basis. The zero
// vector yields an arbitrary fixed basis.
func (v Vec3) Perpendiculars() (Vec3, Vec3) {
	axis := v.Normalized()
	if axis == (Vec3{}) {
		return Vec3{X: 1}, Vec3{Y: 1}
	}

	// Pick the world axis least aligned with v to avoid degeneracy.
	ref := Vec3{Z: 1}
	if math.Abs(axis.Z) > 0.9 {
		ref = Vec3{X: 1}
	}

	u := axis.Cross(ref).Normalized()
	w := axis.Cross(u)
	return u, w
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AU
}

// AUToKm converts Astronomical Units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
