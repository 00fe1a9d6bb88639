package astro

import (
	"math"
)

// OrbitalElements describes a Keplerian orbit about a primary at the
// J2000.0 epoch. Angles are in degrees; distances in kilometers.
// These are mean elements for table lookup, not an integrator state.
type OrbitalElements struct {
	SemiMajorKm   float64 // Semi-major axis a
	Eccentricity  float64 // e (0 = circular)
	InclinationDeg float64 // i, relative to the ecliptic (or parent equator for moons)
	AscNodeDeg    float64 // Ω, longitude of the ascending node
	ArgPeriDeg    float64 // ω, argument of periapsis
	MeanAnomDeg   float64 // M₀, mean anomaly at epoch
	PeriodDays    float64 // Orbital period
}

// kepler iterations converge quickly for planetary eccentricities;
// eight Newton steps are ample for e < 0.3.
const keplerIterations = 8

// PositionAt returns the position relative to the orbit's primary at
// daysSinceEpoch days past J2000.0, in kilometers, in the primary's
// ecliptic frame (X toward the vernal equinox, Z north).
func (el OrbitalElements) PositionAt(daysSinceEpoch float64) Vec3 {
	if el.PeriodDays == 0 || el.SemiMajorKm == 0 {
		return Vec3{}
	}

	// Mean anomaly advanced from epoch, normalized to [0, 2π)
	meanMotion := 2 * math.Pi / el.PeriodDays
	M := degToRad(el.MeanAnomDeg) + meanMotion*daysSinceEpoch
	M = math.Mod(M, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}

	// Solve Kepler's equation M = E - e·sin(E) by Newton iteration
	e := el.Eccentricity
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for i := 0; i < keplerIterations; i++ {
		E = E - (E-e*math.Sin(E)-M)/(1-e*math.Cos(E))
	}

	// True anomaly and radius from eccentric anomaly
	nu := 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2),
	)
	r := el.SemiMajorKm * (1 - e*math.Cos(E))

	// Perifocal coordinates
	xp := r * math.Cos(nu)
	yp := r * math.Sin(nu)

	// Rotate perifocal -> ecliptic: Rz(Ω) · Rx(i) · Rz(ω)
	cosO := math.Cos(degToRad(el.AscNodeDeg))
	sinO := math.Sin(degToRad(el.AscNodeDeg))
	cosI := math.Cos(degToRad(el.InclinationDeg))
	sinI := math.Sin(degToRad(el.InclinationDeg))
	cosW := math.Cos(degToRad(el.ArgPeriDeg))
	sinW := math.Sin(degToRad(el.ArgPeriDeg))

	return Vec3{
		X: (cosO*cosW-sinO*sinW*cosI)*xp + (-cosO*sinW-sinO*cosW*cosI)*yp,
		Y: (sinO*cosW+cosO*sinW*cosI)*xp + (-sinO*sinW+cosO*cosW*cosI)*yp,
		Z: (sinW*sinI)*xp + (cosW*sinI)*yp,
	}
}
