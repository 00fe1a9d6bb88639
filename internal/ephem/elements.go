package ephem

import (
	"github.com/litescript/ls-voyager/internal/astro"
)

// DefaultElements returns mean J2000 orbital elements for the bodies the
// voyage map knows about. Planet positions are relative to the Sun, moon
// positions relative to their planet. Values are approximate mean
// elements, good to a fraction of a degree over decades, which is far
// below the resolution of a character-grid orrery.
func DefaultElements() map[string]astro.OrbitalElements {
	return map[string]astro.OrbitalElements{
		// Planets (heliocentric)
		"Mercury": {SemiMajorKm: 0.387098 * astro.AU, Eccentricity: 0.2056, InclinationDeg: 7.005, AscNodeDeg: 48.331, ArgPeriDeg: 29.124, MeanAnomDeg: 174.796, PeriodDays: 87.969},
		"Venus":   {SemiMajorKm: 0.723332 * astro.AU, Eccentricity: 0.0068, InclinationDeg: 3.395, AscNodeDeg: 76.680, ArgPeriDeg: 54.884, MeanAnomDeg: 50.115, PeriodDays: 224.701},
		"Earth":   {SemiMajorKm: 1.000000 * astro.AU, Eccentricity: 0.0167, InclinationDeg: 0.000, AscNodeDeg: 0.000, ArgPeriDeg: 114.208, MeanAnomDeg: 358.617, PeriodDays: 365.256},
		"Mars":    {SemiMajorKm: 1.523679 * astro.AU, Eccentricity: 0.0934, InclinationDeg: 1.850, AscNodeDeg: 49.558, ArgPeriDeg: 286.502, MeanAnomDeg: 19.373, PeriodDays: 686.980},
		"Jupiter": {SemiMajorKm: 5.204400 * astro.AU, Eccentricity: 0.0489, InclinationDeg: 1.303, AscNodeDeg: 100.464, ArgPeriDeg: 273.867, MeanAnomDeg: 20.020, PeriodDays: 4332.59},
		"Saturn":  {SemiMajorKm: 9.582600 * astro.AU, Eccentricity: 0.0565, InclinationDeg: 2.485, AscNodeDeg: 113.665, ArgPeriDeg: 339.392, MeanAnomDeg: 317.020, PeriodDays: 10759.22},
		"Uranus":  {SemiMajorKm: 19.21840 * astro.AU, Eccentricity: 0.0457, InclinationDeg: 0.773, AscNodeDeg: 74.006, ArgPeriDeg: 96.998, MeanAnomDeg: 142.239, PeriodDays: 30688.5},
		"Neptune": {SemiMajorKm: 30.11000 * astro.AU, Eccentricity: 0.0113, InclinationDeg: 1.770, AscNodeDeg: 131.784, ArgPeriDeg: 276.336, MeanAnomDeg: 256.228, PeriodDays: 60182.0},
		"Pluto":   {SemiMajorKm: 39.48200 * astro.AU, Eccentricity: 0.2488, InclinationDeg: 17.160, AscNodeDeg: 110.299, ArgPeriDeg: 113.834, MeanAnomDeg: 14.530, PeriodDays: 90560.0},

		// Moons (planetocentric)
		"Moon":     {SemiMajorKm: 384400, Eccentricity: 0.0549, InclinationDeg: 5.145, AscNodeDeg: 125.080, ArgPeriDeg: 318.150, MeanAnomDeg: 135.270, PeriodDays: 27.322},
		"Phobos":   {SemiMajorKm: 9376, Eccentricity: 0.0151, InclinationDeg: 1.093, PeriodDays: 0.3189},
		"Deimos":   {SemiMajorKm: 23463, Eccentricity: 0.0003, InclinationDeg: 0.930, MeanAnomDeg: 180, PeriodDays: 1.263},
		"Io":       {SemiMajorKm: 421700, Eccentricity: 0.0041, InclinationDeg: 0.050, PeriodDays: 1.769},
		"Europa":   {SemiMajorKm: 671034, Eccentricity: 0.0090, InclinationDeg: 0.470, MeanAnomDeg: 90, PeriodDays: 3.551},
		"Ganymede": {SemiMajorKm: 1070412, Eccentricity: 0.0013, InclinationDeg: 0.200, MeanAnomDeg: 180, PeriodDays: 7.155},
		"Callisto": {SemiMajorKm: 1882709, Eccentricity: 0.0074, InclinationDeg: 0.192, MeanAnomDeg: 270, PeriodDays: 16.689},
		"Titan":    {SemiMajorKm: 1221870, Eccentricity: 0.0288, InclinationDeg: 0.348, PeriodDays: 15.945},
		"Triton":   {SemiMajorKm: 354759, Eccentricity: 0.0000, InclinationDeg: 156.885, PeriodDays: 5.877},
		"Titania":  {SemiMajorKm: 435910, Eccentricity: 0.0011, InclinationDeg: 0.340, PeriodDays: 8.706},
		"Charon":   {SemiMajorKm: 19591, Eccentricity: 0.0002, InclinationDeg: 0.080, PeriodDays: 6.387},
	}
}
