package astro

import (
	"math"
)

// Star represents a cataloged star with position and brightness.
type Star struct {
	Name   string  // Common name (e.g., "Sirius", "Vega")
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// obliquityRad is the Earth's axial tilt (J2000 epoch) in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// Direction returns the star's unit direction vector in the ecliptic
// frame. Stars are treated as infinitely distant, so only direction
// matters for rendering a background.
func (s Star) Direction() Vec3 {
	ra := degToRad(s.RAdeg)
	dec := degToRad(s.DecDeg)

	// Equatorial unit vector
	eq := Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}

	// Rotate equatorial -> ecliptic about the X axis by the obliquity
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)
	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// StarCatalog holds a collection of stars for rendering.
type StarCatalog struct {
	Stars []Star
}

// DefaultStarCatalog returns a catalog of bright stars (mag < 2.5)
// used as a fixed background. Coordinates are J2000 epoch, from the
// Yale Bright Star Catalog and IAU star names.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{Stars: defaultStars}
}

// defaultStars, ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	{"Sirius", 101.287, -16.716, -1.46},
	{"Canopus", 95.988, -52.696, -0.74},
	{"Arcturus", 213.915, 19.182, -0.05},
	{"Vega", 279.235, 38.784, 0.03},
	{"Capella", 79.172, 45.998, 0.08},
	{"Rigel", 78.634, -8.202, 0.13},
	{"Procyon", 114.826, 5.225, 0.34},
	{"Achernar", 24.429, -57.237, 0.46},
	{"Betelgeuse", 88.793, 7.407, 0.50},
	{"Hadar", 210.956, -60.373, 0.61},
	{"Altair", 297.696, 8.868, 0.76},
	{"Acrux", 186.650, -63.099, 0.76},
	{"Aldebaran", 68.980, 16.509, 0.86},
	{"Antares", 247.352, -26.432, 0.96},
	{"Spica", 201.298, -11.161, 0.97},
	{"Pollux", 116.329, 28.026, 1.14},
	{"Fomalhaut", 344.413, -29.622, 1.16},
	{"Deneb", 310.358, 45.280, 1.25},
	{"Mimosa", 191.930, -59.689, 1.25},
	{"Regulus", 152.093, 11.967, 1.35},
	{"Adhara", 104.656, -28.972, 1.50},
	{"Castor", 113.650, 31.888, 1.57},
	{"Gacrux", 187.791, -57.113, 1.63},
	{"Shaula", 263.402, -37.104, 1.63},
	{"Bellatrix", 81.283, 6.350, 1.64},
	{"Elnath", 81.573, 28.608, 1.65},
	{"Miaplacidus", 138.300, -69.717, 1.68},
	{"Alnilam", 84.053, -1.202, 1.69},
	{"Alnair", 332.058, -46.961, 1.74},
	{"Alnitak", 85.190, -1.943, 1.77},
	{"Alioth", 193.507, 55.960, 1.77},
	{"Dubhe", 165.932, 61.751, 1.79},
	{"Mirfak", 51.081, 49.861, 1.80},
	{"Wezen", 107.098, -26.393, 1.83},
	{"Sargas", 264.330, -42.998, 1.87},
	{"Kaus Australis", 276.043, -34.385, 1.85},
	{"Avior", 125.629, -59.510, 1.86},
	{"Alkaid", 206.885, 49.313, 1.86},
	{"Menkalinan", 89.882, 44.947, 1.90},
	{"Atria", 252.166, -69.028, 1.91},
	{"Alhena", 99.428, 16.399, 1.92},
	{"Peacock", 306.412, -56.735, 1.94},
	{"Alsephina", 131.176, -54.709, 1.96},
	{"Mirzam", 95.675, -17.956, 1.98},
	{"Alphard", 141.897, -8.659, 1.98},
	{"Polaris", 37.955, 89.264, 1.98},
	{"Hamal", 31.793, 23.462, 2.00},
	{"Algieba", 154.993, 19.842, 2.08},
	{"Diphda", 10.897, -17.987, 2.04},
	{"Nunki", 283.816, -26.297, 2.05},
	{"Menkent", 211.671, -36.370, 2.06},
	{"Alpheratz", 2.097, 29.090, 2.06},
	{"Mirach", 17.433, 35.620, 2.05},
	{"Saiph", 86.939, -9.670, 2.09},
	{"Kochab", 222.676, 74.156, 2.08},
	{"Rasalhague", 263.734, 12.560, 2.07},
	{"Algol", 47.042, 40.956, 2.12},
	{"Almach", 30.975, 42.330, 2.26},
	{"Denebola", 177.265, 14.572, 2.11},
	{"Muhlifain", 190.379, -48.960, 2.17},
	{"Naos", 120.896, -40.003, 2.25},
	{"Aspidiske", 139.273, -59.275, 2.21},
	{"Alphecca", 233.672, 26.715, 2.23},
	{"Suhail", 136.999, -43.433, 2.21},
	{"Sadr", 305.557, 40.257, 2.20},
	{"Mizar", 200.981, 54.925, 2.27},
	{"Schedar", 10.127, 56.537, 2.23},
	{"Eltanin", 269.152, 51.489, 2.23},
	{"Mintaka", 83.002, -0.299, 2.23},
	{"Caph", 2.295, 59.150, 2.27},
	{"Dschubba", 240.083, -22.622, 2.29},
	{"Larawag", 252.541, -34.293, 2.29},
	{"Merak", 165.460, 56.383, 2.37},
	{"Ankaa", 6.571, -42.306, 2.38},
	{"Girtab", 265.622, -39.030, 2.39},
	{"Enif", 326.046, 9.875, 2.39},
	{"Scheat", 345.944, 28.083, 2.42},
	{"Sabik", 257.595, -15.725, 2.43},
	{"Phecda", 178.458, 53.695, 2.44},
	{"Aludra", 111.024, -29.303, 2.45},
	{"Markeb", 140.528, -55.011, 2.47},
	{"Markab", 346.190, 15.205, 2.49},
}
