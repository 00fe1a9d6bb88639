package cosmos

// DefaultBodies returns the standard voyage map. Earth is the journey's
// starting location; unlock levels gate how far out a traveler can aim.
func DefaultBodies() []Body {
	return []Body{
		{Name: "Sun", Kind: KindStar, RadiusKm: 696000, Color: "#FFC533", AlwaysRenderIfDiscovered: true},

		{Name: "Mercury", Kind: KindPlanet, Parent: "Sun", RadiusKm: 2440, Color: "#9E8E7E", MinLevel: 3, Landable: true, AlwaysRenderIfDiscovered: true},
		{Name: "Venus", Kind: KindPlanet, Parent: "Sun", RadiusKm: 6052, Color: "#E6C89C", MinLevel: 2, Landable: true, AlwaysRenderIfDiscovered: true},
		{Name: "Earth", Kind: KindPlanet, Parent: "Sun", RadiusKm: 6371, Color: "#4F94CD", MinLevel: 1, Landable: true, AlwaysRenderIfDiscovered: true},
		{Name: "Mars", Kind: KindPlanet, Parent: "Sun", RadiusKm: 3390, Color: "#C1440E", MinLevel: 2, Landable: true, AlwaysRenderIfDiscovered: true},
		{Name: "Jupiter", Kind: KindPlanet, Parent: "Sun", RadiusKm: 69911, Color: "#D8A677", MinLevel: 4, AlwaysRenderIfDiscovered: true},
		{Name: "Saturn", Kind: KindPlanet, Parent: "Sun", RadiusKm: 58232, Color: "#E3D9B0", MinLevel: 5, AlwaysRenderIfDiscovered: true},
		{Name: "Uranus", Kind: KindPlanet, Parent: "Sun", RadiusKm: 25362, Color: "#9CD6D9", MinLevel: 7, AlwaysRenderIfDiscovered: true},
		{Name: "Neptune", Kind: KindPlanet, Parent: "Sun", RadiusKm: 24622, Color: "#4B70DD", MinLevel: 8, AlwaysRenderIfDiscovered: true},
		{Name: "Pluto", Kind: KindPlanet, Parent: "Sun", RadiusKm: 1188, Color: "#C8B8A8", MinLevel: 10, Landable: true},

		{Name: "Moon", Kind: KindMoon, Parent: "Earth", RadiusKm: 1737, Color: "#BFBFBF", MinLevel: 1, Landable: true},
		{Name: "Phobos", Kind: KindMoon, Parent: "Mars", RadiusKm: 11, Color: "#8A7A6A", MinLevel: 3, Landable: true},
		{Name: "Deimos", Kind: KindMoon, Parent: "Mars", RadiusKm: 6, Color: "#97876F", MinLevel: 3, Landable: true},
		{Name: "Io", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 1822, Color: "#E8D25A", MinLevel: 4, Landable: true},
		{Name: "Europa", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 1561, Color: "#C9B8A0", MinLevel: 4, Landable: true},
		{Name: "Ganymede", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 2634, Color: "#A89D8C", MinLevel: 5, Landable: true},
		{Name: "Callisto", Kind: KindMoon, Parent: "Jupiter", RadiusKm: 2410, Color: "#7D7468", MinLevel: 5, Landable: true},
		{Name: "Titan", Kind: KindMoon, Parent: "Saturn", RadiusKm: 2575, Color: "#E0A95E", MinLevel: 6, Landable: true},
		{Name: "Titania", Kind: KindMoon, Parent: "Uranus", RadiusKm: 789, Color: "#A7B3B8", MinLevel: 7, Landable: true},
		{Name: "Triton", Kind: KindMoon, Parent: "Neptune", RadiusKm: 1353, Color: "#C4D4DB", MinLevel: 8, Landable: true},
		{Name: "Charon", Kind: KindMoon, Parent: "Pluto", RadiusKm: 606, Color: "#8E8E9E", MinLevel: 10, Landable: true},
	}
}
