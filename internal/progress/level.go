package progress

import "math"

// Leveling is a simple closed form: reaching level n requires
// 100*(n-1)^2 XP, so levels come quickly at first and slow down.

// LevelForXP returns the player level for a given XP total.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return 1 + int(math.Sqrt(float64(xp)/100))
}

// XPForLevel returns the XP threshold at which the given level starts.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 100 * (level - 1) * (level - 1)
}

// LevelProgress returns how far through the current level the XP total
// is, in [0, 1].
func LevelProgress(xp int) float64 {
	level := LevelForXP(xp)
	lo := XPForLevel(level)
	hi := XPForLevel(level + 1)
	if hi <= lo {
		return 0
	}
	f := float64(xp-lo) / float64(hi-lo)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
