// Package progression folds completed workouts into XP, levels, streaks and
// achievements. Every function here is pure: callers pass state in and get a
// new value back.
package progression

import "math"

const firstLevelRequirement = 100

// nextRequirement grows the band by 20% and floors after every step, so level
// boundaries stay on the integer sequence 100, 120, 144, 172, 206, ...
func nextRequirement(required int) int {
	return required * 6 / 5
}

// LevelForXP returns the level reached with totalXP cumulative experience.
// Level 1 starts at 0 XP and there is no level cap.
func LevelForXP(totalXP int) int {
	level := 1
	required := firstLevelRequirement
	total := 0
	for total+required <= totalXP {
		total += required
		level++
		required = nextRequirement(required)
	}
	return level
}

// XPThresholdForLevel returns the cumulative XP at which level starts.
func XPThresholdForLevel(level int) int {
	total := 0
	required := firstLevelRequirement
	for i := 1; i < level; i++ {
		total += required
		required = nextRequirement(required)
	}
	return total
}

// requirementForLevel is the width of the band from level to level+1.
func requirementForLevel(level int) int {
	required := firstLevelRequirement
	for i := 1; i < level; i++ {
		required = nextRequirement(required)
	}
	return required
}

// XPProgress describes how far a user is through the current level band.
type XPProgress struct {
	Level    int
	Earned   int
	Required int
	Fraction float64
}

// XPProgressWithinLevel locates totalXP inside its level band.
func XPProgressWithinLevel(totalXP int) XPProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := LevelForXP(totalXP)
	earned := totalXP - XPThresholdForLevel(level)
	required := requirementForLevel(level)

	fraction := 1.0
	if required > 0 {
		fraction = math.Min(1, float64(earned)/float64(required))
	}
	return XPProgress{Level: level, Earned: earned, Required: required, Fraction: fraction}
}
