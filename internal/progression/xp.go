package progression

import (
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// BaseWorkoutXP is awarded for every completed workout regardless of volume.
const BaseWorkoutXP = 50

const defaultXPPerRep = 0.5

var xpPerRep = map[domain.ExerciseKind]float64{
	domain.ExercisePullups: 3,
	domain.ExerciseSquats:  0.5,
	domain.ExerciseAbs:     0.5,
	domain.ExercisePushups: 0.5,
}

// XPPerRep returns the per-rep reward for kind; unknown kinds earn the default rate.
func XPPerRep(kind domain.ExerciseKind) float64 {
	if rate, ok := xpPerRep[kind]; ok {
		return rate
	}
	return defaultXPPerRep
}

// WorkoutXP computes the XP for one session. The sum is rounded once, half
// away from zero, after all sets are added.
func WorkoutXP(sets []domain.CompletedSet) int {
	xp := float64(BaseWorkoutXP)
	for _, s := range sets {
		xp += XPPerRep(s.Kind) * float64(s.Reps)
	}
	return int(math.Round(xp))
}
