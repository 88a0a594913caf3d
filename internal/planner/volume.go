package planner

import (
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

const (
	setsPerExercise = 4
	maxCheckRest    = 180
	maxCheckCeiling = 1.15
	maxCheckShare   = 0.4
)

var restSeconds = map[domain.LoadType]int{
	domain.LoadStrength:  90,
	domain.LoadEndurance: 45,
	domain.LoadExplosive: 120,
}

// WeeklyIncreaseRate is the per-week volume growth rate for the given plan week.
func WeeklyIncreaseRate(week int) float64 {
	switch {
	case week <= 4:
		return 1.02
	case week <= 8:
		return 1.035
	default:
		return 1.045
	}
}

// GrowthFactor raises the current week's rate to (week-1). The rate is taken
// from the current week's bracket only; earlier weeks' rates are not chained.
func GrowthFactor(week int) float64 {
	return math.Pow(WeeklyIncreaseRate(week), float64(week-1))
}

// LoadMultiplier scales the day's total volume by load type.
func LoadMultiplier(load domain.LoadType) float64 {
	switch load {
	case domain.LoadEndurance:
		return 1.2
	case domain.LoadExplosive:
		return 0.9
	default:
		return 1
	}
}

// RestSeconds returns the rest period between sets for a load type.
func RestSeconds(load domain.LoadType) int {
	if s, ok := restSeconds[load]; ok {
		return s
	}
	return restSeconds[domain.LoadStrength]
}

func roundReps(n float64) int {
	return max(1, int(math.Round(n)))
}

// DayTotal is the rep total for one exercise on a regular (non max-check) day.
func DayTotal(baseMax, week int, load domain.LoadType) int {
	volume := float64(baseMax) * GrowthFactor(week)
	return roundReps(volume * LoadMultiplier(load))
}

// BuildExerciseSets turns a baseline max into the planned sets for one exercise.
func BuildExerciseSets(baseMax, week int, load domain.LoadType, maxCheck bool) []domain.ExerciseSet {
	volume := float64(baseMax) * GrowthFactor(week)

	if maxCheck {
		target := min(roundReps(float64(baseMax)*maxCheckCeiling), roundReps(volume*maxCheckShare))
		return []domain.ExerciseSet{{TargetReps: target, RestSeconds: maxCheckRest, LoadType: domain.LoadStrength}}
	}

	reps := DistributeReps(roundReps(volume*LoadMultiplier(load)), setsPerExercise)
	sets := make([]domain.ExerciseSet, len(reps))
	for i, r := range reps {
		sets[i] = domain.ExerciseSet{
			TargetReps:  max(1, r),
			RestSeconds: RestSeconds(load),
			LoadType:    load,
		}
	}
	return sets
}

// DistributeReps splits total as evenly as possible across count sets. The
// remainder goes one rep each to the last sets.
func DistributeReps(total, count int) []int {
	if count <= 0 {
		return nil
	}
	per := total / count
	remainder := total % count
	reps := make([]int, count)
	for i := range reps {
		reps[i] = per
		if i >= count-remainder {
			reps[i]++
		}
	}
	return reps
}
