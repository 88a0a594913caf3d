package app

import (
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/planner"
	"github.com/alexanderramin/fittrack/internal/progression"
)

// StatusView is the dashboard snapshot for one day.
type StatusView struct {
	Today           domain.Date
	Maxes           domain.UserMaxes
	TotalXP         int
	XP              progression.XPProgress
	StreakDays      int
	LastWorkoutDate *domain.Date
	WorkoutCount    int
	TotalReps       map[domain.ExerciseKind]int

	PlanStartDate domain.Date
	PlanWeek      int
	PlanDay       int

	Plan         planner.PlanCompletion
	Week         planner.PlanCompletion
	Achievements planner.PlanCompletion

	// TodayWorkout is nil on rest days.
	TodayWorkout *domain.WorkoutDay
	TodayDone    bool
	// NextWorkout is the first planned day after today, nil once the plan ends.
	NextWorkout *domain.WorkoutDay
}

// AchievementView pairs a catalog entry with its unlock state.
type AchievementView struct {
	Achievement progression.Achievement
	Unlocked    bool
}
